// Package dataset turns raw CSV or XLSX content into the immutable table
// the summarizer and plotter operate on. Loading either fully succeeds or
// reports one descriptive failure; there is no partial table.
package dataset

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/CosmicViraj/go-data-analyzer/domain/table"
	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
)

// Load dispatches on the file extension. CSV is the default for unknown
// extensions since some pickers report .csv files as plain text.
func Load(filename string, r io.Reader) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return LoadXLSX(r)
	default:
		return LoadCSV(r)
	}
}

// LoadCSV parses comma-delimited content with a header row. Inconsistent
// record widths or unparseable structure surface as a single load failure
// carrying the csv package's description.
func LoadCSV(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.LoadFailed("failed to read CSV data", err)
	}
	return build(records)
}

// build converts raw records (header row first) into a typed table.
func build(records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, errors.LoadFailed("file is empty", nil)
	}
	if len(records) < 2 {
		return nil, errors.LoadFailed("file must have a header row and at least one data row", nil)
	}

	headerRow := records[0]
	dataRows := records[1:]

	columns := make([]table.Column, len(headerRow))
	for i, header := range headerRow {
		values := make([]string, len(dataRows))
		for j, row := range dataRows {
			if i < len(row) {
				values[j] = strings.TrimSpace(row[i])
			}
		}
		columns[i] = buildColumn(strings.TrimSpace(header), values)
	}

	t, err := table.New(columns)
	if err != nil {
		return nil, errors.LoadFailed("failed to assemble table", err)
	}
	return t, nil
}

// buildColumn infers the column kind and, for numeric columns, parses the
// cells. A column is numeric when every non-empty cell parses as a number;
// a column with no non-empty cells at all stays numeric with every value
// missing, matching how an all-blank column summarizes to count zero.
func buildColumn(name string, values []string) table.Column {
	col := table.Column{Name: name, Kind: table.KindNumeric, Values: values}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			col.Kind = table.KindText
			return col
		}
	}

	col.Floats = make([]float64, len(values))
	col.Missing = make([]bool, len(values))
	for i, v := range values {
		if v == "" {
			col.Missing[i] = true
			continue
		}
		col.Floats[i], _ = strconv.ParseFloat(v, 64)
	}
	return col
}
