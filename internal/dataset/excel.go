package dataset

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/CosmicViraj/go-data-analyzer/domain/table"
	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
)

// LoadXLSX reads the first sheet of an Excel workbook into a table. Rows may
// be ragged (excelize drops trailing empty cells); short rows are padded with
// missing values against the header.
func LoadXLSX(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.LoadFailed("failed to open Excel file", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.LoadFailed("Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.LoadFailed("failed to read sheet "+sheet, err)
	}

	return build(rows)
}
