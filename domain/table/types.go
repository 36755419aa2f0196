// Package table defines the loaded table: the single entity shared by the
// loader, the summarizer and the plotter. A table is built once by the loader
// and never patched in place; reloading a file replaces it wholesale.
package table

import "fmt"

// Kind classifies a column's values.
type Kind string

const (
	// KindNumeric marks a column whose every non-empty cell parses as a number.
	KindNumeric Kind = "numeric"
	// KindText marks everything else.
	KindText Kind = "text"
)

// Column is one named column with its raw cell text. Numeric columns
// additionally carry the parsed values and a per-row missing flag, both
// aligned with Values.
type Column struct {
	Name    string
	Kind    Kind
	Values  []string
	Floats  []float64
	Missing []bool
}

// NonMissing returns the parsed values of a numeric column with missing
// cells filtered out. Text columns yield nil.
func (c Column) NonMissing() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if c.Missing[i] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Table is an ordered sequence of named columns with positionally aligned
// rows. All columns have equal length.
type Table struct {
	columns []Column
	rows    int
}

// New validates column alignment and builds a table.
func New(columns []Column) (*Table, error) {
	rows := 0
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if i == 0 {
			rows = len(col.Values)
			continue
		}
		if len(col.Values) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Values), rows)
		}
	}
	for _, col := range columns {
		if col.Kind != KindNumeric {
			continue
		}
		if len(col.Floats) != len(col.Values) || len(col.Missing) != len(col.Values) {
			return nil, fmt.Errorf("numeric column %q has misaligned parsed values", col.Name)
		}
	}
	return &Table{columns: columns, rows: rows}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the columns in their original file order.
func (t *Table) Columns() []Column { return t.columns }

// Headers returns the column names in their original file order.
func (t *Table) Headers() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// NumericColumns returns the names of all numeric columns, in table order.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, col := range t.columns {
		if col.Kind == KindNumeric {
			names = append(names, col.Name)
		}
	}
	return names
}

// Lookup finds a column by name.
func (t *Table) Lookup(name string) (Column, bool) {
	for _, col := range t.columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Preview returns up to n rows of raw cell text, row-major, aligned with
// Headers.
func (t *Table) Preview(n int) [][]string {
	if n > t.rows {
		n = t.rows
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(t.columns))
		for j, col := range t.columns {
			row[j] = col.Values[i]
		}
		rows[i] = row
	}
	return rows
}
