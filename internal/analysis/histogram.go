package analysis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/CosmicViraj/go-data-analyzer/domain/table"
	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
)

// DefaultBins is the bin count used when the caller does not override it.
const DefaultBins = 20

// Histogram is the drawable result of binning one numeric column: bins+1
// edges spanning [min, max] and a count per bin.
type Histogram struct {
	Column string
	XLabel string
	YLabel string
	Edges  []float64
	Counts []int
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.Counts) }

// BuildHistogram partitions a numeric column's non-missing values into
// equal-width bins spanning [min, max]. Validation failures name the reason:
// COLUMN_NOT_FOUND, COLUMN_NOT_NUMERIC, or NO_DATA for an all-missing column.
func BuildHistogram(t *table.Table, column string, bins int) (*Histogram, error) {
	if bins <= 0 {
		bins = DefaultBins
	}

	col, ok := t.Lookup(column)
	if !ok {
		return nil, errors.ColumnNotFound(column)
	}
	if col.Kind != table.KindNumeric {
		return nil, errors.ColumnNotNumeric(column)
	}
	data := col.NonMissing()
	if len(data) == 0 {
		return nil, errors.NoData(column)
	}

	min := floats.Min(data)
	max := floats.Max(data)
	edges := make([]float64, bins+1)
	floats.Span(edges, min, max)

	counts := make([]int, bins)
	width := (max - min) / float64(bins)
	for _, v := range data {
		idx := 0
		if width > 0 {
			idx = int((v - min) / width)
			// Values on the upper edge belong to the last bin.
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	return &Histogram{
		Column: column,
		XLabel: column,
		YLabel: "Frequency",
		Edges:  edges,
		Counts: counts,
	}, nil
}
