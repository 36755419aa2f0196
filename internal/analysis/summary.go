// Package analysis computes the per-column descriptive statistics and the
// histogram binning shared by both front-ends.
package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/CosmicViraj/go-data-analyzer/domain/table"
)

// ColumnSummary holds the descriptive statistics for one numeric column.
// All float fields carry full precision; rounding happens at display time.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
	Range  float64
}

// Summarize computes descriptive statistics for every numeric column, in the
// table's original column order. Text columns are excluded entirely. A table
// with no numeric columns yields an empty slice, not an error.
func Summarize(t *table.Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(t.Columns()))
	for _, col := range t.Columns() {
		if col.Kind != table.KindNumeric {
			continue
		}
		summaries = append(summaries, summarizeColumn(col))
	}
	return summaries
}

// summarizeColumn reduces one numeric column. A column with zero non-missing
// values keeps Count 0 with every statistic NaN rather than erroring.
func summarizeColumn(col table.Column) ColumnSummary {
	data := col.NonMissing()
	s := ColumnSummary{Column: col.Name, Count: len(data)}
	if len(data) == 0 {
		nan := math.NaN()
		s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max, s.Range = nan, nan, nan, nan, nan, nan, nan, nan
		return s
	}

	s.Mean, _ = stats.Mean(data)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	s.Median, _ = stats.Median(data)
	s.Q25, _ = stats.Percentile(data, 25)
	s.Q75, _ = stats.Percentile(data, 75)
	s.Range = s.Max - s.Min

	// Sample standard deviation is undefined for a single observation.
	if len(data) < 2 {
		s.StdDev = math.NaN()
	} else {
		s.StdDev, _ = stats.StandardDeviationSample(data)
	}
	return s
}

// FormatValue renders a statistic for display, rounded to two decimal places.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}
