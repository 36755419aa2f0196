package desktop

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/CosmicViraj/go-data-analyzer/internal/analysis"
)

// NoNumericMessage is shown instead of an empty statistics table.
const NoNumericMessage = "No numeric columns found in this dataset."

// FormatSummaries renders the summary records as the monospaced text block
// shown in the output pane: a statistics table followed by per-column range
// lines, everything rounded to two decimals.
func FormatSummaries(summaries []analysis.ColumnSummary) string {
	if len(summaries) == 0 {
		return NoNumericMessage
	}

	var buf bytes.Buffer
	buf.WriteString("### Descriptive Statistics ###\n\n")

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Column,
			s.Count,
			analysis.FormatValue(s.Mean),
			analysis.FormatValue(s.StdDev),
			analysis.FormatValue(s.Min),
			analysis.FormatValue(s.Q25),
			analysis.FormatValue(s.Median),
			analysis.FormatValue(s.Q75),
			analysis.FormatValue(s.Max),
		)
	}
	tw.Flush()

	buf.WriteString("\n### Range (Max - Min) ###\n")
	for _, s := range summaries {
		fmt.Fprintf(&buf, "Range for %s: %s\n", s.Column, analysis.FormatValue(s.Range))
	}
	return buf.String()
}
