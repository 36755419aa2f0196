// Package render draws histograms to PNG. Both front-ends show the exact
// same bytes: the browser serves them from an <img> endpoint, the desktop
// window decodes them into a canvas image.
package render

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/CosmicViraj/go-data-analyzer/internal/analysis"
	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
)

// HistogramPNG renders a histogram as a bar chart titled with the column
// name, bars labeled by bin start, and the frequency axis named.
func HistogramPNG(h *analysis.Histogram, width, height int) ([]byte, error) {
	if h == nil || h.Bins() == 0 {
		return nil, errors.New(errors.CodeRenderError, "nothing to render")
	}

	bars := make([]chart.Value, h.Bins())
	for i, count := range h.Counts {
		label := ""
		// Label every other bar to keep 20 bins readable.
		if i%2 == 0 {
			label = fmt.Sprintf("%.3g", h.Edges[i])
		}
		bars[i] = chart.Value{Value: float64(count), Label: label}
	}

	bc := chart.BarChart{
		Title:  fmt.Sprintf("Histogram of %s", h.XLabel),
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 40},
		},
		BarWidth:   barWidth(width, h.Bins()),
		BarSpacing: 2,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name: h.YLabel,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to render histogram")
	}
	return buf.Bytes(), nil
}

// barWidth sizes bars to fill the drawable width.
func barWidth(chartWidth, bins int) int {
	w := (chartWidth - 100) / bins
	if w < 2 {
		w = 2
	}
	return w
}
