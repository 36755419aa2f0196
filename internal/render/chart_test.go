package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/CosmicViraj/go-data-analyzer/internal/analysis"
	"github.com/CosmicViraj/go-data-analyzer/internal/dataset"
)

func TestHistogramPNG_ProducesDecodablePNG(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("score\n1\n2\n2\n3\n5\n8\n9\n9\n9\n10\n"))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	hist, err := analysis.BuildHistogram(tbl, "score", analysis.DefaultBins)
	if err != nil {
		t.Fatalf("BuildHistogram: %v", err)
	}

	data, err := HistogramPNG(hist, 800, 500)
	if err != nil {
		t.Fatalf("HistogramPNG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty PNG output")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 500 {
		t.Errorf("unexpected image size %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestHistogramPNG_NilHistogram(t *testing.T) {
	if _, err := HistogramPNG(nil, 800, 500); err == nil {
		t.Fatal("expected error for nil histogram")
	}
}
