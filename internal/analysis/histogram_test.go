package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosmicViraj/go-data-analyzer/internal/dataset"
	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
)

func TestBuildHistogram_CountsSumToN(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("v\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"))
	require.NoError(t, err)

	hist, err := BuildHistogram(tbl, "v", DefaultBins)
	require.NoError(t, err)

	assert.Equal(t, DefaultBins, hist.Bins())
	assert.Len(t, hist.Edges, DefaultBins+1)
	assert.Equal(t, "v", hist.XLabel)
	assert.Equal(t, "Frequency", hist.YLabel)

	total := 0
	for _, c := range hist.Counts {
		total += c
	}
	assert.Equal(t, 10, total)

	// Edges span [min, max].
	assert.InDelta(t, 1.0, hist.Edges[0], 1e-9)
	assert.InDelta(t, 10.0, hist.Edges[DefaultBins], 1e-9)
}

func TestBuildHistogram_UpperEdgeInLastBin(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("v\n0\n10\n"))
	require.NoError(t, err)

	hist, err := BuildHistogram(tbl, "v", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, hist.Counts[0])
	assert.Equal(t, 1, hist.Counts[4])
}

func TestBuildHistogram_ConstantColumn(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("v\n3\n3\n3\n"))
	require.NoError(t, err)

	hist, err := BuildHistogram(tbl, "v", DefaultBins)
	require.NoError(t, err)

	total := 0
	for _, c := range hist.Counts {
		total += c
	}
	assert.Equal(t, 3, total)
}

func TestBuildHistogram_ColumnNotFound(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("v\n1\n"))
	require.NoError(t, err)

	_, err = BuildHistogram(tbl, "nope", DefaultBins)
	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnNotFound, errors.GetCode(err))
}

func TestBuildHistogram_ColumnNotNumeric(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("name\nann\nbob\n"))
	require.NoError(t, err)

	_, err = BuildHistogram(tbl, "name", DefaultBins)
	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnNotNumeric, errors.GetCode(err))
}

func TestBuildHistogram_AllMissing(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("a,b\n1,\n2,\n"))
	require.NoError(t, err)

	_, err = BuildHistogram(tbl, "b", DefaultBins)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNoData, errors.GetCode(err))
}

func TestBuildHistogram_DefaultsBins(t *testing.T) {
	tbl, err := dataset.LoadCSV(strings.NewReader("v\n1\n2\n"))
	require.NoError(t, err)

	hist, err := BuildHistogram(tbl, "v", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBins, hist.Bins())
}
