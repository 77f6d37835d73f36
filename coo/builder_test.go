package coo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildAll(t *testing.T, data string, opts Options, workerCounts []int) []*COO[uint32, uint64, float64] {
	t.Helper()
	var results []*COO[uint32, uint64, float64]
	for _, w := range workerCounts {
		o := opts
		o.Workers = w
		g, err := BuildFromText[uint32, uint64, float64]([]byte(data), o)
		require.NoError(t, err)
		results = append(results, g)
	}
	return results
}

func TestBuildFromTextPlainEdgeList(t *testing.T) {
	results := buildAll(t, "0 1\n1 2\n2 0\n", Options{}, []int{1, 2, 4, 64})
	for _, g := range results {
		require.Equal(t, uint64(3), g.M)
		require.Equal(t, []uint32{0, 1, 2}, g.X)
		require.Equal(t, []uint32{1, 2, 0}, g.Y)
		require.EqualValues(t, 3, g.NRows)
		require.EqualValues(t, 3, g.NCols)
	}
}

func TestBuildFromTextSymExpandsBothDirections(t *testing.T) {
	results := buildAll(t, "1 2\n3 1\n", Options{Sym: true}, []int{1, 2, 4})
	for _, g := range results {
		require.Equal(t, uint64(4), g.M)
		require.Equal(t, []uint32{1, 2, 3, 1}, g.X)
		require.Equal(t, []uint32{2, 1, 1, 3}, g.Y)
	}
}

func TestBuildFromTextSymMirrorContributesToDimensions(t *testing.T) {
	results := buildAll(t, "5 1\n", Options{Sym: true}, []int{1, 2, 4})
	for _, g := range results {
		require.Equal(t, []uint32{5, 1}, g.X)
		require.Equal(t, []uint32{1, 5}, g.Y)
		require.EqualValues(t, 6, g.NRows)
		require.EqualValues(t, 6, g.NCols)
	}
}

func TestBuildFromTextUpperTriangleDropsBelowDiagonal(t *testing.T) {
	results := buildAll(t, "3 1\n2 2\n1 3\n", Options{UT: true}, []int{1, 2, 4})
	for _, g := range results {
		require.Equal(t, uint64(2), g.M)
		require.Equal(t, []uint32{2, 1}, g.X)
		require.Equal(t, []uint32{2, 3}, g.Y)
	}
}

func TestBuildFromTextSelfLoopsDropped(t *testing.T) {
	results := buildAll(t, "0 0\n0 1\n2 2\n", Options{SL: true}, []int{1, 2, 4})
	for _, g := range results {
		require.Equal(t, uint64(1), g.M)
		require.Equal(t, []uint32{0}, g.X)
		require.Equal(t, []uint32{1}, g.Y)
	}
}

func TestBuildFromTextWeightsCarried(t *testing.T) {
	results := buildAll(t, "0 1 2.5\n1 2 -3\n", Options{Wgt: true}, []int{1, 2, 4})
	for _, g := range results {
		require.Equal(t, []float64{2.5, -3}, g.W)
	}
}

func TestBuildFromTextCommentsAndBlankAreSkipped(t *testing.T) {
	data := "%% a header\n# another comment\n\n0 1\n% trailing\n1 2\n"
	results := buildAll(t, data, Options{}, []int{1, 2})
	for _, g := range results {
		require.Equal(t, uint64(2), g.M)
	}
}

func TestBuildFromTextEmptyFile(t *testing.T) {
	g, err := BuildFromText[uint32, uint64, float64]([]byte(""), Options{})
	require.NoError(t, err)
	require.Equal(t, uint64(0), g.M)
	require.EqualValues(t, 0, g.NRows)
	require.EqualValues(t, 0, g.NCols)
}

func TestBuildFromTextCommentsOnlyFile(t *testing.T) {
	g, err := BuildFromText[uint32, uint64, float64]([]byte("% nothing here\n# also nothing\n"), Options{})
	require.NoError(t, err)
	require.Equal(t, uint64(0), g.M)
}

func TestBuildFromTextMissingTrailingNewlineStillParsesLastRecord(t *testing.T) {
	g, err := BuildFromText[uint32, uint64, float64]([]byte("0 1\n1 2"), Options{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), g.M)
	require.Equal(t, []uint32{0, 1}, g.X)
	require.Equal(t, []uint32{1, 2}, g.Y)
}

func TestBuildFromTextWorkerCountInvariance(t *testing.T) {
	lines := ""
	for i := 0; i < 500; i++ {
		lines += fmtEdge(i, (i*7+3)%500)
	}
	results := buildAll(t, lines, Options{}, []int{1, 2, 4, 64})
	base := results[0]
	for _, g := range results[1:] {
		require.Equal(t, base.M, g.M)
		require.Equal(t, base.X, g.X)
		require.Equal(t, base.Y, g.Y)
		require.Equal(t, base.NRows, g.NRows)
		require.Equal(t, base.NCols, g.NCols)
	}
}

func fmtEdge(x, y int) string {
	return itoa(x) + " " + itoa(y) + "\n"
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var b []byte
	for v > 0 {
		b = append([]byte{byte('0' + v%10)}, b...)
		v /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}
