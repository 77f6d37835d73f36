package filemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenReadsMappedContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n2 3\n"), 0o644))

	fm, err := Open(path)
	require.NoError(t, err)
	defer fm.Close()

	require.Equal(t, "1 2\n2 3\n", string(fm.Bytes()))
	require.Equal(t, 8, fm.Len())
}

func TestCreatePreExtendsAndWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	fm, err := Create(path, 16)
	require.NoError(t, err)
	require.Equal(t, 16, fm.Len())

	fm.ParallelCopyOut(0, []byte("0123456789ABCDEF"))
	require.NoError(t, fm.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0123456789ABCDEF", string(got))
}

func TestParallelCopyRoundTrip(t *testing.T) {
	src := make([]byte, 10000)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, len(src))
	ParallelCopy(dst, src)
	require.Equal(t, src, dst)
}

func TestDetectFormatBinaryMagic(t *testing.T) {
	f, err := DetectFormat([]byte(MagicCOO+"rest"), "whatever")
	require.NoError(t, err)
	require.Equal(t, FormatBinaryCOO, f)

	f, err = DetectFormat([]byte(MagicCSR+"rest"), "whatever")
	require.NoError(t, err)
	require.Equal(t, FormatBinaryCSR, f)
}

func TestDetectFormatUnknownBinaryFails(t *testing.T) {
	_, err := DetectFormat([]byte("CG-ZZZZ"), "whatever.bin")
	require.Error(t, err)
}

func TestDetectFormatBySuffix(t *testing.T) {
	f, err := DetectFormat([]byte("1 2\n"), "graph.mtx")
	require.NoError(t, err)
	require.Equal(t, FormatMatrixMarket, f)

	f, err = DetectFormat([]byte("1 2\n"), "graph.graph")
	require.NoError(t, err)
	require.Equal(t, FormatGraph, f)

	f, err = DetectFormat([]byte("1 2\n"), "graph.txt")
	require.NoError(t, err)
	require.Equal(t, FormatEdgeList, f)
}
