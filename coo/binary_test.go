package coo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadBinaryRoundTrip(t *testing.T) {
	g, err := BuildFromText[uint32, uint64, float64]([]byte("0 1 1.5\n1 2 2.5\n2 0 3.5\n"), Options{Wgt: true})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.cgcoo")
	require.NoError(t, SaveBinary(path, g, Options{Wgt: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got, err := LoadBinary[uint32, uint64, float64](data, Options{Wgt: true})
	require.NoError(t, err)
	require.Equal(t, g.X, got.X)
	require.Equal(t, g.Y, got.Y)
	require.Equal(t, g.W, got.W)
	require.Equal(t, g.NRows, got.NRows)
	require.Equal(t, g.NCols, got.NCols)
	require.Equal(t, g.M, got.M)
}

func TestLoadBinaryRejectsWidthMismatch(t *testing.T) {
	g, err := BuildFromText[uint32, uint64, float64]([]byte("0 1\n"), Options{})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.cgcoo")
	require.NoError(t, SaveBinary(path, g, Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = LoadBinary[uint64, uint64, float64](data, Options{})
	require.Error(t, err)
	var cErr *Error
	require.ErrorAs(t, err, &cErr)
	require.Equal(t, KindWidth, cErr.Kind)
}

func TestSaveLoadBinaryCSRRoundTrip(t *testing.T) {
	csr := CSR[uint32, uint64, float64]{
		NRows:     3,
		NCols:     3,
		Offsets:   []uint64{0, 2, 3, 3},
		Endpoints: []uint32{1, 2, 0},
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.cgcsr")
	require.NoError(t, SaveBinaryCSR(path, csr))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got, err := LoadBinaryCSR[uint32, uint64, float64](data)
	require.NoError(t, err)
	require.Equal(t, csr.Offsets, got.Offsets)
	require.Equal(t, csr.Endpoints, got.Endpoints)
}
