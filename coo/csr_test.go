package coo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertCSRToCOOPlain(t *testing.T) {
	csr := CSR[uint32, uint64, float64]{
		Offsets:   []uint64{0, 2, 3, 3},
		Endpoints: []uint32{1, 2, 0},
	}
	g, err := ConvertCSRToCOO[uint32, uint64, float64](csr, Options{})
	require.NoError(t, err)
	require.Equal(t, uint64(3), g.M)
	require.Equal(t, []uint32{0, 0, 1}, g.X)
	require.Equal(t, []uint32{1, 2, 0}, g.Y)
}

func TestConvertCSRToCOOSymDoublesEdges(t *testing.T) {
	csr := CSR[uint32, uint64, float64]{
		Offsets:   []uint64{0, 1, 1},
		Endpoints: []uint32{1},
	}
	g, err := ConvertCSRToCOO[uint32, uint64, float64](csr, Options{Sym: true})
	require.NoError(t, err)
	require.Equal(t, uint64(2), g.M)
	require.ElementsMatch(t, []uint32{0, 1}, g.X)
	require.ElementsMatch(t, []uint32{1, 0}, g.Y)
}

func TestConvertCSRToCOOSymMirrorContributesToDimensions(t *testing.T) {
	csr := CSR[uint32, uint64, float64]{
		Offsets:   []uint64{0, 0, 0, 0, 0, 0, 1},
		Endpoints: []uint32{1},
	}
	g, err := ConvertCSRToCOO[uint32, uint64, float64](csr, Options{Sym: true})
	require.NoError(t, err)
	require.Equal(t, uint64(2), g.M)
	require.ElementsMatch(t, []uint32{5, 1}, g.X)
	require.ElementsMatch(t, []uint32{1, 5}, g.Y)
	require.EqualValues(t, 6, g.NRows)
	require.EqualValues(t, 6, g.NCols)
}

func TestConvertCSRToCOORejectsUnsupportedCombinations(t *testing.T) {
	csr := CSR[uint32, uint64, float64]{Offsets: []uint64{0, 0}}

	_, err := ConvertCSRToCOO[uint32, uint64, float64](csr, Options{SL: true})
	require.Error(t, err)

	_, err = ConvertCSRToCOO[uint32, uint64, float64](csr, Options{UT: true})
	require.Error(t, err)
}

func TestCSRAdjacencyRoundTrip(t *testing.T) {
	csr := CSR[uint32, uint64, float64]{
		Offsets:   []uint64{0, 2, 2, 3},
		Endpoints: []uint32{1, 2, 0},
	}
	adj := csr.ToAdjacency()
	require.Equal(t, [][]uint32{{1, 2}, nil, {0}}, adj)

	back := CSRFromAdjacency[uint32, uint64, float64](adj)
	require.Equal(t, csr.Offsets, back.Offsets)
	require.Equal(t, csr.Endpoints, back.Endpoints)
}
