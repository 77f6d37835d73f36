package coo

import (
	"runtime"
	"sync"

	"coograph/bitutils"
	"coograph/parlay_go"
)

// CompactLabels renumbers a COO's row and column labels into a dense
// [0, k) range, dropping every label that never appears as an X or Y
// value. The "label i is referenced" mask is built in parallel over
// chunks of edges into a shared bitset, using bitutils.FetchOr for the
// concurrent set-bit — two goroutines marking the same word for different
// labels is exactly the race that atomic OR exists to make safe — and then
// unpacked into old-to-new positions with parlay_go.PackIndex. It returns
// the relabeled COO alongside the old-to-new table (indexed by old label)
// so a caller can translate a label of its own, such as a seed vertex,
// into the compacted space.
func CompactLabels[L Label, O Count, W Weight](c *COO[L, O, W]) (*COO[L, O, W], []L) {
	span := int(c.N)
	words := (span + 63) / 64
	bitset := make([]uint64, words)

	m := len(c.X)
	if m > 0 {
		workers := runtime.GOMAXPROCS(0)
		if workers > m {
			workers = m
		}
		chunk := (m + workers - 1) / workers
		var wg sync.WaitGroup
		for lo := 0; lo < m; lo += chunk {
			hi := lo + chunk
			if hi > m {
				hi = m
			}
			lo, hi := lo, hi
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					markUsed(bitset, c.X[i])
					markUsed(bitset, c.Y[i])
				}
			}()
		}
		wg.Wait()
	}

	used := make([]bool, span)
	for i := 0; i < span; i++ {
		used[i] = bitset[i/64]&(uint64(1)<<(uint(i)%64)) != 0
	}

	packed := parlay_go.PackIndex[L](used)
	mapping := make([]L, span)
	for newLabel, oldLabel := range packed {
		mapping[oldLabel] = L(newLabel)
	}

	out := &COO[L, O, W]{
		N:   L(len(packed)),
		M:   c.M,
		X:   make([]L, len(c.X)),
		Y:   make([]L, len(c.Y)),
		W:   c.W,
		Sym: c.Sym,
		UT:  c.UT,
		SL:  c.SL,
		Wgt: c.Wgt,
	}
	for i := range c.X {
		out.X[i] = mapping[int(c.X[i])]
		out.Y[i] = mapping[int(c.Y[i])]
	}
	out.NRows = out.N
	out.NCols = out.N
	return out, mapping
}

func markUsed[L Label](bitset []uint64, label L) {
	idx := uint64(label) / 64
	bit := uint64(1) << (uint64(label) % 64)
	bitutils.FetchOr(&bitset[idx], bit)
}
