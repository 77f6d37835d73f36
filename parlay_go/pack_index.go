package parlay_go

import (
	"runtime"
	"sync"

	"coograph/numeric"
)

// PackIndex returns the indices where dense holds true, as T (the caller's
// own label/index width), computed by splitting dense across
// runtime.GOMAXPROCS(0) goroutines, packing each chunk's hits locally, then
// concatenating the per-chunk results in order. Generalized from an
// []bool -> []int packer into T numeric.Unsigned so coo.CompactLabels can
// call it directly with its own L label type instead of packing into []int
// and converting every entry back afterward.
func PackIndex[T numeric.Unsigned](dense []bool) []T {
	n := len(dense)
	if n == 0 {
		return nil
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	locals := make([][]T, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			workers = w
			break
		}
		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			var local []T
			for i := lo; i < hi; i++ {
				if dense[i] {
					local = append(local, T(i))
				}
			}
			locals[idx] = local
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for i := 0; i < workers; i++ {
		total += len(locals[i])
	}
	result := make([]T, 0, total)
	for i := 0; i < workers; i++ {
		result = append(result, locals[i]...)
	}
	return result
}
