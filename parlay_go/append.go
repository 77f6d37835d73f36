// Package parlay_go implements the small parallel primitives coograph's
// worker pools are built from: a chunk-and-WaitGroup element copy and a
// chunk-and-merge dense-to-sparse index pack.
package parlay_go

import (
	"runtime"
	"sync"
)

// Append partitions len(src) (== len(dst)) elements evenly across
// runtime.GOMAXPROCS(0) goroutines and copies them concurrently. Generalized
// from an []int-only copy into any element type so filemap's byte-region
// copies and any future typed payload copy can share it.
func Append[T any](src, dst []T) {
	n := len(src)
	if n == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s, d []T) {
			defer wg.Done()
			copy(d, s)
		}(src[start:end], dst[start:end])
	}
	wg.Wait()
}
