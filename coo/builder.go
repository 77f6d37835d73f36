package coo

import (
	"sync"

	"coograph/bytecursor"
	"coograph/scanner"
)

// partitionRanges splits data into workers byte ranges whose boundaries
// have been adjusted so that no record straddles two ranges: each range
// after the first begins at the first digit of the first line that starts
// after its naive chunk boundary, and each range ends exactly where the
// next one begins. Because this is a pure function of data and workers, it
// is called once per pass (Pass 1 counting, Pass 2 populating) rather than
// shared via clone — recomputing it is cheap and keeps the two passes from
// needing to coordinate cursor state across a goroutine boundary.
func partitionRanges(data []byte, workers int) []bytecursor.Cursor {
	n := len(data)
	if workers < 1 {
		workers = 1
	}

	starts := make([]int, workers+1)
	chunk := n / workers
	for i := 1; i < workers; i++ {
		pos := i * chunk
		if pos > n {
			pos = n
		}
		c := bytecursor.NewRange(data, pos, n)
		for c.Good() {
			b, _ := c.Peek()
			c.Advance(1)
			if b == '\n' {
				break
			}
		}
		scanner.MoveToFirstInt(&c)
		starts[i] = c.Pos()
	}
	starts[workers] = n

	ranges := make([]bytecursor.Cursor, workers)
	for i := 0; i < workers; i++ {
		c := bytecursor.NewRange(data, starts[i], starts[i+1])
		if i == 0 {
			scanner.MoveToFirstInt(&c)
		}
		ranges[i] = c
	}
	return ranges
}

// BuildFromText runs the two-pass parallel construction described in
// SPEC_FULL.md §4.4: Pass 1 counts, per worker, how many records survive
// the structural filter and reduces the per-worker maxima; a barrier turns
// those counts into prefix-sum output offsets and allocates X, Y, and
// (if opts.Wgt) W; Pass 2 re-walks the same partitioning and writes each
// worker's accepted records starting at its own offset, so the two passes
// can run with no shared mutable state beyond the offsets slice computed
// at the barrier.
func BuildFromText[L Label, O Count, W Weight](data []byte, opts Options) (*COO[L, O, W], error) {
	n := len(data)
	workers := opts.workerCount(n)

	ranges1 := partitionRanges(data, workers)
	counts := make([]O, workers)
	maxRows := make([]L, workers)
	maxCols := make([]L, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			c := ranges1[i]
			var k O
			mr, mc := scanRecords[L, W](&c, opts, true, func(x, y L, w W) { k++ })
			counts[i] = k
			maxRows[i] = mr
			maxCols[i] = mc
		}()
	}
	wg.Wait()

	offsets := make([]O, workers+1)
	var maxRow, maxCol L
	for i := 0; i < workers; i++ {
		offsets[i+1] = offsets[i] + counts[i]
		if maxRows[i] > maxRow {
			maxRow = maxRows[i]
		}
		if maxCols[i] > maxCol {
			maxCol = maxCols[i]
		}
	}
	total := offsets[workers]

	x, y, w := allocate[L, O, W](total, opts.Wgt)

	ranges2 := partitionRanges(data, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			c := ranges2[i]
			pos := offsets[i]
			scanRecords[L, W](&c, opts, false, func(rx, ry L, rw W) {
				x[pos] = rx
				y[pos] = ry
				if opts.Wgt {
					w[pos] = rw
				}
				pos++
			})
		}()
	}
	wg.Wait()

	var nrows, ncols, nn L
	if total > 0 {
		nrows = maxRow + 1
		ncols = maxCol + 1
		nn = maxRow
		if maxCol > nn {
			nn = maxCol
		}
		nn++
	}

	return &COO[L, O, W]{
		NRows: nrows,
		NCols: ncols,
		N:     nn,
		M:     total,
		X:     x,
		Y:     y,
		W:     w,
		Sym:   opts.Sym,
		UT:    opts.UT,
		SL:    opts.SL,
		Wgt:   opts.Wgt,
	}, nil
}
