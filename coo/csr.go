package coo

import "sync"

// csrGrain is the number of source rows assigned to each goroutine when
// converting a CSR into COO — coarse enough that per-row work (a handful
// of neighbor scans) doesn't drown in goroutine overhead.
const csrGrain = 10000

// CSR is the compressed-sparse-row counterpart to COO: Offsets has n+1
// entries where Offsets[r]..Offsets[r+1] indexes into Endpoints for row r's
// neighbors, and Weights (if present) is parallel to Endpoints.
type CSR[L Label, O Count, W Weight] struct {
	NRows O
	NCols O

	Offsets   []O
	Endpoints []L
	Weights   []W // nil unless the source graph carries weights
}

// ToAdjacency expands a CSR into an adjacency list, one slice of neighbor
// labels per row. Adapted from a fixed []int/uint64/uint32 adjacency
// builder into this package's generic L/O types.
func (c CSR[L, O, W]) ToAdjacency() [][]L {
	n := len(c.Offsets) - 1
	if n < 0 {
		n = 0
	}
	g := make([][]L, n)
	for u := 0; u < n; u++ {
		g[u] = append(g[u], c.Endpoints[c.Offsets[u]:c.Offsets[u+1]]...)
	}
	return g
}

// CSRFromAdjacency flattens an adjacency list back into CSR form, the
// inverse of ToAdjacency.
func CSRFromAdjacency[L Label, O Count, W Weight](g [][]L) CSR[L, O, W] {
	n := len(g)
	offsets := make([]O, n+1)
	var endpoints []L
	for u := 0; u < n; u++ {
		offsets[u+1] = offsets[u] + O(len(g[u]))
		endpoints = append(endpoints, g[u]...)
	}
	return CSR[L, O, W]{NRows: O(n), NCols: O(n), Offsets: offsets, Endpoints: endpoints}
}

// ConvertCSRToCOO expands a CSR adjacency into a COO edge list, applying
// the same structural filter table as BuildFromText via filterEdge. A CSR
// is a directed adjacency by construction, so two combinations the text
// path handles freely are not well-defined here and return
// KindUnsupported: dropping self-loops (a CSR may store them as an
// intentional zero-weight diagonal a caller depends on) and extracting an
// upper triangle from a non-symmetrized CSR (there is no canonical
// "triangle" of a directed graph). opts.Sym without opts.UT is supported
// and mirrors every entry except self-loops, which are emitted once,
// matching the doubling BuildFromText performs on a text file.
func ConvertCSRToCOO[L Label, O Count, W Weight](csr CSR[L, O, W], opts Options) (*COO[L, O, W], error) {
	if opts.SL {
		return nil, newErr(KindUnsupported, "dropping self-loops during CSR-to-COO conversion is not supported")
	}
	if !opts.Sym && opts.UT {
		return nil, newErr(KindUnsupported, "extracting an upper triangle from a non-symmetric CSR is not supported")
	}

	n := len(csr.Offsets)
	if n > 0 {
		n--
	}
	wgt := opts.Wgt && csr.Weights != nil

	workers := opts.workerCount(n)
	if workers < 1 {
		workers = 1
	}
	rowsPerWorker := csrGrain
	chunks := (n + rowsPerWorker - 1) / rowsPerWorker
	if chunks < 1 {
		chunks = 1
	}
	if chunks < workers {
		rowsPerWorker = (n + workers - 1) / workers
		if rowsPerWorker < 1 {
			rowsPerWorker = 1
		}
	}

	counts := make([]O, 0, (n+rowsPerWorker-1)/rowsPerWorker+1)
	type span struct{ lo, hi int }
	var spans []span
	for lo := 0; lo < n; lo += rowsPerWorker {
		hi := lo + rowsPerWorker
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo, hi})
		counts = append(counts, 0)
	}
	if len(spans) == 0 {
		spans = []span{{0, 0}}
		counts = []O{0}
	}

	maxRows := make([]L, len(spans))
	maxCols := make([]L, len(spans))
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for si, sp := range spans {
		si, sp := si, sp
		go func() {
			defer wg.Done()
			var k O
			var localMaxRow, localMaxCol L
			for r := sp.lo; r < sp.hi; r++ {
				row := L(r)
				for idx := csr.Offsets[r]; idx < csr.Offsets[r+1]; idx++ {
					c := csr.Endpoints[idx]
					_, _, keep, mirror := filterEdge(opts, row, c)
					if !keep {
						continue
					}
					k++
					if row > localMaxRow {
						localMaxRow = row
					}
					if c > localMaxCol {
						localMaxCol = c
					}
					if mirror {
						k++
						if c > localMaxRow {
							localMaxRow = c
						}
						if row > localMaxCol {
							localMaxCol = row
						}
					}
				}
			}
			counts[si] = k
			maxRows[si] = localMaxRow
			maxCols[si] = localMaxCol
		}()
	}
	wg.Wait()

	var maxRow, maxCol L
	offsets := make([]O, len(spans)+1)
	for i, c := range counts {
		offsets[i+1] = offsets[i] + c
		if maxRows[i] > maxRow {
			maxRow = maxRows[i]
		}
		if maxCols[i] > maxCol {
			maxCol = maxCols[i]
		}
	}
	total := offsets[len(spans)]

	x, y, w := allocate[L, O, W](total, wgt)

	wg.Add(len(spans))
	for si, sp := range spans {
		si, sp := si, sp
		go func() {
			defer wg.Done()
			pos := offsets[si]
			for r := sp.lo; r < sp.hi; r++ {
				row := L(r)
				for idx := csr.Offsets[r]; idx < csr.Offsets[r+1]; idx++ {
					c := csr.Endpoints[idx]
					ex, ey, keep, mirror := filterEdge(opts, row, c)
					if !keep {
						continue
					}
					x[pos] = ex
					y[pos] = ey
					if wgt {
						w[pos] = csr.Weights[idx]
					}
					pos++
					if mirror {
						x[pos] = ey
						y[pos] = ex
						if wgt {
							w[pos] = csr.Weights[idx]
						}
						pos++
					}
				}
			}
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
		Wgt:   wgt,
	}, nil
}
