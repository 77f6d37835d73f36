package coo

import (
	"coograph/bytecursor"
	"coograph/scanner"
)

// parseWeight reads (or, when counting, merely skips over) one weight
// token using the arithmetic operators common to both the Signed and Float
// halves of the Weight constraint. A signed-integer weight column never
// contains '.' or 'e'/'E', so running the same digit+fraction+exponent
// grammar over it is indistinguishable from a plain read_signed<W> pass —
// this keeps the counting and populating passes, and the integral and
// floating-point weight kinds, on one code path instead of four.
func parseWeight[W Weight](c *bytecursor.Cursor, counting bool) W {
	scanner.MoveToFP(c)
	if counting {
		scanner.MoveToNonFP(c)
		var zero W
		return zero
	}
	v := readWeightValue[W](c)
	scanner.MoveToNonFP(c)
	return v
}

func readWeightValue[W Weight](c *bytecursor.Cursor) W {
	base := c.Base()
	positive := true
	if c.Good() {
		switch base[c.Pos()] {
		case '-':
			positive = false
			c.Advance(1)
		case '+':
			c.Advance(1)
		}
	}

	var res W
	for c.Good() && base[c.Pos()] >= '0' && base[c.Pos()] <= '9' {
		res = res*10 + W(base[c.Pos()]-'0')
		c.Advance(1)
	}
	if c.Good() && base[c.Pos()] == '.' {
		c.Advance(1)
		var frac W
		count := 0
		for c.Good() && base[c.Pos()] >= '0' && base[c.Pos()] <= '9' {
			frac = frac*10 + W(base[c.Pos()]-'0')
			c.Advance(1)
			count++
		}
		if count > 0 {
			var div W = 1
			for i := 0; i < count; i++ {
				div *= 10
			}
			res += frac / div
		}
	}
	if c.Good() && (base[c.Pos()] == 'e' || base[c.Pos()] == 'E') {
		c.Advance(1)
		expNeg := false
		if c.Good() {
			switch base[c.Pos()] {
			case '-':
				expNeg = true
				c.Advance(1)
			case '+':
				c.Advance(1)
			}
		}
		exp := 0
		for c.Good() && base[c.Pos()] >= '0' && base[c.Pos()] <= '9' {
			exp = exp*10 + int(base[c.Pos()]-'0')
			c.Advance(1)
		}
		if expNeg {
			for i := 0; i < exp; i++ {
				res /= 10
			}
		} else {
			for i := 0; i < exp; i++ {
				res *= 10
			}
		}
	}
	if !positive {
		res = -res
	}
	return res
}

// filterEdge applies the structural predicate table from §3 to one
// (x, y) pair, shared by the text-record scanner and the CSR converter so
// the two never drift apart on filter semantics. It returns the possibly
// swapped pair, whether it survives at all, and whether a mirrored (y, x)
// entry must also be emitted.
func filterEdge[L Label](opts Options, x, y L) (ex, ey L, keep, mirror bool) {
	if opts.SL && x == y {
		return x, y, false, false
	}
	if !opts.Sym && opts.UT && x > y {
		return x, y, false, false
	}
	if opts.Sym && opts.UT && x > y {
		x, y = y, x
	}
	return x, y, true, opts.Sym && !opts.UT && x != y
}

// emitFunc receives one accepted (post-filter) entry: the counting pass
// increments a local counter, the populating pass writes into X/Y/W and
// advances an output cursor.
type emitFunc[L Label, W Weight] func(x, y L, w W)

// scanRecords walks every record in c's range and applies the structural
// filter table from §3, calling emit once (or twice, for SYM&&!UT
// mirroring) per accepted record. Pass 1 and Pass 2 both call this with the
// same c positioning logic and the same opts, differing only in emit and
// in whether counting is set (which controls whether the weight token's
// value is materialized) — so the two passes cannot drift out of sync.
//
// A record whose fields are readable but whose line lacks a trailing '\n'
// (the file simply ends) is still emitted: the accept/reject decision and
// the emit call both happen before this loop re-checks c.Good() for the
// next iteration, so exhaustion never discards an already-read record.
func scanRecords[L Label, W Weight](c *bytecursor.Cursor, opts Options, counting bool, emit emitFunc[L, W]) (maxRow, maxCol L) {
	for c.Good() {
		x := scanner.ReadUnsigned[L](c)
		scanner.MoveToNextInt(c)
		y := scanner.ReadUnsigned[L](c)

		var w W
		if opts.Wgt {
			w = parseWeight[W](c, counting)
		}

		scanner.MoveToEOL(c)
		scanner.MoveToNextInt(c)

		ex, ey, keep, mirror := filterEdge(opts, x, y)
		if !keep {
			continue
		}
		x, y = ex, ey

		emit(x, y, w)
		if mirror {
			emit(y, x, w)
		}

		if x > maxRow {
			maxRow = x
		}
		if y > maxCol {
			maxCol = y
		}
		if mirror {
			if y > maxRow {
				maxRow = y
			}
			if x > maxCol {
				maxCol = x
			}
		}
	}
	return maxRow, maxCol
}
