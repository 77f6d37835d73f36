// Package scanner implements TokenScanner: the grammar for decoding
// unsigned integers, signed integers, and floating-point weights out of an
// ASCII byte region, plus the cursor-navigation primitives the COO parser
// uses to find record boundaries. It is built directly on bytecursor.Cursor
// and never allocates on the hot path except ReadWord and error messages.
package scanner

import (
	"coograph/bytecursor"
	"coograph/numeric"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpaceTab(b byte) bool { return b == ' ' || b == '\t' }

func isCommentStart(b byte) bool { return b == '%' || b == '#' }

func isFPChar(b byte) bool {
	return isDigit(b) || b == 'e' || b == 'E' || b == '-' || b == '+' || b == '.'
}

// SkipComments advances past a run of comment lines: while the current byte
// is '%' or '#', it advances to and past the next '\n'.
func SkipComments(c *bytecursor.Cursor) {
	base := c.Base()
	for c.Good() && isCommentStart(base[c.Pos()]) {
		for c.Good() && base[c.Pos()] != '\n' {
			c.Advance(1)
		}
		c.Advance(1)
	}
}

// SkipSpaceTab advances past a run of ' ' and '\t'.
func SkipSpaceTab(c *bytecursor.Cursor) {
	base := c.Base()
	for c.Good() && isSpaceTab(base[c.Pos()]) {
		c.Advance(1)
	}
}

// ReadWord reads a maximal run of bytes that are not space/tab/CR/LF.
func ReadWord(c *bytecursor.Cursor) string {
	base := c.Base()
	start := c.Pos()
	for c.Good() {
		b := base[c.Pos()]
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			break
		}
		c.Advance(1)
	}
	return string(base[start:c.Pos()])
}

// ReadUnsigned skips to the first digit, then folds decimal digits into T.
// It stops at the first non-digit. Overflow wraps in T's own arithmetic;
// callers must choose an adequately wide T.
func ReadUnsigned[T numeric.Unsigned](c *bytecursor.Cursor) T {
	base := c.Base()
	for c.Good() && !isDigit(base[c.Pos()]) {
		c.Advance(1)
	}
	var res T
	for c.Good() && isDigit(base[c.Pos()]) {
		res = res*10 + T(base[c.Pos()]-'0')
		c.Advance(1)
	}
	return res
}

// ReadSigned reads an optional leading '+'/'-', then an unsigned run,
// negating the result if a '-' was seen.
func ReadSigned[T numeric.Signed](c *bytecursor.Cursor) T {
	base := c.Base()
	neg := false
	if c.Good() {
		switch base[c.Pos()] {
		case '-':
			neg = true
			c.Advance(1)
		case '+':
			c.Advance(1)
		}
	}
	var res T
	for c.Good() && isDigit(base[c.Pos()]) {
		res = res*10 + T(base[c.Pos()]-'0')
		c.Advance(1)
	}
	if neg {
		res = -res
	}
	return res
}

// ReadFloat implements the grammar [+-]?D*('.'D*)?([eE][+-]?D+)?, computed
// as an integer part plus frac/10^k, scaled by 10^exp. This trades a few
// ULPs of accuracy against a correctly-rounded strtod in exchange for a
// simple, allocation-free decoder — acceptable for graph edge weights.
func ReadFloat[T numeric.Float](c *bytecursor.Cursor) T {
	base := c.Base()
	for c.Good() && !isFPChar(base[c.Pos()]) {
		c.Advance(1)
	}
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

	var res T
	for c.Good() && isDigit(base[c.Pos()]) {
		res = res*10 + T(base[c.Pos()]-'0')
		c.Advance(1)
	}
	if c.Good() && base[c.Pos()] == '.' {
		c.Advance(1)
		var frac T
		count := 0
		for c.Good() && isDigit(base[c.Pos()]) {
			frac = frac*10 + T(base[c.Pos()]-'0')
			c.Advance(1)
			count++
		}
		res += frac / pow10[T](count)
	}
	if c.Good() && (base[c.Pos()] == 'e' || base[c.Pos()] == 'E') {
		c.Advance(1)
		exp := ReadFloat[T](c)
		res *= pow10Exp(exp)
	}
	if !positive {
		res = -res
	}
	return res
}

func pow10[T numeric.Float](n int) T {
	var res T = 1
	for i := 0; i < n; i++ {
		res *= 10
	}
	return res
}

func pow10Exp[T numeric.Float](exp T) T {
	if exp == 0 {
		return 1
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	var res T = 1
	var base T = 10
	n := int(exp)
	for i := 0; i < n; i++ {
		res *= base
	}
	if neg {
		res = 1 / res
	}
	return res
}

// MoveToNonInt advances past the current run of decimal digits.
func MoveToNonInt(c *bytecursor.Cursor) {
	base := c.Base()
	for c.Good() && isDigit(base[c.Pos()]) {
		c.Advance(1)
	}
}

// MoveToFirstInt advances to the first decimal digit, skipping any
// interleaved comments.
func MoveToFirstInt(c *bytecursor.Cursor) {
	base := c.Base()
	if c.Good() && isCommentStart(base[c.Pos()]) {
		SkipComments(c)
	}
	for c.Good() && !isDigit(base[c.Pos()]) {
		c.Advance(1)
		if c.Good() && isCommentStart(base[c.Pos()]) {
			SkipComments(c)
		}
	}
}

// MoveToNextInt advances through the current integer, then to the start of
// the next one.
func MoveToNextInt(c *bytecursor.Cursor) {
	MoveToNonInt(c)
	MoveToFirstInt(c)
}

// MoveToNextSignedInt advances through an optional current sign and
// integer, then to the start of the next signed integer (a '+', '-', or
// digit), skipping interleaved comments.
func MoveToNextSignedInt(c *bytecursor.Cursor) {
	base := c.Base()
	if c.Good() && (base[c.Pos()] == '+' || base[c.Pos()] == '-') {
		c.Advance(1)
	}
	MoveToNonInt(c)

	if c.Good() && isCommentStart(base[c.Pos()]) {
		SkipComments(c)
	}
	for c.Good() && !isDigit(base[c.Pos()]) && base[c.Pos()] != '+' && base[c.Pos()] != '-' {
		c.Advance(1)
		if c.Good() && isCommentStart(base[c.Pos()]) {
			SkipComments(c)
		}
	}
}

// MoveToFP advances to the first byte that could begin a floating point
// token (a digit, sign, decimal point, or exponent marker).
func MoveToFP(c *bytecursor.Cursor) {
	base := c.Base()
	for c.Good() && !isFPChar(base[c.Pos()]) {
		c.Advance(1)
	}
}

// MoveToNonFP advances past the current run of floating-point-token bytes.
func MoveToNonFP(c *bytecursor.Cursor) {
	base := c.Base()
	for c.Good() && isFPChar(base[c.Pos()]) {
		c.Advance(1)
	}
}

// MoveToEOL advances to the next '\n', leaving the cursor on it (or to end).
func MoveToEOL(c *bytecursor.Cursor) {
	base := c.Base()
	for c.Good() && base[c.Pos()] != '\n' {
		c.Advance(1)
	}
}

// AtEndOfLine reports whether only ' ' and '\r' bytes remain before the
// next '\n'; any other byte, including '\t', makes it false.
func AtEndOfLine(c *bytecursor.Cursor) bool {
	td := c.Clone()
	base := td.Base()
	for td.Good() && base[td.Pos()] != '\n' {
		b := base[td.Pos()]
		if b != ' ' && b != '\r' {
			return false
		}
		td.Advance(1)
	}
	return true
}

// CountSpacesToEOL counts field separators up to the next newline, treating
// runs of numeric tokens as fields and any comment marker as ending the
// line early.
func CountSpacesToEOL(c *bytecursor.Cursor) int {
	base := c.Base()
	count := 0
	for c.Good() && base[c.Pos()] != '\n' {
		for c.Good() && base[c.Pos()] != '\n' && !isCommentStart(base[c.Pos()]) && !isDigit(base[c.Pos()]) {
			c.Advance(1)
		}
		if !c.Good() || !isDigit(base[c.Pos()]) {
			MoveToEOL(c)
			break
		}
		for c.Good() && (isDigit(base[c.Pos()]) || base[c.Pos()] == '.') {
			c.Advance(1)
		}
		if !c.Good() || base[c.Pos()] == '\n' {
			break
		}
		if isCommentStart(base[c.Pos()]) {
			MoveToEOL(c)
			break
		}
		count++
		for c.Good() && base[c.Pos()] == ' ' {
			c.Advance(1)
		}
		if !c.Good() || base[c.Pos()] == '\n' {
			count--
			break
		}
		if isCommentStart(base[c.Pos()]) {
			count--
			MoveToEOL(c)
			break
		}
	}
	return count
}

// AtStr reports whether the bytes at the cursor's current position equal s,
// without consuming them.
func AtStr(c *bytecursor.Cursor, s string) bool {
	if c.Pos()+len(s) > c.End() {
		return false
	}
	return string(c.Slice(c.Pos(), c.Pos()+len(s))) == s
}

// Read reports whether the cursor is at s, and if so consumes it.
func Read(c *bytecursor.Cursor, s string) bool {
	if !AtStr(c, s) {
		return false
	}
	c.Advance(len(s))
	return true
}
