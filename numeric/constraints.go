// Package numeric declares the small set of type-parameter constraints used
// throughout coograph's generic containers and parsers, bounding label,
// count, and weight type parameters to the numeric widths that make sense
// for each role instead of leaving them unconstrained.
package numeric

// Unsigned is any unsigned integer width, used for vertex labels (L) and
// edge counts (O). Vertex IDs are unsigned; negative labels are not
// representable.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is any signed integer width, used for integral edge weights.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is any floating-point width, used for real-valued edge weights.
type Float interface {
	~float32 | ~float64
}

// Weight is the union of the two arithmetic classes a weight column may
// take: an integral (signed) width or a floating-point width. Unsigned
// weights are deliberately excluded — the reader grammar treats a leading
// '-' as significant, so a weight column is either signed or real.
type Weight interface {
	Signed | Float
}
