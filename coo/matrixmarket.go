package coo

import (
	"log"

	"coograph/bytecursor"
	"coograph/scanner"
)

type mmField int

const (
	mmFieldReal mmField = iota
	mmFieldInteger
	mmFieldPattern
)

// mmHeader is the parsed %%MatrixMarket banner plus the "nrows ncols nnz"
// size line that follows any interleaved comment lines.
type mmHeader struct {
	Field     mmField
	Symmetric bool
	NRows     uint64
	NCols     uint64
	NNZ       uint64
	BodyStart int
}

// parseMatrixMarketHeader reads the banner line ("%%MatrixMarket matrix
// coordinate <field> <symmetry>") and the size line, returning the byte
// offset where the coordinate body begins. Only the coordinate storage
// scheme is supported; array (dense) MatrixMarket files are rejected.
func parseMatrixMarketHeader(data []byte) (mmHeader, error) {
	c := bytecursor.New(data)
	if !scanner.Read(&c, "%%MatrixMarket") {
		return mmHeader{}, newErr(KindFormat, "missing %%%%MatrixMarket banner")
	}
	scanner.SkipSpaceTab(&c)
	if obj := scanner.ReadWord(&c); obj != "matrix" {
		return mmHeader{}, newErr(KindFormat, "unsupported MatrixMarket object %q (only \"matrix\" is supported)", obj)
	}
	scanner.SkipSpaceTab(&c)
	if kind := scanner.ReadWord(&c); kind != "coordinate" {
		return mmHeader{}, newErr(KindFormat, "unsupported MatrixMarket storage scheme %q (only \"coordinate\" is supported)", kind)
	}
	scanner.SkipSpaceTab(&c)
	fieldWord := scanner.ReadWord(&c)
	var field mmField
	switch fieldWord {
	case "real", "double":
		field = mmFieldReal
	case "integer":
		field = mmFieldInteger
	case "pattern":
		field = mmFieldPattern
	default:
		return mmHeader{}, newErr(KindFormat, "unsupported MatrixMarket field %q", fieldWord)
	}
	scanner.SkipSpaceTab(&c)
	symWord := scanner.ReadWord(&c)
	var symmetric bool
	switch symWord {
	case "general", "skew-symmetric":
		symmetric = false
	case "symmetric":
		symmetric = true
	default:
		return mmHeader{}, newErr(KindFormat, "unsupported MatrixMarket symmetry %q", symWord)
	}

	scanner.MoveToFirstInt(&c)
	nrows := scanner.ReadUnsigned[uint64](&c)
	scanner.MoveToNextInt(&c)
	ncols := scanner.ReadUnsigned[uint64](&c)
	scanner.MoveToNextInt(&c)
	nnz := scanner.ReadUnsigned[uint64](&c)
	scanner.MoveToEOL(&c)
	c.Advance(1)

	return mmHeader{
		Field:     field,
		Symmetric: symmetric,
		NRows:     nrows,
		NCols:     ncols,
		NNZ:       nnz,
		BodyStart: c.Pos(),
	}, nil
}

// BuildFromMatrixMarket parses a MatrixMarket coordinate file's header,
// then hands the remaining body bytes to BuildFromText using the same
// record grammar and structural filter as a plain edge list. Body labels
// are kept exactly as written — MatrixMarket labels are 1-based, and this
// package never renumbers them — so the only MatrixMarket-specific work is
// the header itself, deriving NRows/NCols from the header's declared
// (0-based) dimensions, and the post-parse consistency check against the
// body's own labels and nnz.
func BuildFromMatrixMarket[L Label, O Count, W Weight](data []byte, opts Options) (*COO[L, O, W], error) {
	hdr, err := parseMatrixMarketHeader(data)
	if err != nil {
		return nil, err
	}

	bodyOpts := opts
	if hdr.Field == mmFieldPattern {
		bodyOpts.Wgt = false
	}
	if hdr.Symmetric != opts.Sym {
		log.Printf("coo: MatrixMarket header declares symmetric=%v but Options.Sym=%v; honoring Options.Sym", hdr.Symmetric, opts.Sym)
	}

	result, err := BuildFromText[L, O, W](data[hdr.BodyStart:], bodyOpts)
	if err != nil {
		return nil, err
	}

	if err := checkMatrixMarketConsistency(hdr, result.NRows, result.NCols, result.M, opts); err != nil {
		return nil, err
	}

	result.NRows = L(hdr.NRows + 1)
	result.NCols = L(hdr.NCols + 1)
	result.N = result.NRows
	if result.NCols > result.N {
		result.N = result.NCols
	}
	return result, nil
}

// checkMatrixMarketConsistency cross-checks the header's declared
// dimensions and nnz against what the body actually contains: a row or
// column label requiring more rows/columns than the header (plus one, for
// the 1-based labeling convention) declares contradicts the header. The
// nnz relationship depends on the caller's own structural request
// (opts.Sym/opts.SL), never the header's own symmetry word — the header
// word only ever drives the non-fatal mismatch warning above, since a
// caller may request a symmetric expansion of a "general" file (or vice
// versa) and that is a legal, if unusual, combination.
func checkMatrixMarketConsistency[L Label, O Count](hdr mmHeader, nrows, ncols L, m O, opts Options) error {
	if uint64(nrows) > hdr.NRows+1 {
		return newErr(KindContradiction, "MatrixMarket header declares nrows=%d but body contains a row label requiring nrows=%d", hdr.NRows, uint64(nrows))
	}
	if uint64(ncols) > hdr.NCols+1 {
		return newErr(KindContradiction, "MatrixMarket header declares ncols=%d but body contains a column label requiring ncols=%d", hdr.NCols, uint64(ncols))
	}
	switch {
	case opts.Sym:
		// A symmetric read doubles every non-self-loop entry, so the header's
		// nnz (one line per stored edge) can be at most twice the post-filter
		// count.
		if hdr.NNZ > 2*uint64(m) {
			return newErr(KindContradiction, "MatrixMarket header declares nnz=%d but body yielded only %d entries after symmetric expansion", hdr.NNZ, uint64(m))
		}
	case !opts.SL:
		// No filtering drops entries here, so the header can declare at most
		// as many as the body actually produced.
		if hdr.NNZ > uint64(m) {
			return newErr(KindContradiction, "MatrixMarket header declares nnz=%d but body yielded only %d entries", hdr.NNZ, uint64(m))
		}
	default:
		if hdr.NNZ != uint64(m) {
			return newErr(KindContradiction, "MatrixMarket header declares nnz=%d but body yielded %d entries after self-loop filtering", hdr.NNZ, uint64(m))
		}
	}
	return nil
}
