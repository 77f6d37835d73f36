package filemap

import (
	"fmt"
	"strings"
)

// Format identifies the on-disk representation of a file the loader was
// pointed at.
type Format int

const (
	// FormatEdgeList is a plain-text "x y [w]" edge list.
	FormatEdgeList Format = iota
	// FormatMatrixMarket is a MatrixMarket coordinate file.
	FormatMatrixMarket
	// FormatGraph is a weighted adjacency ".graph" file, delegated to a
	// CSR loader then converted via the CSR→COO path.
	FormatGraph
	// FormatBinaryCOO is coograph's own binary COO snapshot.
	FormatBinaryCOO
	// FormatBinaryCSR is coograph's own binary CSR snapshot.
	FormatBinaryCSR
	// FormatBinaryDiGraph is a binary DiGraph snapshot. It is recognized
	// by its magic only; coo.Load rejects it as unsupported.
	FormatBinaryDiGraph
	// FormatBinaryTensor is a binary Tensor snapshot. It is recognized by
	// its magic only; coo.Load rejects it as unsupported.
	FormatBinaryTensor
)

// Binary magic markers. All of coograph's own binary containers share the
// 3-byte family prefix "CG-" followed by a 4-byte kind tag; this lets
// DetectFormat distinguish "one of ours, unknown kind" (FormatError) from
// "not ours at all" (fall through to suffix/edge-list detection).
const (
	magicFamily  = "CG-"
	MagicCOO     = "CG-COO1"
	MagicCSR     = "CG-CSR1"
	MagicDiGraph = "CG-DGR1"
	MagicTensor  = "CG-TSR1"
)

// DetectFormat inspects the first bytes of data for one of coograph's own
// binary magic markers; failing that, it inspects filename's suffix for
// ".mtx" or ".graph"; failing that, it defaults to an edge list.
func DetectFormat(data []byte, filename string) (Format, error) {
	switch {
	case hasPrefix(data, MagicCOO):
		return FormatBinaryCOO, nil
	case hasPrefix(data, MagicCSR):
		return FormatBinaryCSR, nil
	case hasPrefix(data, MagicDiGraph):
		return FormatBinaryDiGraph, nil
	case hasPrefix(data, MagicTensor):
		return FormatBinaryTensor, nil
	case hasPrefix(data, magicFamily):
		return 0, fmt.Errorf("filemap: unsupported binary format (unrecognized %s kind tag)", magicFamily)
	}

	if strings.HasSuffix(filename, ".mtx") {
		return FormatMatrixMarket, nil
	}
	if strings.HasSuffix(filename, ".graph") {
		return FormatGraph, nil
	}
	return FormatEdgeList, nil
}

func hasPrefix(data []byte, prefix string) bool {
	if len(data) < len(prefix) {
		return false
	}
	return string(data[:len(prefix)]) == prefix
}
