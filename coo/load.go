package coo

import "coograph/filemap"

// Load dispatches on filemap.DetectFormat to the appropriate construction
// path: a plain edge list or MatrixMarket file goes through the text
// builder, coograph's own binary COO/CSR snapshots go through the binary
// codec, and a ".graph" adjacency file is read as CSR then converted.
// It is the single entry point cmd/coograph and most library callers use;
// BuildFromText, BuildFromMatrixMarket, LoadBinary, and ConvertCSRToCOO
// remain available directly for callers that already know their format.
func Load[L Label, O Count, W Weight](path string, opts Options) (*COO[L, O, W], error) {
	fm, err := filemap.Open(path)
	if err != nil {
		return nil, wrapErr(KindIO, err, "opening %s", path)
	}
	defer fm.Close()

	data := fm.Bytes()
	format, err := filemap.DetectFormat(data, path)
	if err != nil {
		return nil, wrapErr(KindFormat, err, "detecting format of %s", path)
	}

	switch format {
	case filemap.FormatMatrixMarket:
		return BuildFromMatrixMarket[L, O, W](data, opts)
	case filemap.FormatBinaryCOO:
		return LoadBinary[L, O, W](data, opts)
	case filemap.FormatBinaryCSR:
		csr, err := LoadBinaryCSR[L, O, W](data)
		if err != nil {
			return nil, err
		}
		return ConvertCSRToCOO[L, O, W](csr, opts)
	case filemap.FormatGraph:
		csr, err := LoadGraphFilePath[L, O, W](path)
		if err != nil {
			return nil, err
		}
		return ConvertCSRToCOO[L, O, W](csr, opts)
	case filemap.FormatBinaryDiGraph, filemap.FormatBinaryTensor:
		return nil, newErr(KindUnsupported, "%s snapshots are not a coordinate-list representation and have no COO conversion", path)
	default:
		return BuildFromText[L, O, W](data, opts)
	}
}
