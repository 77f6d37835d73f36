package coo

import "coograph/graphutils"

// LoadGraphFilePath reads the CSR adjacency snapshot format used by
// ".graph" files via graphutils.ReadGraphFromBin, then widens its fixed
// uint64/uint32 arrays into this package's own generic L and O types.
func LoadGraphFilePath[L Label, O Count, W Weight](path string) (CSR[L, O, W], error) {
	offsets, endpoints, err := graphutils.ReadGraphFromBin(path)
	if err != nil {
		return CSR[L, O, W]{}, wrapErr(KindIO, err, "reading %s", path)
	}

	n := len(offsets)
	if n > 0 {
		n--
	}
	wideOffsets := make([]O, len(offsets))
	for i, v := range offsets {
		wideOffsets[i] = O(v)
	}
	wideEndpoints := make([]L, len(endpoints))
	for i, v := range endpoints {
		wideEndpoints[i] = L(v)
	}

	return CSR[L, O, W]{
		NRows:     O(n),
		NCols:     O(n),
		Offsets:   wideOffsets,
		Endpoints: wideEndpoints,
	}, nil
}
