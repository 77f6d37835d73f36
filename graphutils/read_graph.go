// Package graphutils holds small CSR-shaped file and structure adapters
// coograph's binary loaders build on.
package graphutils

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ReadGraphFromBin reads a CSR adjacency snapshot: three little-endian
// uint64 header words (n vertices, m edges, a declared total byte size
// that must equal the size n and m imply), n+1 uint64
// offsets, then m uint32 endpoint ids.
func ReadGraphFromBin(path string) (offsets []uint64, edges []uint32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var n, m, sizes uint64
	if err = binary.Read(f, binary.LittleEndian, &n); err != nil {
		return
	}
	if err = binary.Read(f, binary.LittleEndian, &m); err != nil {
		return
	}
	if err = binary.Read(f, binary.LittleEndian, &sizes); err != nil {
		return
	}
	expected := (n+1)*8 + m*4 + 3*8
	if sizes != expected {
		return nil, nil, fmt.Errorf("size mismatch: got %d, expected %d", sizes, expected)
	}

	offsets = make([]uint64, n+1)
	if err = binary.Read(f, binary.LittleEndian, &offsets); err != nil {
		return
	}

	edges = make([]uint32, m)
	if err = binary.Read(f, binary.LittleEndian, &edges); err != nil {
		return
	}

	return offsets, edges, nil
}
