// Package filemap memory-maps a file for reading or pre-sized writing and
// exposes the mapped byte region, a scanning cursor, and parallel block-copy
// helpers. The scanner and the COO builder only ever touch the []byte it
// maps; the gzip and CSV writers and the ".graph" reader open their files
// directly through package os instead.
package filemap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"coograph/bytecursor"
	"coograph/parlay_go"
)

// FileMap is a memory-mapped file, either read-only or pre-extended for
// writing.
type FileMap struct {
	f      *os.File
	data   []byte
	writer bool
}

// Open memory-maps an existing file read-only.
func Open(path string) (*FileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filemap: open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("filemap: stat %s: %w", path, err)
	}
	size := int(fi.Size())
	if size == 0 {
		// mmap of a zero-length file is invalid; return an empty map
		// so callers see Len()==0 rather than failing.
		return &FileMap{f: f, data: nil}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("filemap: mmap %s: %w", path, err)
	}
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
	return &FileMap{f: f, data: data}, nil
}

// Create pre-extends a file to size bytes, then memory-maps it read-write.
// size must be > 0.
func Create(path string, size int) (*FileMap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("filemap: create %s: size must be positive", path)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("filemap: create %s: %w", path, err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, fmt.Errorf("filemap: truncate %s: %w", path, err)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("filemap: mmap %s: %w", path, err)
	}
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
	return &FileMap{f: f, data: data, writer: true}, nil
}

// Bytes returns the mapped region.
func (fm *FileMap) Bytes() []byte { return fm.data }

// Len returns the length of the mapped region.
func (fm *FileMap) Len() int { return len(fm.data) }

// Cursor returns a fresh ByteCursor over the whole mapped region.
func (fm *FileMap) Cursor() bytecursor.Cursor { return bytecursor.New(fm.data) }

// Close unmaps the region and closes the underlying file.
func (fm *FileMap) Close() error {
	var mErr, fErr error
	if fm.data != nil {
		mErr = unix.Munmap(fm.data)
		fm.data = nil
	}
	if fm.f != nil {
		fErr = fm.f.Close()
	}
	if mErr != nil {
		return fmt.Errorf("filemap: munmap: %w", mErr)
	}
	if fErr != nil {
		return fmt.Errorf("filemap: close: %w", fErr)
	}
	return nil
}

// ParallelCopy partitions len(src) (== len(dst)) bytes across
// runtime.GOMAXPROCS(0) goroutines and copies them concurrently. It is
// parlay_go.Append instantiated over byte, used by the binary codec's
// SaveBinary/SaveBinaryCSR to copy an encoded snapshot into a mapped file.
func ParallelCopy(dst, src []byte) {
	if len(dst) != len(src) {
		panic("filemap: ParallelCopy length mismatch")
	}
	parlay_go.Append(src, dst)
}

// ParallelCopyOut copies src into the mapped region at byte offset off.
func (fm *FileMap) ParallelCopyOut(off int, src []byte) {
	ParallelCopy(fm.data[off:off+len(src)], src)
}

// ParallelCopyIn copies from the mapped region at byte offset off into dst.
func (fm *FileMap) ParallelCopyIn(off int, dst []byte) {
	ParallelCopy(dst, fm.data[off:off+len(dst)])
}
