package coo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/klauspost/compress/gzip"

	"coograph/filemap"
)

func uintDigits(v uint64) int {
	if v == 0 {
		return 1
	}
	n := 0
	for v > 0 {
		n++
		v /= 10
	}
	return n
}

// writeUintAt renders v as ASCII decimal digits into buf, writing
// backward from the last byte to avoid an intermediate string allocation.
// len(buf) must equal uintDigits(v).
func writeUintAt(buf []byte, v uint64) {
	if len(buf) == 0 {
		return
	}
	i := len(buf)
	if v == 0 {
		buf[i-1] = '0'
		return
	}
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
}

func weightIsFloat[W Weight]() bool {
	var w W
	switch any(w).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// weightBytes renders w in the shortest round-tripping decimal form for a
// floating-point weight, or plain decimal digits for a signed-integer
// weight. Both int64(w) and float64(w) are legal generic conversions here
// because every type in the Weight union converts to both.
func weightBytes[W Weight](w W, isFloat bool) []byte {
	if isFloat {
		return strconv.AppendFloat(nil, float64(w), 'g', -1, 64)
	}
	return strconv.AppendInt(nil, int64(w), 10)
}

func recordLen[L Label, O Count, W Weight](c *COO[L, O, W], i int, wgt, isFloat bool) int {
	n := uintDigits(uint64(c.X[i])) + 1 + uintDigits(uint64(c.Y[i]))
	if wgt {
		n += 1 + len(weightBytes(c.W[i], isFloat))
	}
	return n + 1 // trailing '\n'
}

func writeRecord[L Label, O Count, W Weight](buf []byte, pos int, c *COO[L, O, W], i int, wgt, isFloat bool) int {
	xd := uintDigits(uint64(c.X[i]))
	writeUintAt(buf[pos:pos+xd], uint64(c.X[i]))
	pos += xd
	buf[pos] = ' '
	pos++

	yd := uintDigits(uint64(c.Y[i]))
	writeUintAt(buf[pos:pos+yd], uint64(c.Y[i]))
	pos += yd

	if wgt {
		buf[pos] = ' '
		pos++
		wb := weightBytes(c.W[i], isFloat)
		copy(buf[pos:], wb)
		pos += len(wb)
	}

	buf[pos] = '\n'
	pos++
	return pos
}

// WriteText serializes a COO as whitespace-separated "x y [w]" records, one
// per line, in X/Y/W order, using the same size-pass-then-populate-pass
// structure BuildFromText uses in reverse: Pass 1 computes each chunk's
// exact rendered byte length in parallel, a barrier turns those lengths
// into prefix-sum offsets and mmaps a file of the resulting total size,
// and Pass 2 renders each chunk's records directly into its slice of the
// mapped file. When opts.Compress is set, WriteText instead streams
// through gzip via writeTextGzip, since a compressor's output size isn't
// knowable ahead of the write.
func WriteText[L Label, O Count, W Weight](path string, c *COO[L, O, W], opts Options) error {
	wgt := opts.Wgt && c.Wgt
	isFloat := weightIsFloat[W]()

	if opts.Compress {
		return writeTextGzip(path, c, wgt, isFloat)
	}

	m := int(c.M)
	workers := opts.workerCount(m)
	chunk := (m + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	type span struct{ lo, hi int }
	var spans []span
	for lo := 0; lo < m; lo += chunk {
		hi := lo + chunk
		if hi > m {
			hi = m
		}
		spans = append(spans, span{lo, hi})
	}
	if len(spans) == 0 {
		spans = []span{{0, 0}}
	}

	lens := make([]int, len(spans))
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for si, sp := range spans {
		si, sp := si, sp
		go func() {
			defer wg.Done()
			total := 0
			for i := sp.lo; i < sp.hi; i++ {
				total += recordLen(c, i, wgt, isFloat)
			}
			lens[si] = total
		}()
	}
	wg.Wait()

	offsets := make([]int, len(spans)+1)
	for i, l := range lens {
		offsets[i+1] = offsets[i] + l
	}
	total := offsets[len(spans)]

	if total == 0 {
		// filemap.Create refuses a zero-length mmap; an empty COO still
		// needs a valid (empty) output file, not an error.
		f, err := os.Create(path)
		if err != nil {
			return wrapErr(KindIO, err, "creating %s", path)
		}
		if err := f.Close(); err != nil {
			return wrapErr(KindIO, err, "closing %s", path)
		}
		return nil
	}

	fm, err := filemap.Create(path, total)
	if err != nil {
		return wrapErr(KindIO, err, "creating %s", path)
	}
	defer fm.Close()
	buf := fm.Bytes()

	wg.Add(len(spans))
	for si, sp := range spans {
		si, sp := si, sp
		go func() {
			defer wg.Done()
			pos := offsets[si]
			for i := sp.lo; i < sp.hi; i++ {
				pos = writeRecord(buf, pos, c, i, wgt, isFloat)
			}
		}()
	}
	wg.Wait()
	return nil
}

func writeTextGzip[L Label, O Count, W Weight](path string, c *COO[L, O, W], wgt, isFloat bool) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapErr(KindIO, err, "creating %s", path)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	bw := bufio.NewWriter(gw)
	scratch := make([]byte, 0, 48)
	for i := 0; i < int(c.M); i++ {
		scratch = scratch[:0]
		scratch = strconv.AppendUint(scratch, uint64(c.X[i]), 10)
		scratch = append(scratch, ' ')
		scratch = strconv.AppendUint(scratch, uint64(c.Y[i]), 10)
		if wgt {
			scratch = append(scratch, ' ')
			scratch = append(scratch, weightBytes(c.W[i], isFloat)...)
		}
		scratch = append(scratch, '\n')
		if _, err := bw.Write(scratch); err != nil {
			return wrapErr(KindIO, err, "writing %s", path)
		}
	}
	if err := bw.Flush(); err != nil {
		return wrapErr(KindIO, err, "flushing gzip stream for %s", path)
	}
	return gw.Close()
}

// WriteCSVChunked writes a COO as a sequence of shard files named
// "<path>.<k>.csv" for k = 0, 1, ..., each holding up to opts.EdgesPerFile
// records (all of them, in one shard, if EdgesPerFile is zero). Every
// shard gets its own header line — "~id,~from,~to,~label" when
// opts.EdgeIDs is set, "~from,~to,~label" otherwise — and each record is
// "[e<i>,]v<x>,v<y>,con": the "v" prefix marks a vertex id and the
// literal ",con" suffix is a fixed relationship-type column consumed by
// bulk-load tooling downstream, not the edge's own weight. Shards are
// written concurrently, one goroutine per file, so no shard needs to know
// any other shard's size ahead of time.
func WriteCSVChunked[L Label, O Count, W Weight](path string, c *COO[L, O, W], opts Options) error {
	m := int(c.M)
	edgesPerFile := opts.EdgesPerFile
	if edgesPerFile <= 0 {
		edgesPerFile = m
	}
	if edgesPerFile < 1 {
		edgesPerFile = 1
	}

	type span struct{ lo, hi int }
	var shards []span
	for lo := 0; lo < m; lo += edgesPerFile {
		hi := lo + edgesPerFile
		if hi > m {
			hi = m
		}
		shards = append(shards, span{lo, hi})
	}
	if len(shards) == 0 {
		shards = []span{{0, 0}}
	}

	var wg sync.WaitGroup
	errs := make([]error, len(shards))
	for k, sp := range shards {
		k, sp := k, sp
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[k] = writeCSVShard(fmt.Sprintf("%s.%d.csv", path, k), c, sp.lo, sp.hi, opts.EdgeIDs)
		}()
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func writeCSVShard[L Label, O Count, W Weight](path string, c *COO[L, O, W], lo, hi int, edgeIDs bool) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapErr(KindIO, err, "creating %s", path)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if edgeIDs {
		bw.WriteString("~id,~from,~to,~label\n")
	} else {
		bw.WriteString("~from,~to,~label\n")
	}
	for i := lo; i < hi; i++ {
		if edgeIDs {
			bw.WriteByte('e')
			bw.WriteString(strconv.FormatUint(uint64(i), 10))
			bw.WriteByte(',')
		}
		bw.WriteByte('v')
		bw.WriteString(strconv.FormatUint(uint64(c.X[i]), 10))
		bw.WriteByte(',')
		bw.WriteByte('v')
		bw.WriteString(strconv.FormatUint(uint64(c.Y[i]), 10))
		bw.WriteString(",con\n")
	}
	return bw.Flush()
}
