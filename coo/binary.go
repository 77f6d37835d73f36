package coo

import (
	"bytes"
	"encoding/binary"

	"coograph/filemap"
	"coograph/numeric"
)

// widthOf reports the on-disk byte width of an unsigned numeric type
// parameter. Go's generics erase to a concrete kind at each instantiation,
// so this is a closed switch over the kinds numeric.Unsigned admits rather
// than a call to unsafe.Sizeof — keeping the codec free of "unsafe".
func widthOf[T numeric.Unsigned]() uint8 {
	var v T
	switch any(v).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

func putUint[T numeric.Unsigned](buf *bytes.Buffer, v T, width uint8) {
	x := uint64(v)
	b := make([]byte, width)
	for i := 0; i < int(width); i++ {
		b[i] = byte(x)
		x >>= 8
	}
	buf.Write(b)
}

func getUint[T numeric.Unsigned](b []byte) T {
	var res uint64
	for i := len(b) - 1; i >= 0; i-- {
		res = res<<8 | uint64(b[i])
	}
	return T(res)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// SaveBinary encodes a COO into coograph's self-describing binary snapshot
// format: magic, then one byte each for the on-disk label and count
// widths, then NRows/NCols/N/M, then the four structural-predicate flags,
// then the X, Y, and (if Wgt) W payloads as flat little-endian arrays. The
// buffer is built in memory first (its final size is known up front, unlike
// the text writer) and then copied into a single mmap'd file in one shot.
func SaveBinary[L Label, O Count, W Weight](path string, c *COO[L, O, W], opts Options) error {
	lw := widthOf[L]()
	ow := widthOf[O]()

	var buf bytes.Buffer
	buf.WriteString(filemap.MagicCOO)
	buf.WriteByte(lw)
	buf.WriteByte(ow)
	putUint(&buf, c.NRows, lw)
	putUint(&buf, c.NCols, lw)
	putUint(&buf, c.N, lw)
	putUint(&buf, c.M, ow)
	buf.WriteByte(boolByte(c.Sym))
	buf.WriteByte(boolByte(c.UT))
	buf.WriteByte(boolByte(c.SL))
	buf.WriteByte(boolByte(c.Wgt))

	if err := binary.Write(&buf, binary.LittleEndian, c.X); err != nil {
		return wrapErr(KindIO, err, "encoding X payload")
	}
	if err := binary.Write(&buf, binary.LittleEndian, c.Y); err != nil {
		return wrapErr(KindIO, err, "encoding Y payload")
	}
	if c.Wgt {
		if err := binary.Write(&buf, binary.LittleEndian, c.W); err != nil {
			return wrapErr(KindIO, err, "encoding W payload")
		}
	}

	fm, err := filemap.Create(path, buf.Len())
	if err != nil {
		return wrapErr(KindIO, err, "creating %s", path)
	}
	defer fm.Close()
	fm.ParallelCopyOut(0, buf.Bytes())
	return nil
}

// LoadBinary decodes a buffer produced by SaveBinary. The caller's chosen
// L and O widths must match what was written; a mismatch is a KindWidth
// error rather than a silent truncating reinterpretation.
func LoadBinary[L Label, O Count, W Weight](data []byte, opts Options) (*COO[L, O, W], error) {
	const headerFixed = 2 // width bytes, after the magic
	if len(data) < len(filemap.MagicCOO)+headerFixed {
		return nil, newErr(KindFormat, "binary COO file too short for a header")
	}
	if string(data[:len(filemap.MagicCOO)]) != filemap.MagicCOO {
		return nil, newErr(KindFormat, "not a binary COO file (bad magic)")
	}
	pos := len(filemap.MagicCOO)

	lw := data[pos]
	pos++
	ow := data[pos]
	pos++

	if want := widthOf[L](); lw != want {
		return nil, newErr(KindWidth, "file uses %d-byte labels but caller requested a %d-byte label type", lw, want)
	}
	if want := widthOf[O](); ow != want {
		return nil, newErr(KindWidth, "file uses %d-byte counts but caller requested a %d-byte count type", ow, want)
	}

	need := pos + 3*int(lw) + int(ow) + 4
	if len(data) < need {
		return nil, newErr(KindFormat, "binary COO file truncated in header")
	}

	nrows := getUint[L](data[pos : pos+int(lw)])
	pos += int(lw)
	ncols := getUint[L](data[pos : pos+int(lw)])
	pos += int(lw)
	n := getUint[L](data[pos : pos+int(lw)])
	pos += int(lw)
	m := getUint[O](data[pos : pos+int(ow)])
	pos += int(ow)

	sym := data[pos] != 0
	pos++
	ut := data[pos] != 0
	pos++
	sl := data[pos] != 0
	pos++
	wgt := data[pos] != 0
	pos++

	mInt := int(m)
	r := bytes.NewReader(data[pos:])

	x := make([]L, mInt)
	if err := binary.Read(r, binary.LittleEndian, x); err != nil {
		return nil, wrapErr(KindContradiction, err, "decoding X payload (declared m=%d)", mInt)
	}
	y := make([]L, mInt)
	if err := binary.Read(r, binary.LittleEndian, y); err != nil {
		return nil, wrapErr(KindContradiction, err, "decoding Y payload (declared m=%d)", mInt)
	}
	var w []W
	if wgt && opts.Wgt {
		w = make([]W, mInt)
		if err := binary.Read(r, binary.LittleEndian, w); err != nil {
			return nil, wrapErr(KindContradiction, err, "decoding W payload (declared m=%d)", mInt)
		}
	}

	return &COO[L, O, W]{
		NRows: nrows,
		NCols: ncols,
		N:     n,
		M:     m,
		X:     x,
		Y:     y,
		W:     w,
		Sym:   sym,
		UT:    ut,
		SL:    sl,
		Wgt:   wgt && opts.Wgt,
	}, nil
}

// SaveBinaryCSR and LoadBinaryCSR mirror SaveBinary/LoadBinary for the CSR
// representation: magic CG-CSR1, label/count widths, NRows/NCols, then the
// Offsets, Endpoints, and (if present) Weights payloads.
func SaveBinaryCSR[L Label, O Count, W Weight](path string, c CSR[L, O, W]) error {
	lw := widthOf[L]()
	ow := widthOf[O]()

	var buf bytes.Buffer
	buf.WriteString(filemap.MagicCSR)
	buf.WriteByte(lw)
	buf.WriteByte(ow)
	putUint(&buf, c.NRows, ow)
	putUint(&buf, c.NCols, ow)
	buf.WriteByte(boolByte(c.Weights != nil))

	if err := binary.Write(&buf, binary.LittleEndian, c.Offsets); err != nil {
		return wrapErr(KindIO, err, "encoding Offsets payload")
	}
	if err := binary.Write(&buf, binary.LittleEndian, c.Endpoints); err != nil {
		return wrapErr(KindIO, err, "encoding Endpoints payload")
	}
	if c.Weights != nil {
		if err := binary.Write(&buf, binary.LittleEndian, c.Weights); err != nil {
			return wrapErr(KindIO, err, "encoding Weights payload")
		}
	}

	fm, err := filemap.Create(path, buf.Len())
	if err != nil {
		return wrapErr(KindIO, err, "creating %s", path)
	}
	defer fm.Close()
	fm.ParallelCopyOut(0, buf.Bytes())
	return nil
}

func LoadBinaryCSR[L Label, O Count, W Weight](data []byte) (CSR[L, O, W], error) {
	if len(data) < len(filemap.MagicCSR)+2 {
		return CSR[L, O, W]{}, newErr(KindFormat, "binary CSR file too short for a header")
	}
	if string(data[:len(filemap.MagicCSR)]) != filemap.MagicCSR {
		return CSR[L, O, W]{}, newErr(KindFormat, "not a binary CSR file (bad magic)")
	}
	pos := len(filemap.MagicCSR)
	lw := data[pos]
	pos++
	ow := data[pos]
	pos++
	if want := widthOf[L](); lw != want {
		return CSR[L, O, W]{}, newErr(KindWidth, "file uses %d-byte labels but caller requested a %d-byte label type", lw, want)
	}
	if want := widthOf[O](); ow != want {
		return CSR[L, O, W]{}, newErr(KindWidth, "file uses %d-byte counts but caller requested a %d-byte count type", ow, want)
	}
	if len(data) < pos+2*int(ow)+1 {
		return CSR[L, O, W]{}, newErr(KindFormat, "binary CSR file truncated in header")
	}

	nrows := getUint[O](data[pos : pos+int(ow)])
	pos += int(ow)
	ncols := getUint[O](data[pos : pos+int(ow)])
	pos += int(ow)
	hasWeights := data[pos] != 0
	pos++

	nrowsInt := int(nrows)
	offsets := make([]O, nrowsInt+1)
	r := bytes.NewReader(data[pos:])
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return CSR[L, O, W]{}, wrapErr(KindContradiction, err, "decoding Offsets payload")
	}
	m := int(offsets[nrowsInt])
	endpoints := make([]L, m)
	if err := binary.Read(r, binary.LittleEndian, endpoints); err != nil {
		return CSR[L, O, W]{}, wrapErr(KindContradiction, err, "decoding Endpoints payload")
	}
	var weights []W
	if hasWeights {
		weights = make([]W, m)
		if err := binary.Read(r, binary.LittleEndian, weights); err != nil {
			return CSR[L, O, W]{}, wrapErr(KindContradiction, err, "decoding Weights payload")
		}
	}

	return CSR[L, O, W]{NRows: nrows, NCols: ncols, Offsets: offsets, Endpoints: endpoints, Weights: weights}, nil
}
