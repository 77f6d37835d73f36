package scanner

import (
	"testing"

	"coograph/bytecursor"

	"github.com/stretchr/testify/require"
)

func TestReadUnsigned(t *testing.T) {
	c := bytecursor.New([]byte("  42rest"))
	got := ReadUnsigned[uint32](&c)
	require.Equal(t, uint32(42), got)
	require.Equal(t, byte('r'), mustPeek(t, &c))
}

func TestReadSigned(t *testing.T) {
	c := bytecursor.New([]byte("-17 "))
	got := ReadSigned[int64](&c)
	require.Equal(t, int64(-17), got)

	c2 := bytecursor.New([]byte("+9"))
	require.Equal(t, int64(9), ReadSigned[int64](&c2))
}

func TestReadFloat(t *testing.T) {
	c := bytecursor.New([]byte("3.5"))
	require.InDelta(t, 3.5, ReadFloat[float64](&c), 1e-9)

	c2 := bytecursor.New([]byte("-2.25e2"))
	require.InDelta(t, -225.0, ReadFloat[float64](&c2), 1e-6)

	c3 := bytecursor.New([]byte("9"))
	require.InDelta(t, 9.0, ReadFloat[float64](&c3), 1e-9)
}

func TestSkipComments(t *testing.T) {
	c := bytecursor.New([]byte("% a comment\n# another\n1 2\n"))
	SkipComments(&c)
	require.Equal(t, byte('1'), mustPeek(t, &c))
}

func TestMoveToFirstIntSkipsInterleavedComments(t *testing.T) {
	c := bytecursor.New([]byte("% header\n%more\n7 8\n"))
	MoveToFirstInt(&c)
	require.Equal(t, byte('7'), mustPeek(t, &c))
}

func TestMoveToNextInt(t *testing.T) {
	c := bytecursor.New([]byte("12 34\n"))
	MoveToNextInt(&c)
	require.Equal(t, byte('3'), mustPeek(t, &c))
}

func TestMoveToNextSignedInt(t *testing.T) {
	c := bytecursor.New([]byte("-5 +7 -9"))
	MoveToNextSignedInt(&c)
	require.Equal(t, byte('+'), mustPeek(t, &c))
	MoveToNextSignedInt(&c)
	require.Equal(t, byte('-'), mustPeek(t, &c))
}

func TestAtEndOfLine(t *testing.T) {
	c := bytecursor.New([]byte("  \n"))
	require.True(t, AtEndOfLine(&c))

	c2 := bytecursor.New([]byte("  x\n"))
	require.False(t, AtEndOfLine(&c2))
}

func TestAtStrAndRead(t *testing.T) {
	c := bytecursor.New([]byte("%%MatrixMarket matrix coordinate"))
	require.True(t, AtStr(&c, "%%MatrixMarket matrix coordinate"))
	require.True(t, Read(&c, "%%MatrixMarket matrix coordinate"))
	require.Equal(t, len("%%MatrixMarket matrix coordinate"), c.Pos())
}

func TestMoveToEOLNoTrailingNewline(t *testing.T) {
	c := bytecursor.New([]byte("1 2 3"))
	MoveToEOL(&c)
	require.False(t, c.Good())
}

func mustPeek(t *testing.T, c *bytecursor.Cursor) byte {
	t.Helper()
	b, ok := c.Peek()
	require.True(t, ok)
	return b
}
