package bytecursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorBasics(t *testing.T) {
	data := []byte("hello world")
	c := New(data)
	require.True(t, c.Good())
	require.Equal(t, 0, c.Pos())
	require.Equal(t, len(data), c.End())

	b, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, byte('h'), b)

	c.Advance(5)
	require.Equal(t, 5, c.Pos())
	b, ok = c.Peek()
	require.True(t, ok)
	require.Equal(t, byte(' '), b)

	c.Advance(100)
	require.False(t, c.Good())
	_, ok = c.Peek()
	require.False(t, ok)
}

func TestCursorRange(t *testing.T) {
	data := []byte("0123456789")
	c := NewRange(data, 2, 6)
	require.Equal(t, 2, c.Pos())
	require.Equal(t, 6, c.End())
	require.Equal(t, 4, c.Len())
	require.Equal(t, []byte("2345"), c.Slice(c.Pos(), c.End()))
}

func TestCursorSetEndMin(t *testing.T) {
	data := []byte("0123456789")
	a := NewRange(data, 0, 10)
	b := NewRange(data, 4, 10)
	a.SetEndMin(b)
	require.Equal(t, 4, a.End())

	c := NewRange(data, 0, 3)
	c.SetEndMin(b)
	require.Equal(t, 3, c.End())
}

func TestCursorCloneIndependent(t *testing.T) {
	data := []byte("abcdef")
	c := New(data)
	clone := c.Clone()
	clone.Advance(3)
	require.Equal(t, 0, c.Pos())
	require.Equal(t, 3, clone.Pos())
}

func TestCursorAt(t *testing.T) {
	data := []byte("abcdef")
	c := New(data)
	require.Equal(t, byte('d'), c.At(3))
}
