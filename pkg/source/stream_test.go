package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAndPosition(t *testing.T) {
	s := OpenBytes("t.c", []byte("ab\ncd"))
	require.Equal(t, 1, s.Position().Line)
	require.Equal(t, 1, s.Position().Column)

	assert.Equal(t, int('a'), s.Next())
	assert.Equal(t, int('b'), s.Next())
	assert.Equal(t, int('\n'), s.Next())
	assert.Equal(t, 2, s.Position().Line)
	assert.Equal(t, 1, s.Position().Column)
	assert.Equal(t, int('c'), s.Next())
	assert.Equal(t, int('d'), s.Next())
	assert.Equal(t, EOF, s.Next())
	assert.True(t, s.EOF())
}

func TestPeekDoesNotAdvance(t *testing.T) {
	s := OpenBytes("t.c", []byte("xy"))
	assert.Equal(t, int('x'), s.Peek())
	assert.Equal(t, int('x'), s.Peek())
	assert.Equal(t, int('x'), s.Next())
	assert.Equal(t, int('y'), s.Peek())
}

func TestUngetRestoresPosition(t *testing.T) {
	s := OpenBytes("t.c", []byte("a\nb"))
	s.Next() // 'a'
	s.Next() // '\n' -> line 2 col 1
	require.Equal(t, 2, s.Position().Line)
	require.True(t, s.Unget())
	assert.Equal(t, 1, s.Position().Line)
	assert.Equal(t, 2, s.Position().Column)
	assert.Equal(t, int('\n'), s.Next())
}

func TestUngetBoundedDepth(t *testing.T) {
	s := OpenBytes("t.c", []byte("0123456789"))
	for i := 0; i < 10; i++ {
		s.Next()
	}
	// Only the last 8 Next() calls are recoverable.
	for i := 0; i < pushbackDepth; i++ {
		require.True(t, s.Unget(), "unget %d should succeed", i)
	}
	assert.False(t, s.Unget(), "unget beyond bounded depth should fail")
}

func TestUngetAtOffsetZeroFails(t *testing.T) {
	s := OpenBytes("t.c", []byte("x"))
	assert.False(t, s.Unget())
}

func TestSeekRecomputesLineColumn(t *testing.T) {
	s := OpenBytes("t.c", []byte("ab\ncd\nef"))
	require.True(t, s.Seek(6)) // offset of 'e'
	assert.Equal(t, 3, s.Position().Line)
	assert.Equal(t, 1, s.Position().Column)
	assert.Equal(t, int('e'), s.Peek())
}

func TestSeekOutOfRangeFails(t *testing.T) {
	s := OpenBytes("t.c", []byte("ab"))
	assert.False(t, s.Seek(-1))
	assert.False(t, s.Seek(3))
}

func TestBlobWindowAndZeroPadding(t *testing.T) {
	s := OpenBytes("t.c", []byte("abcde"))
	s.Next() // consume 'a', pos=1
	s.Next() // consume 'b', pos=2
	blob := s.Blob()
	assert.Equal(t, [5]byte{'a', 'b', 'c', 'd', 'e'}, blob)
	assert.Equal(t, 2, s.Position().Offset, "Blob must not move the position")

	s2 := OpenBytes("t.c", []byte("xy"))
	blob2 := s2.Blob()
	assert.Equal(t, [5]byte{0, 0, 'x', 'y', 0}, blob2)
}

func TestBOMStripped(t *testing.T) {
	s := OpenBytes("t.c", append([]byte{0xEF, 0xBB, 0xBF}, "int"...))
	assert.Equal(t, 1, s.Position().Column)
	assert.Equal(t, int('i'), s.Next())
}

func TestPeekAt(t *testing.T) {
	s := OpenBytes("t.c", []byte("abc"))
	assert.Equal(t, int('a'), s.PeekAt(0))
	assert.Equal(t, int('b'), s.PeekAt(1))
	assert.Equal(t, EOF, s.PeekAt(10))
}
