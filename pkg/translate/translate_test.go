package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/pkg/source"
)

func readAll(r *Reader) string {
	var out []byte
	for {
		b := r.Next()
		if b < 0 {
			break
		}
		out = append(out, byte(b))
	}
	return string(out)
}

func TestLineSpliceElided(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("foo\\\nbar"))
	r := New(s, false, nil)
	assert.Equal(t, "foobar", readAll(r))
}

func TestLineSpliceCRLF(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("foo\\\r\nbar"))
	r := New(s, false, nil)
	assert.Equal(t, "foobar", readAll(r))
}

func TestChainedSplicesFuse(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("foo\\\n\\\nbar"))
	r := New(s, false, nil)
	assert.Equal(t, "foobar", readAll(r))
}

func TestTrigraphTranslation(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("a??=b"))
	r := New(s, true, nil)
	assert.Equal(t, "a#b", readAll(r))
}

func TestTrigraphDisabledLeavesBytesAlone(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("a??=b"))
	var warned byte
	r := New(s, false, func(third byte) { warned = third })
	assert.Equal(t, "a??=b", readAll(r))
	assert.Equal(t, byte('='), warned)
}

func TestTrigraphBackslashReentersSplice(t *testing.T) {
	// "??/" -> '\\', followed by a real newline, should splice away.
	s := source.OpenBytes("t.c", []byte("a??/\nb"))
	r := New(s, true, nil)
	assert.Equal(t, "ab", readAll(r))
}

func TestPeekDoesNotAdvance(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("xy"))
	r := New(s, false, nil)
	require.Equal(t, int('x'), r.Peek())
	require.Equal(t, int('x'), r.Peek())
	assert.Equal(t, int('x'), r.Next())
	assert.Equal(t, int('y'), r.Next())
}

func TestPeekWindowRestoresPosition(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("hello"))
	r := New(s, false, nil)
	win := r.PeekWindow(3)
	assert.Equal(t, []byte("hel"), win)
	assert.Equal(t, int('h'), r.Next())
}

func TestPeekWindowShortAtEOF(t *testing.T) {
	s := source.OpenBytes("t.c", []byte("hi"))
	r := New(s, false, nil)
	win := r.PeekWindow(10)
	assert.Equal(t, []byte("hi"), win)
}
