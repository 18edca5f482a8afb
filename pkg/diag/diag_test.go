package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/pkg/token"
)

type fakeSource struct {
	name  string
	lines []string
}

func (f fakeSource) Filename() string { return f.name }
func (f fakeSource) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	return f.lines[n-1]
}

func TestDiagHeaderAndExcerpt(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	src := fakeSource{name: "t.c", lines: []string{"int x;"}}
	span := token.Span{
		Start: token.Position{Filename: "t.c", Line: 1, Column: 5},
		End:   token.Position{Filename: "t.c", Line: 1, Column: 6},
	}
	s.Diag(ERROR, span, src, "undeclared identifier %q", "x")

	out := buf.String()
	assert.Contains(t, out, "yecc: t.c:1:5\n")
	assert.Contains(t, out, "1 | int x;\n")
	assert.Contains(t, out, "error: undeclared identifier \"x\"")
	assert.Equal(t, 1, s.ErrorCount())
}

func TestContextOmitsHeader(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	src := fakeSource{name: "t.c", lines: []string{"int x;"}}
	span := token.Span{Start: token.Position{Line: 1, Column: 1}, End: token.Position{Line: 1, Column: 4}}
	s.Context(NOTE, span, src, "declared here")

	out := buf.String()
	assert.NotContains(t, out, "yecc:")
	assert.Contains(t, out, "note: declared here")
}

func TestMaxErrorsSuppresses(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	s.SetMaxErrors(2)
	src := fakeSource{name: "t.c", lines: []string{"x"}}
	span := token.Span{Start: token.Position{Line: 1, Column: 1}, End: token.Position{Line: 1, Column: 2}}

	for i := 0; i < 5; i++ {
		s.Diag(ERROR, span, src, "err %d", i)
	}
	require.Equal(t, 5, s.ErrorCount())
	out := buf.String()
	assert.Contains(t, out, "err 0")
	assert.Contains(t, out, "err 1")
	assert.NotContains(t, out, "err 2")
	assert.Contains(t, out, "too many errors")
}

func TestCaretRuler(t *testing.T) {
	assert.Equal(t, "^", caretRuler(1, 1))
	assert.Equal(t, "^>", caretRuler(1, 3))
	assert.Equal(t, "^-->", caretRuler(1, 5))
	assert.Equal(t, "  ^-->", caretRuler(3, 7))
}
