// Package translate implements the lexer's translation-phase read layer:
// line-splice elision and trigraph recognition, applied transparently over
// a *source.Stream on every consuming read.
package translate

import (
	"github.com/Yeint-herp/yecc/pkg/source"
	"github.com/Yeint-herp/yecc/pkg/token"
)

// trigraphs maps the third byte of a "??x" sequence to its replacement.
var trigraphs = map[byte]byte{
	'=':  '#',
	'/':  '\\',
	'\'': '^',
	'(':  '[',
	')':  ']',
	'!':  '|',
	'<':  '{',
	'>':  '}',
	'-':  '~',
}

// Warner receives the third byte of an untranslated "??x" pattern seen
// while trigraphs are disabled, so the lexer can emit its "trigraphs"
// warning. A nil Warner silently drops these notices.
type Warner func(third byte)

// Reader wraps a *source.Stream and exposes a translated view of it:
// line splices are elided and, when enabled, trigraphs are substituted,
// both transparently to the caller.
type Reader struct {
	s               *source.Stream
	enableTrigraphs bool
	warn            Warner
}

// New returns a Reader over s. warn may be nil.
func New(s *source.Stream, enableTrigraphs bool, warn Warner) *Reader {
	return &Reader{s: s, enableTrigraphs: enableTrigraphs, warn: warn}
}

// Stream returns the underlying byte stream, for callers that need raw
// untranslated access to it.
func (r *Reader) Stream() *source.Stream { return r.s }

// Position returns the underlying stream's current position.
func (r *Reader) Position() token.Position { return r.s.Position() }

// Peek returns the next translated byte without advancing, or source.EOF.
func (r *Reader) Peek() int {
	save := r.s.Position().Offset
	b := r.Next()
	r.s.Seek(save)
	return b
}

// Next consumes and returns the next translated byte, or source.EOF. Line
// splices are elided greedily, including a splice produced by a trigraph
// substitution of "??/" re-entering splice logic.
func (r *Reader) Next() int {
	r.spliceLoop()
	if r.s.EOF() {
		return source.EOF
	}
	if r.s.Peek() == '?' {
		if r.enableTrigraphs {
			if repl, ok := r.trigraphAt(); ok {
				r.s.Next()
				r.s.Next()
				r.s.Next()
				if repl == '\\' {
					return r.reenterAfterBackslash()
				}
				return int(repl)
			}
		} else if third, ok := r.untranslatedTrigraphAt(); ok && r.warn != nil {
			r.warn(third)
		}
	}
	return r.s.Next()
}

// trigraphAt reports whether the stream is positioned at one of the nine
// recognized "??x" sequences, returning its replacement byte.
func (r *Reader) trigraphAt() (byte, bool) {
	if r.s.Peek() != '?' || r.s.PeekAt(1) != '?' {
		return 0, false
	}
	repl, ok := trigraphs[byte(r.s.PeekAt(2))]
	return repl, ok
}

func (r *Reader) untranslatedTrigraphAt() (byte, bool) {
	if r.s.Peek() != '?' || r.s.PeekAt(1) != '?' {
		return 0, false
	}
	third := byte(r.s.PeekAt(2))
	if _, ok := trigraphs[third]; !ok {
		return 0, false
	}
	return third, true
}

// reenterAfterBackslash treats a just-substituted '\\' as the start of a
// fresh splice check: if the stream is now at a newline (possibly after
// further splices), it is elided and translation continues; otherwise the
// backslash itself is the translated byte.
func (r *Reader) reenterAfterBackslash() int {
	if r.atNewline() {
		r.consumeNewline()
		return r.Next()
	}
	return '\\'
}

// spliceLoop elides every "\\\n" or "\\\r\n" at the current position,
// greedily, so chained splices collapse before any other translation
// sees the bytes around them.
func (r *Reader) spliceLoop() {
	for !r.s.EOF() && r.s.Peek() == '\\' && r.newlineStartsAt(1) {
		r.s.Next() // '\\'
		r.consumeNewline()
	}
}

// newlineStartsAt reports whether a newline (bare '\n' or '\r''\n') begins
// n bytes ahead of the current position.
func (r *Reader) newlineStartsAt(n int) bool {
	b := r.s.PeekAt(n)
	if b == '\n' {
		return true
	}
	return b == '\r' && r.s.PeekAt(n+1) == '\n'
}

func (r *Reader) atNewline() bool {
	return r.s.Peek() == '\n' || (r.s.Peek() == '\r' && r.s.PeekAt(1) == '\n')
}

func (r *Reader) consumeNewline() {
	if r.s.Peek() == '\r' {
		r.s.Next()
	}
	r.s.Next() // '\n'
}

// PeekAt returns the translated byte n positions ahead of the current
// position (PeekAt(0) == Peek()) without advancing, or source.EOF if that
// falls past the end of input.
func (r *Reader) PeekAt(n int) int {
	w := r.PeekWindow(n + 1)
	if len(w) <= n {
		return source.EOF
	}
	return int(w[n])
}

// PeekWindow returns up to n translated bytes starting at the current
// position without changing it. Fewer than n bytes are returned at end
// of input.
func (r *Reader) PeekWindow(n int) []byte {
	save := r.s.Position().Offset
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b := r.Next()
		if b == source.EOF {
			break
		}
		out = append(out, byte(b))
	}
	r.s.Seek(save)
	return out
}
