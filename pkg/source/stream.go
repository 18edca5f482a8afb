// Package source implements the lexer's byte-level input: a buffered,
// random-access byte stream with peek/next/unget, absolute seek, and a
// symmetric lookahead window, plus line/column tracking.
//
// The "buffer" is the whole file's contents read up front (compiler
// source files are small enough that this is the simplest correct
// implementation — peek/unget/seek/blob are all trivial index operations
// once the content is resident, and no refill logic is needed). What is
// bounded is the unget pushback depth, not the buffer's coverage of the
// file.
package source

import (
	"fmt"
	"os"

	"github.com/Yeint-herp/yecc/pkg/collection"
	"github.com/Yeint-herp/yecc/pkg/token"
)

// EOF is the sentinel returned by Peek/Next when the stream is
// exhausted. It is outside the 0-255 byte range so it can never be
// confused with an actual byte.
const EOF = -1

// pushbackDepth is the minimum bounded unget depth the lexer relies on.
const pushbackDepth = 8

type snapshot struct {
	pos, line, col int
}

// Stream is a buffered, random-access byte stream over a single source
// file.
type Stream struct {
	filename string
	data     []byte

	pos  int // current absolute byte offset
	line int // 1-based
	col  int // 1-based

	history *collection.Deque[snapshot] // bounded pushback queue, front is oldest
}

// Open reads path in full and returns a Stream positioned at its first
// byte. A UTF-8 byte-order mark, if present, is consumed so the first
// real byte is reported at column 1; a BOM anywhere else in the file is
// left untouched.
func Open(path string) (*Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	return &Stream{
		filename: path,
		data:     data,
		line:     1,
		col:      1,
		history:  collection.NewDeque[snapshot](pushbackDepth),
	}, nil
}

// OpenBytes returns a Stream over in-memory content, for tests and for
// callers (such as a future preprocessor) that already have the source
// text. name is used only for position reporting. BOM handling matches
// Open.
func OpenBytes(name string, data []byte) *Stream {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	return &Stream{
		filename: name,
		data:     data,
		line:     1,
		col:      1,
		history:  collection.NewDeque[snapshot](pushbackDepth),
	}
}

// Close releases the Stream. It is a no-op (Stream holds no OS handle
// after Open returns) but is kept for symmetry with the spec's contract
// and so callers can defer it uniformly.
func (s *Stream) Close() error { return nil }

// Filename returns the name the Stream was opened with.
func (s *Stream) Filename() string { return s.filename }

// Len returns the total length of the (post-BOM-strip) source in bytes.
func (s *Stream) Len() int { return len(s.data) }

// EOF reports whether the current offset is at the end of the source.
func (s *Stream) EOF() bool { return s.pos >= len(s.data) }

// Position returns the position of the next byte Next would return (or
// the end-of-file position, if EOF() is true).
func (s *Stream) Position() token.Position {
	return token.Position{Filename: s.filename, Line: s.line, Column: s.col, Offset: s.pos}
}

// Line returns the text of the n'th (1-based) source line, without its
// trailing newline, for use by pkg/diag when formatting a source
// excerpt. Out-of-range line numbers return "".
func (s *Stream) Line(n int) string {
	if n < 1 {
		return ""
	}
	line := 1
	start := 0
	for i := 0; i < len(s.data); i++ {
		if s.data[i] == '\n' {
			if line == n {
				return string(s.data[start:i])
			}
			line++
			start = i + 1
		}
	}
	if line == n {
		return string(s.data[start:])
	}
	return ""
}

// Peek returns the byte at the current offset without advancing, or EOF.
func (s *Stream) Peek() int {
	if s.EOF() {
		return EOF
	}
	return int(s.data[s.pos])
}

// PeekAt returns the byte n positions ahead of the current offset
// (PeekAt(0) == Peek()) without advancing, or EOF if out of range.
func (s *Stream) PeekAt(n int) int {
	idx := s.pos + n
	if idx < 0 || idx >= len(s.data) {
		return EOF
	}
	return int(s.data[idx])
}

// Next consumes and returns the byte at the current offset, updating
// line/column, or returns EOF without advancing.
func (s *Stream) Next() int {
	if s.EOF() {
		return EOF
	}
	s.pushHistory()
	b := s.data[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return int(b)
}

func (s *Stream) pushHistory() {
	if s.history.Len() == pushbackDepth {
		s.history.PopFront()
	}
	s.history.PushBack(snapshot{pos: s.pos, line: s.line, col: s.col})
}

// Unget steps back one byte, restoring the exact line/column the stream
// had before the corresponding Next call. It fails (returns false) if
// there is no recorded history to restore, which includes the case of
// offset 0 and the case of exceeding the bounded pushback depth.
func (s *Stream) Unget() bool {
	if s.history.Len() == 0 {
		return false
	}
	snap := s.history.PopBack()
	s.pos, s.line, s.col = snap.pos, snap.line, snap.col
	return true
}

// Seek moves to an absolute byte offset, clearing pushback history and
// recomputing line/column by walking sequentially from the start of the
// (post-BOM) source. This is the accuracy-preserving option for callers
// that need exact line/column tracking after a jump, at the cost of a
// linear walk.
func (s *Stream) Seek(offset int) bool {
	if offset < 0 || offset > len(s.data) {
		return false
	}
	s.history = collection.NewDeque[snapshot](pushbackDepth)
	s.pos, s.line, s.col = 0, 1, 1
	for s.pos < offset {
		s.Next()
	}
	s.history = collection.NewDeque[snapshot](pushbackDepth)
	return true
}

// Blob returns the symmetric 5-byte window [b-2, b-1, b, b+1, b+2]
// centered on the current byte, zero-padded at either end of the source.
// It never changes the current position.
func (s *Stream) Blob() [5]byte {
	var out [5]byte
	for i := -2; i <= 2; i++ {
		idx := s.pos + i
		if idx >= 0 && idx < len(s.data) {
			out[i+2] = s.data[idx]
		}
	}
	return out
}
