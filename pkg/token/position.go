// Package token defines the lexer's output data model: source positions
// and spans, the token kind enumeration, value payloads, and the Token
// type itself.
package token

import "fmt"

// Position is a single point in a source file. Line and Column are
// 1-based; Offset is a 0-based byte count into the untranslated source.
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

// String renders p as "file:line:col".
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// IsValid reports whether p refers to an actual source location.
func (p Position) IsValid() bool { return p.Line > 0 }

// Span is an ordered pair of positions bracketing a token: Start is the
// first byte of the token, End is the byte immediately after the last
// byte of the token. Invariant: Start.Offset <= End.Offset, and if both
// positions are on the same line, Start.Column <= End.Column.
type Span struct {
	Start Position
	End   Position
}

// String renders the span as its start position, the common case needed
// for diagnostics headers.
func (s Span) String() string { return s.Start.String() }
