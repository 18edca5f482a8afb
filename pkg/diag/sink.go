// Package diag implements the lexer's diagnostics sink: leveled messages
// formatted with a source excerpt and a caret span, colorized with ANSI
// escapes when writing to a terminal.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/Yeint-herp/yecc/pkg/token"
)

// LineSource supplies the source text a Sink excerpts into a diagnostic.
// *source.Stream satisfies this interface.
type LineSource interface {
	// Line returns the text of the n'th (1-based) line, without its
	// trailing newline.
	Line(n int) string
	Filename() string
}

// Sink formats and writes diagnostics. The zero value is not usable;
// construct with NewSink.
type Sink struct {
	w         io.Writer
	color     bool
	profile   termenv.Profile
	errCount  int
	maxErrors int
}

// NewSink returns a Sink writing to w. Color is enabled when w is an
// *os.File that refers to a terminal, unless NO_COLOR is set to a
// non-empty value (which always disables color) or CLICOLOR_FORCE is set
// to a non-empty value (which always forces it on regardless of the TTY
// check).
func NewSink(w io.Writer) *Sink {
	s := &Sink{w: w, maxErrors: 0}
	s.color = shouldColor(w)
	if s.color {
		s.profile = termenv.ColorProfile()
	}
	return s
}

// SetMaxErrors bounds the number of ERROR diagnostics Diag will format
// before it starts suppressing further ones. 0 (the default) means
// unlimited.
func (s *Sink) SetMaxErrors(n int) { s.maxErrors = n }

// ErrorCount returns the number of ERROR-level diagnostics emitted so
// far.
func (s *Sink) ErrorCount() int { return s.errCount }

func shouldColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") != "" {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (s *Sink) levelColor(level Level, text string) string {
	if !s.color {
		return text
	}
	var c termenv.Color
	switch level {
	case ERROR:
		c = s.profile.Color("9") // bright red
	case WARNING:
		c = s.profile.Color("11") // bright yellow
	case NOTE:
		c = s.profile.Color("14") // bright cyan
	default:
		return text
	}
	return termenv.String(text).Foreground(c).String()
}

// Diag formats and writes a full diagnostic: the "yecc: file:line:col"
// header, the source excerpt for every line the span touches, a caret
// ruler under each, and the leveled message appended to the ruler on the
// span's start line.
func (s *Sink) Diag(level Level, span token.Span, src LineSource, format string, args ...interface{}) {
	if level == ERROR {
		s.errCount++
		if s.maxErrors > 0 && s.errCount > s.maxErrors {
			if s.errCount == s.maxErrors+1 {
				fmt.Fprintln(s.w, "yecc: too many errors, suppressing further diagnostics")
			}
			return
		}
	}
	fmt.Fprintf(s.w, "yecc: %s\n", span.Start.String())
	s.excerpt(level, span, src, format, args...)
}

// Context prints only the annotated excerpt (no "yecc: ..." header), for
// attaching a note to a preceding diagnostic.
func (s *Sink) Context(level Level, span token.Span, src LineSource, format string, args ...interface{}) {
	s.excerpt(level, span, src, format, args...)
}

func (s *Sink) excerpt(level Level, span token.Span, src LineSource, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	for n := span.Start.Line; n <= span.End.Line; n++ {
		lineText := ""
		if src != nil {
			lineText = src.Line(n)
		}
		fmt.Fprintf(s.w, "  %d | %s\n", n, lineText)

		startCol := 1
		if n == span.Start.Line {
			startCol = span.Start.Column
		}
		endCol := len(lineText) + 1
		if n == span.End.Line {
			endCol = span.End.Column
		}
		ruler := caretRuler(startCol, endCol)

		if n == span.Start.Line {
			leveled := fmt.Sprintf("%s: %s", level.String(), msg)
			fmt.Fprintf(s.w, "    | %s %s\n", ruler, s.levelColor(level, leveled))
		} else {
			fmt.Fprintf(s.w, "    | %s\n", ruler)
		}
	}
}

// caretRuler builds a "^--->"-style ruler spanning columns
// [startCol, endCol). A zero-width or inverted span degrades to a single
// caret.
func caretRuler(startCol, endCol int) string {
	if startCol < 1 {
		startCol = 1
	}
	width := endCol - startCol
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", startCol-1))
	switch {
	case width <= 1:
		b.WriteByte('^')
	case width == 2:
		b.WriteString("^>")
	default:
		b.WriteByte('^')
		b.WriteString(strings.Repeat("-", width-2))
		b.WriteByte('>')
	}
	return b.String()
}
