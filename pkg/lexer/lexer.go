// Package lexer implements the core lexical analyzer and its literal
// decoders: the top-level token dispatch loop, preprocessor directive
// framing, header-name mode, identifier scanning, and the number/string/
// char literal decoders in number.go/strlit.go.
package lexer

import (
	"fmt"

	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/diag"
	"github.com/Yeint-herp/yecc/pkg/intern"
	"github.com/Yeint-herp/yecc/pkg/keyword"
	"github.com/Yeint-herp/yecc/pkg/source"
	"github.com/Yeint-herp/yecc/pkg/token"
	"github.com/Yeint-herp/yecc/pkg/translate"
)

// ppKind tracks which include-family directive (if any) is currently open,
// so header-name mode knows whether to accept an angle form, a quoted
// form, or neither.
type ppKind int

const (
	ppNone ppKind = iota
	ppInclude
	ppIncludeNext
	ppImport
	ppEmbed
	ppOther
)

// Lexer is a single-file lexical analyzer. A Lexer is owned by exactly one
// caller and is not safe for concurrent use.
type Lexer struct {
	stream   *source.Stream
	tr       *translate.Reader
	ctx      *cctx.Context
	interner *intern.Interner
	sink     *diag.Sink
	kw       *keyword.Table

	atLineStart      bool
	inDirective      bool
	ppKind           ppKind
	expectHeaderName bool
}

// New opens path and returns a Lexer ready to produce tokens.
func New(path string, ctx *cctx.Context, in *intern.Interner, sink *diag.Sink) (*Lexer, error) {
	st, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	return newFromStream(st, ctx, in, sink), nil
}

// NewFromBytes returns a Lexer over in-memory content, for tests and for
// callers that already hold the source text.
func NewFromBytes(name string, data []byte, ctx *cctx.Context, in *intern.Interner, sink *diag.Sink) *Lexer {
	return newFromStream(source.OpenBytes(name, data), ctx, in, sink)
}

func newFromStream(st *source.Stream, ctx *cctx.Context, in *intern.Interner, sink *diag.Sink) *Lexer {
	l := &Lexer{
		stream:      st,
		ctx:         ctx,
		interner:    in,
		sink:        sink,
		kw:          keyword.NewTable(),
		atLineStart: true,
	}
	l.tr = translate.New(st, ctx.EnableTrigraphs, l.onUntranslatedTrigraph)
	return l
}

// Close releases the underlying stream.
func (l *Lexer) Close() error { return l.stream.Close() }

// ErrorCount returns the number of ERROR-level diagnostics emitted so far
// through this lexer's sink.
func (l *Lexer) ErrorCount() int { return l.sink.ErrorCount() }

func (l *Lexer) onUntranslatedTrigraph(third byte) {
	p := l.stream.Position()
	span := token.Span{Start: p, End: p}
	l.warn(cctx.WarnTrigraphs, span, "trigraph '??%c' ignored (pass --trigraphs to enable)", third)
}

func (l *Lexer) peekAt(n int) int { return l.tr.PeekAt(n) }

func (l *Lexer) spanFrom(start token.Position) token.Span {
	return token.Span{Start: start, End: l.tr.Position()}
}

// warn emits a diagnostic for warning class w if it is enabled, escalating
// to ERROR when the context upgrades it, per cctx.Context.WarningAsError.
func (l *Lexer) warn(w cctx.Warning, span token.Span, format string, args ...interface{}) {
	if !l.ctx.WarningEnabled(w) {
		return
	}
	level := diag.WARNING
	if l.ctx.WarningAsError(w) {
		level = diag.ERROR
	}
	l.sink.Diag(level, span, l.stream, format, args...)
}

// errorAt emits an ERROR diagnostic and returns an ERROR token carrying
// the same message, interned so the caller can hold onto it cheaply.
func (l *Lexer) errorAt(span token.Span, format string, args ...interface{}) *token.Token {
	msg := fmt.Sprintf(format, args...)
	l.sink.Diag(diag.ERROR, span, l.stream, format, args...)
	return &token.Token{Kind: token.ERROR, Span: span, Value: token.Value{ErrorMsg: l.interner.Intern(msg)}}
}

// recover skips forward to the next newline or ';' and resets directive
// state, guaranteeing forward progress after an unrecoverable error
// within a token.
func (l *Lexer) recover() {
	for {
		b := l.tr.Peek()
		if b == source.EOF || b == '\n' || b == ';' {
			break
		}
		l.tr.Next()
	}
	l.atLineStart = true
	l.inDirective = false
}

// Next always produces a token; EOF produces token.EOF, never an error.
// It skips whitespace and comments, tracks preprocessor directive and
// header-name framing, and otherwise dispatches on the next byte.
func (l *Lexer) Next() *token.Token {
	for {
		if tok := l.skipWhitespaceAndComments(); tok != nil {
			return tok
		}

		if l.atLineStart {
			if tok, matched := l.tryDirectiveHash(); matched {
				return tok
			}
		}

		if l.inDirective && l.tr.Peek() == '\n' {
			l.tr.Next()
			l.inDirective = false
			l.atLineStart = true
			continue
		}

		if l.tr.Peek() == source.EOF {
			p := l.tr.Position()
			return &token.Token{Kind: token.EOF, Span: token.Span{Start: p, End: p}}
		}

		if l.inDirective && l.expectHeaderName {
			if tok, ok := l.tryHeaderName(); ok {
				l.expectHeaderName = false
				l.atLineStart = false
				return tok
			}
			l.expectHeaderName = false
		}

		tok := l.dispatch()
		l.atLineStart = false
		return tok
	}
}

// dispatch classifies the next byte and hands off to the matching
// sub-lexer: a number, a string or char literal, an identifier or
// keyword, or a punctuator.
func (l *Lexer) dispatch() *token.Token {
	b := l.tr.Peek()
	if isDigit(b) || (b == '.' && isDigit(l.peekAt(1))) {
		return l.lexNumber()
	}
	if _, _, ok := l.matchStringPrefix(); ok {
		return l.lexString()
	}
	if _, _, ok := l.matchCharPrefix(); ok {
		return l.lexChar()
	}
	if isIdentStart(b, l.ctx) {
		return l.lexIdentifier()
	}
	return l.lexPunct()
}

func (l *Lexer) skipWhitespaceAndComments() *token.Token {
	for {
		b := l.tr.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\v' || b == '\f':
			l.tr.Next()
		case b == '\n' && !l.inDirective:
			l.tr.Next()
			l.atLineStart = true
		case b == '/' && l.peekAt(1) == '/':
			if !l.ctx.StdAtLeast(cctx.C99) && !l.ctx.GNUExtensions {
				l.warn(cctx.WarnExtension, l.spanFrom(l.tr.Position()), "// comments are a C99/GNU extension")
			}
			l.skipLineComment()
		case b == '/' && l.peekAt(1) == '*':
			if tok, bad := l.skipBlockComment(); bad {
				return tok
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) skipLineComment() {
	for {
		b := l.tr.Peek()
		if b == source.EOF || b == '\n' {
			return
		}
		l.tr.Next()
	}
}

func (l *Lexer) skipBlockComment() (*token.Token, bool) {
	start := l.tr.Position()
	l.tr.Next() // '/'
	l.tr.Next() // '*'
	for {
		b := l.tr.Peek()
		if b == source.EOF {
			tok := l.errorAt(l.spanFrom(start), "unterminated comment")
			l.recover()
			return tok, true
		}
		if b == '*' && l.peekAt(1) == '/' {
			l.tr.Next()
			l.tr.Next()
			return nil, false
		}
		l.tr.Next()
	}
}

// tryDirectiveHash implements step 2 of §4.7: at the start of a line, a
// lone '#' (or, with trigraphs enabled, its "??=" / "%:" spellings) opens
// a preprocessor directive.
func (l *Lexer) tryDirectiveHash() (*token.Token, bool) {
	for {
		b := l.tr.Peek()
		if b == ' ' || b == '\t' || b == '\v' || b == '\f' {
			l.tr.Next()
			continue
		}
		break
	}

	start := l.tr.Position()
	w := l.tr.PeekWindow(3)

	n := 0
	switch {
	case len(w) >= 1 && w[0] == '#':
		n = 1
	case l.ctx.EnableTrigraphs && len(w) >= 3 && w[0] == '?' && w[1] == '?' && w[2] == '=':
		n = 3
	case l.ctx.EnableTrigraphs && len(w) >= 2 && w[0] == '%' && w[1] == ':':
		n = 2
	}
	if n == 0 {
		return nil, false
	}
	for i := 0; i < n; i++ {
		l.tr.Next()
	}
	l.inDirective = true
	l.atLineStart = false
	l.ppKind = ppNone
	l.expectHeaderName = false
	return &token.Token{Kind: token.PP_HASH, Span: l.spanFrom(start)}, true
}

// tryHeaderName implements §4.7.3's dispatch between angle and quoted
// header-name forms, gated on the currently open include-family
// directive.
func (l *Lexer) tryHeaderName() (*token.Token, bool) {
	b := l.tr.Peek()
	switch {
	case (l.ppKind == ppInclude || l.ppKind == ppIncludeNext) && b == '<':
		return l.lexAngleHeaderName(), true
	case (l.ppKind == ppInclude || l.ppKind == ppIncludeNext || l.ppKind == ppImport || l.ppKind == ppEmbed) && b == '"':
		return l.lexQuotedHeaderName(), true
	}
	return nil, false
}

func (l *Lexer) lexAngleHeaderName() *token.Token {
	start := l.tr.Position()
	l.tr.Next() // '<'
	var buf []byte
	for {
		b := l.tr.Peek()
		if b == '>' {
			l.tr.Next()
			ref := l.interner.InternBytes(buf)
			return &token.Token{Kind: token.HEADER_NAME, Span: l.spanFrom(start), Value: token.Value{Spelling: ref}}
		}
		if b == source.EOF || b == '\n' {
			tok := l.errorAt(l.spanFrom(start), "unterminated header name")
			l.recover()
			return tok
		}
		buf = append(buf, byte(l.tr.Next()))
	}
}

func (l *Lexer) lexQuotedHeaderName() *token.Token {
	start := l.tr.Position()
	l.tr.Next() // '"'
	var buf []byte
	for {
		b := l.tr.Peek()
		if b == '"' {
			l.tr.Next()
			ref := l.interner.InternBytes(buf)
			return &token.Token{Kind: token.HEADER_NAME, Span: l.spanFrom(start), Value: token.Value{Spelling: ref}}
		}
		if b == source.EOF || b == '\n' {
			tok := l.errorAt(l.spanFrom(start), "unterminated header name")
			l.recover()
			return tok
		}
		if b == '\\' && (l.peekAt(1) == '"' || l.peekAt(1) == '\\') {
			l.tr.Next()
			buf = append(buf, byte(l.tr.Next()))
			continue
		}
		buf = append(buf, byte(l.tr.Next()))
	}
}

// lexIdentifier implements §4.7.4: accumulation, interning, and keyword
// classification (§4.5), including §4.7.1's include-family post-
// classification that arms header-name mode.
func (l *Lexer) lexIdentifier() *token.Token {
	start := l.tr.Position()
	var buf []byte
	for {
		b := l.tr.Peek()
		switch {
		case b == '_' || isAlpha(b) || isDigit(b):
			buf = append(buf, byte(l.tr.Next()))
		case l.ctx.GNUExtensions && b == '$':
			buf = append(buf, byte(l.tr.Next()))
		case b == '\\' && (l.peekAt(1) == 'u' || l.peekAt(1) == 'U'):
			ucnStart := l.tr.Position()
			cp, ok := l.lexUCN()
			if !ok {
				continue
			}
			if !l.ctx.StdAtLeast(cctx.C99) {
				l.warn(cctx.WarnExtension, l.spanFrom(ucnStart), "universal character names require C99 or later")
			}
			buf = appendUTF8Scalar(buf, cp)
		case b >= 0x80:
			r, n, ok := l.decodeUTF8Ahead()
			if !ok {
				tok := l.errorAt(l.spanFrom(start), "invalid UTF-8 sequence in identifier")
				l.tr.Next()
				return tok
			}
			if !l.ctx.GNUExtensions && l.ctx.Pedantic {
				l.warn(cctx.WarnPedantic, l.spanFrom(start), "UTF-8 identifiers are an extension")
			}
			for i := 0; i < n; i++ {
				buf = append(buf, byte(l.tr.Next()))
			}
		default:
			return l.finishIdentifier(start, buf)
		}
	}
}

func (l *Lexer) finishIdentifier(start token.Position, buf []byte) *token.Token {
	span := l.spanFrom(start)
	ref := l.interner.InternBytes(buf)
	kind, entry := l.kw.Classify(string(buf), l.inDirective)

	if kind == token.IDENTIFIER {
		return &token.Token{Kind: token.IDENTIFIER, Span: span, Value: token.Value{Spelling: ref}}
	}

	l.applyKeywordDiagnostics(entry, span)
	if l.inDirective {
		switch kind {
		case token.PP_INCLUDE:
			l.ppKind, l.expectHeaderName = ppInclude, true
		case token.PP_INCLUDE_NEXT:
			l.ppKind, l.expectHeaderName = ppIncludeNext, true
		case token.PP_IMPORT:
			l.ppKind, l.expectHeaderName = ppImport, true
		case token.PP_EMBED:
			l.ppKind, l.expectHeaderName = ppEmbed, true
		}
	}
	return &token.Token{Kind: kind, Span: span, Value: token.Value{Spelling: ref}}
}

func (l *Lexer) applyKeywordDiagnostics(e *keyword.Entry, span token.Span) {
	if e == nil {
		return
	}
	if e.GNUOnly && !l.ctx.GNUExtensions {
		l.warn(cctx.WarnExtension, span, "'%s' is a GNU extension", e.Spelling)
	} else if !e.GNUOnly && !l.ctx.StdAtLeast(e.MinStd) && !l.ctx.GNUExtensions {
		l.warn(cctx.WarnExtension, span, "'%s' requires %s or later", e.Spelling, e.MinStd)
	}
	if e.Form == keyword.FormOldUnderscored && l.ctx.StdAtLeast(cctx.C23) {
		l.warn(cctx.WarnDeprecated, span, "'%s' is deprecated in C23", e.Spelling)
	}
	if e.Form == keyword.FormNew && !l.ctx.StdAtLeast(cctx.C23) {
		l.warn(cctx.WarnExtension, span, "'%s' is a C23 keyword", e.Spelling)
	}
	if e.C23Status == keyword.StatusRemoved && l.ctx.StdAtLeast(cctx.C23) {
		l.sink.Diag(diag.ERROR, span, l.stream, "'%s' was removed in C23", e.Spelling)
	}
}

func (l *Lexer) lexUCN() (rune, bool) {
	start := l.tr.Position()
	l.tr.Next() // backslash
	kind := l.tr.Next()
	n := 4
	if kind == 'U' {
		n = 8
	}
	var v rune
	for i := 0; i < n; i++ {
		d, ok := hexVal(byte(l.tr.Peek()))
		if !ok {
			l.errorAt(l.spanFrom(start), "incomplete universal character name")
			return 0, false
		}
		v = v*16 + rune(d)
		l.tr.Next()
	}
	if (v >= 0xD800 && v <= 0xDFFF) || v > 0x10FFFF {
		l.errorAt(l.spanFrom(start), "universal character name refers to an invalid code point")
		return 0, false
	}
	return v, true
}

func (l *Lexer) decodeUTF8Ahead() (rune, int, bool) {
	w := l.tr.PeekWindow(4)
	r, size := decodeRuneBytes(w)
	if r == 0xFFFD && size <= 1 {
		return 0, 0, false
	}
	return r, size, true
}

func isIdentStart(b int, ctx *cctx.Context) bool {
	return b == '_' || isAlpha(b) || b >= 0x80 || (ctx.GNUExtensions && b == '$')
}

func isDigit(b int) bool { return b >= '0' && b <= '9' }
func isAlpha(b int) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
