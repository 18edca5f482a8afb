package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/diag"
	"github.com/Yeint-herp/yecc/pkg/intern"
	"github.com/Yeint-herp/yecc/pkg/token"
)

func newTestLexer(t *testing.T, src string, configure func(*cctx.Context)) (*Lexer, *diag.Sink, *bytes.Buffer) {
	t.Helper()
	ctx := cctx.New()
	if configure != nil {
		configure(ctx)
	}
	var buf bytes.Buffer
	sink := diag.NewSink(&buf)
	l := NewFromBytes("t.c", []byte(src), ctx, intern.New(), sink)
	return l, sink, &buf
}

func allTokens(l *Lexer) []*token.Token {
	var toks []*token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []*token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

// Scenario 1: a BOM followed by ordinary keywords lexes as if the BOM
// were never there.
func TestScenarioBOMAndKeywords(t *testing.T) {
	src := "\xEF\xBB\xBFint main(void) { return 0; }"
	l, sink, _ := newTestLexer(t, src, nil)
	toks := allTokens(l)
	require.Equal(t, 0, sink.ErrorCount())
	got := kinds(toks)
	want := []token.Kind{
		token.KW_INT, token.IDENTIFIER, token.PUNCT_LPAREN, token.KW_VOID, token.PUNCT_RPAREN,
		token.PUNCT_LBRACE, token.KW_RETURN, token.INTEGER_CONSTANT, token.PUNCT_SEMI, token.PUNCT_RBRACE,
		token.EOF,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 1, toks[0].Span.Start.Column)
}

// Scenario 2: a directive followed by an angle header-name.
func TestScenarioDirectiveAndHeaderName(t *testing.T) {
	l, sink, _ := newTestLexer(t, "#include <stdio.h>\n", nil)
	toks := allTokens(l)
	require.Equal(t, 0, sink.ErrorCount())
	want := []token.Kind{token.PP_HASH, token.PP_INCLUDE, token.HEADER_NAME, token.EOF}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, "stdio.h", toks[2].Value.Spelling.String())
}

// Scenario 3: the "%:" digraph spelling of '#' opens a directive exactly
// like '#' itself.
func TestScenarioDigraphInclude(t *testing.T) {
	l, sink, _ := newTestLexer(t, "%:include <x>\n", func(c *cctx.Context) {
		c.EnableTrigraphs = true
	})
	toks := allTokens(l)
	require.Equal(t, 0, sink.ErrorCount())
	want := []token.Kind{token.PP_HASH, token.PP_INCLUDE, token.HEADER_NAME, token.EOF}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, "x", toks[2].Value.Spelling.String())
}

// Scenario 4: integer bases, separators, and the bare-"0" special case.
func TestScenarioIntegerBasesAndSeparators(t *testing.T) {
	l, _, _ := newTestLexer(t, "0 010 0x1F 0b101 1'000'000", func(c *cctx.Context) {
		c.GNUExtensions = true
	})
	toks := allTokens(l)
	require.Len(t, toks, 6) // 5 literals + EOF

	assert.Equal(t, token.Base10, toks[0].Value.Int.Base)
	assert.EqualValues(t, 0, toks[0].Value.Int.Unsigned)

	assert.Equal(t, token.Base8, toks[1].Value.Int.Base)
	assert.EqualValues(t, 8, toks[1].Value.Int.Unsigned)

	assert.Equal(t, token.Base16, toks[2].Value.Int.Base)
	assert.EqualValues(t, 0x1F, toks[2].Value.Int.Unsigned)

	assert.Equal(t, token.Base2, toks[3].Value.Int.Base)
	assert.EqualValues(t, 5, toks[3].Value.Int.Unsigned)

	assert.Equal(t, token.Base10, toks[4].Value.Int.Base)
	assert.EqualValues(t, 1000000, toks[4].Value.Int.Unsigned)
}

// Scenario 5: concatenating a plain string with a wide string promotes
// the whole literal to wide encoding.
func TestScenarioStringPromotionToWide(t *testing.T) {
	l, sink, buf := newTestLexer(t, `"ab" L"cd"`, nil)
	toks := allTokens(l)
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING_LITERAL, toks[0].Kind)
	assert.Equal(t, token.FlagEncodingWide, toks[0].Flags.Encoding())
	assert.Equal(t, []uint32{'a', 'b', 'c', 'd', 0}, toks[0].Value.Str.Units32)
	assert.Equal(t, 0, sink.ErrorCount()) // promotion is a warning, not an error
	assert.Contains(t, buf.String(), "concatenated")
}

// Scenario 6: a multi-character plain char constant packs to its low
// unit.
func TestScenarioMultiCharLiteral(t *testing.T) {
	l, _, _ := newTestLexer(t, `'ABC'`, nil)
	toks := allTokens(l)
	require.Len(t, toks, 2)
	require.Equal(t, token.CHARACTER_CONSTANT, toks[0].Kind)
	assert.EqualValues(t, 'C', toks[0].Value.Char)
}

// Scenario 7: an unterminated block comment runs to end of input; it is
// reported once, as an ERROR token, and lexing still reaches EOF.
func TestScenarioUnterminatedCommentRecovers(t *testing.T) {
	l, sink, _ := newTestLexer(t, "/* never closes\nx", nil)
	toks := allTokens(l)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.ERROR, toks[0].Kind)
	assert.Equal(t, 1, sink.ErrorCount())
}

// Scenario 8: line splices inside an identifier are elided before
// tokenization, fusing the pieces into one IDENTIFIER.
func TestScenarioLineSpliceInIdentifier(t *testing.T) {
	l, sink, _ := newTestLexer(t, "foo\\\nbar\\\n_baz", nil)
	toks := allTokens(l)
	require.Equal(t, 0, sink.ErrorCount())
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "foobar_baz", toks[0].Value.Spelling.String())
}

// Property: Next always reaches EOF in a bounded number of calls and
// never panics on an empty input.
func TestForwardProgressOnEmptyInput(t *testing.T) {
	l, _, _ := newTestLexer(t, "", nil)
	tok := l.Next()
	assert.Equal(t, token.EOF, tok.Kind)
	// EOF is stable: calling again still returns EOF, not a panic or loop.
	tok2 := l.Next()
	assert.Equal(t, token.EOF, tok2.Kind)
}

// Property: token spans are well-formed (Start <= End by offset).
func TestSpanWellFormed(t *testing.T) {
	l, _, _ := newTestLexer(t, "int x = 42;", nil)
	for _, tok := range allTokens(l) {
		assert.LessOrEqual(t, tok.Span.Start.Offset, tok.Span.End.Offset)
	}
}

// Keyword classification is sensitive to directive context: "if" is a
// statement keyword outside a directive and a PP_IF inside one.
func TestDirectiveKeywordDualClassification(t *testing.T) {
	l, sink, _ := newTestLexer(t, "#if 1\nif (1) {}\n#endif\n", nil)
	toks := allTokens(l)
	require.Equal(t, 0, sink.ErrorCount())
	want := []token.Kind{
		token.PP_HASH, token.PP_IF, token.INTEGER_CONSTANT,
		token.KW_IF, token.PUNCT_LPAREN, token.INTEGER_CONSTANT, token.PUNCT_RPAREN,
		token.PUNCT_LBRACE, token.PUNCT_RBRACE,
		token.PP_HASH, token.PP_ENDIF,
		token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

// A GNU-only keyword used without GNU extensions enabled still
// classifies correctly but is flagged.
func TestGNUKeywordExtensionWarning(t *testing.T) {
	l, sink, _ := newTestLexer(t, "__attribute__", nil)
	tok := l.Next()
	assert.Equal(t, token.KW_GNU_ATTRIBUTE, tok.Kind)
	assert.Equal(t, 0, sink.ErrorCount()) // a warning, not an error
}

// An imaginary-number suffix is a GNU/legacy extension before C23: it
// lexes successfully and only warns.
func TestImaginarySuffixWarnsBeforeC23(t *testing.T) {
	l, sink, buf := newTestLexer(t, "1.0i 3j", func(c *cctx.Context) {
		c.LangStd = cctx.C17
	})
	toks := allTokens(l)
	require.Equal(t, 0, sink.ErrorCount())
	require.Equal(t, token.FLOATING_CONSTANT, toks[0].Kind)
	require.Equal(t, token.INTEGER_CONSTANT, toks[1].Kind)
	assert.Contains(t, buf.String(), "imaginary")
}

// At C23 and later, imaginary types have been removed from the
// standard, so an imaginary suffix is rejected as an error.
func TestImaginarySuffixErrorsAtC23(t *testing.T) {
	l, sink, _ := newTestLexer(t, "1.0i", func(c *cctx.Context) {
		c.LangStd = cctx.C23
	})
	tok := l.Next()
	assert.Equal(t, token.ERROR, tok.Kind)
	assert.Equal(t, 1, sink.ErrorCount())
}
