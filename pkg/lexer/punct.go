package lexer

import (
	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/token"
)

type punctEntry struct {
	spelling string
	kind     token.Kind
}

// punctTable is the maximal-munch punctuator list, in the order required
// for correct longest-match dispatch: every multi-byte spelling precedes
// any of its single-byte prefixes.
var punctTable = []punctEntry{
	{"<<=", token.PUNCT_LSHIFT_ASSIGN},
	{">>=", token.PUNCT_RSHIFT_ASSIGN},
	{"...", token.PUNCT_ELLIPSIS},
	{"##", token.PP_HASHHASH},
	{"<<", token.PUNCT_LSHIFT},
	{">>", token.PUNCT_RSHIFT},
	{"&&", token.PUNCT_AND_AND},
	{"||", token.PUNCT_OR_OR},
	{"->", token.PUNCT_ARROW},
	{"++", token.PUNCT_PLUS_PLUS},
	{"--", token.PUNCT_MINUS_MINUS},
	{"+=", token.PUNCT_PLUS_ASSIGN},
	{"-=", token.PUNCT_MINUS_ASSIGN},
	{"*=", token.PUNCT_STAR_ASSIGN},
	{"/=", token.PUNCT_SLASH_ASSIGN},
	{"%=", token.PUNCT_PCT_ASSIGN},
	{"&=", token.PUNCT_AND_ASSIGN},
	{"^=", token.PUNCT_XOR_ASSIGN},
	{"|=", token.PUNCT_OR_ASSIGN},
	{"<=", token.PUNCT_LE},
	{">=", token.PUNCT_GE},
	{"==", token.PUNCT_EQ},
	{"!=", token.PUNCT_NE},
	{"#", token.PP_HASH},
	{"?", token.PUNCT_QUESTION},
	{":", token.PUNCT_COLON},
	{";", token.PUNCT_SEMI},
	{",", token.PUNCT_COMMA},
	{".", token.PUNCT_DOT},
	{"+", token.PUNCT_PLUS},
	{"-", token.PUNCT_MINUS},
	{"*", token.PUNCT_STAR},
	{"/", token.PUNCT_SLASH},
	{"%", token.PUNCT_PCT},
	{"<", token.PUNCT_LT},
	{">", token.PUNCT_GT},
	{"=", token.PUNCT_ASSIGN},
	{"!", token.PUNCT_NOT},
	{"~", token.PUNCT_TILDE},
	{"^", token.PUNCT_XOR},
	{"&", token.PUNCT_AND},
	{"|", token.PUNCT_OR},
	{"(", token.PUNCT_LPAREN},
	{")", token.PUNCT_RPAREN},
	{"[", token.PUNCT_LBRACKET},
	{"]", token.PUNCT_RBRACKET},
	{"{", token.PUNCT_LBRACE},
	{"}", token.PUNCT_RBRACE},
}

// digraphTable is the alternate spelling set checked ahead of
// punctTable and gated on EnableTrigraphs (the same switch that governs
// trigraph substitution, since both are dialect-spelling features).
var digraphTable = []punctEntry{
	{"%:%:", token.PP_HASHHASH},
	{"<:", token.PUNCT_LBRACKET},
	{":>", token.PUNCT_RBRACKET},
	{"<%", token.PUNCT_LBRACE},
	{"%>", token.PUNCT_RBRACE},
	{"%:", token.PP_HASH},
}

func (l *Lexer) lexPunct() *token.Token {
	start := l.tr.Position()

	if l.ctx.EnableTrigraphs {
		if e, ok := l.matchFromTable(digraphTable); ok {
			for range e.spelling {
				l.tr.Next()
			}
			l.warn(cctx.WarnTrigraphs, l.spanFrom(start), "'%s' is a digraph for '%s'", e.spelling, e.kind.String())
			return &token.Token{Kind: e.kind, Span: l.spanFrom(start)}
		}
	} else if e, ok := l.matchFromTable(digraphTable); ok {
		l.warn(cctx.WarnTrigraphs, l.spanFrom(start), "digraph '%s' ignored (pass --trigraphs to enable)", e.spelling)
	}

	if e, ok := l.matchFromTable(punctTable); ok {
		for range e.spelling {
			l.tr.Next()
		}
		return &token.Token{Kind: e.kind, Span: l.spanFrom(start)}
	}

	b := l.tr.Next()
	return l.errorAt(l.spanFrom(start), "unexpected character '\\x%02x'", b)
}

func (l *Lexer) matchFromTable(table []punctEntry) (punctEntry, bool) {
	for _, e := range table {
		w := l.tr.PeekWindow(len(e.spelling))
		if string(w) == e.spelling {
			return e, true
		}
	}
	return punctEntry{}, false
}
