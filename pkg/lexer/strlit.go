// String and character literal decoding (§4.7.6, §4.7.7): prefix
// recognition, escape-sequence decoding shared by both literal kinds,
// per-encoding scalar accumulation, and string-literal concatenation
// with width promotion across adjacent pieces.
package lexer

import (
	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/diag"
	"github.com/Yeint-herp/yecc/pkg/source"
	"github.com/Yeint-herp/yecc/pkg/token"
)

// decodedString holds one literal piece's decoded code points prior to
// final encoding, so string concatenation can widen the output encoding
// across pieces before committing to a byte/unit representation.
type decodedString struct {
	codepoints []rune
	enc        token.Flags
}

func (l *Lexer) matchStringPrefix() (token.Flags, int, bool) {
	w := l.tr.PeekWindow(3)
	switch {
	case len(w) >= 3 && w[0] == 'u' && w[1] == '8' && w[2] == '"':
		return token.FlagEncodingUTF8, 3, true
	case len(w) >= 2 && w[0] == 'u' && w[1] == '"':
		return token.FlagEncodingUTF16, 2, true
	case len(w) >= 2 && w[0] == 'U' && w[1] == '"':
		return token.FlagEncodingUTF32, 2, true
	case len(w) >= 2 && w[0] == 'L' && w[1] == '"':
		return token.FlagEncodingWide, 2, true
	case len(w) >= 1 && w[0] == '"':
		return token.FlagEncodingPlain, 1, true
	}
	return 0, 0, false
}

func (l *Lexer) matchCharPrefix() (token.Flags, int, bool) {
	w := l.tr.PeekWindow(3)
	switch {
	case len(w) >= 3 && w[0] == 'u' && w[1] == '8' && w[2] == '\'':
		return token.FlagEncodingUTF8, 3, true
	case len(w) >= 2 && w[0] == 'u' && w[1] == '\'':
		return token.FlagEncodingUTF16, 2, true
	case len(w) >= 2 && w[0] == 'U' && w[1] == '\'':
		return token.FlagEncodingUTF32, 2, true
	case len(w) >= 2 && w[0] == 'L' && w[1] == '\'':
		return token.FlagEncodingWide, 2, true
	case len(w) >= 1 && w[0] == '\'':
		return token.FlagEncodingPlain, 1, true
	}
	return 0, 0, false
}

func (l *Lexer) lexString() *token.Token {
	start := l.tr.Position()
	var pieces []decodedString
	for {
		enc, n, ok := l.matchStringPrefix()
		if !ok {
			break
		}
		if enc == token.FlagEncodingUTF8 && !l.ctx.StdAtLeast(cctx.C23) && !l.ctx.GNUExtensions {
			l.warn(cctx.WarnExtension, l.spanFrom(l.tr.Position()), "u8 string literals require C23 or GNU extensions")
		}
		for i := 0; i < n; i++ {
			l.tr.Next()
		}
		cps, errTok := l.decodeQuotedBody('"', enc, "string literal")
		if errTok != nil {
			return errTok
		}
		pieces = append(pieces, decodedString{codepoints: cps, enc: enc})

		if tok := l.skipWhitespaceAndComments(); tok != nil {
			return tok
		}
		if _, _, ok := l.matchStringPrefix(); !ok {
			break
		}
	}
	return l.finishStringToken(start, pieces)
}

func (l *Lexer) lexChar() *token.Token {
	start := l.tr.Position()
	enc, n, _ := l.matchCharPrefix()
	for i := 0; i < n; i++ {
		l.tr.Next()
	}
	cps, errTok := l.decodeQuotedBody('\'', enc, "character constant")
	if errTok != nil {
		return errTok
	}
	span := l.spanFrom(start)
	if len(cps) == 0 {
		return l.errorAt(span, "empty character constant")
	}
	if len(cps) > 1 {
		l.warn(cctx.WarnMultiCharChar, span, "multi-character character constant")
	}

	unitBits := 8
	switch enc {
	case token.FlagEncodingUTF16:
		unitBits = 16
	case token.FlagEncodingUTF32:
		unitBits = 32
	case token.FlagEncodingWide:
		unitBits = int(l.ctx.WCharBits)
	}
	return &token.Token{
		Kind:  token.CHARACTER_CONSTANT,
		Span:  span,
		Flags: enc,
		Value: token.Value{Char: packCharScalar(cps, unitBits)},
	}
}

// decodeQuotedBody consumes bytes up to the matching quote (already
// positioned just past the opening quote by the caller), decoding
// escapes and, for non-plain encodings, UTF-8 continuation sequences.
// what names the construct for diagnostics ("string literal" /
// "character constant").
func (l *Lexer) decodeQuotedBody(quote byte, enc token.Flags, what string) ([]rune, *token.Token) {
	start := l.tr.Position()
	var cps []rune
	for {
		b := l.tr.Peek()
		if b == int(quote) {
			l.tr.Next()
			return cps, nil
		}
		if b == source.EOF || b == '\n' {
			tok := l.errorAt(l.spanFrom(start), "unterminated %s", what)
			l.recover()
			return nil, tok
		}
		if b == '\\' {
			cp, ok := l.decodeEscape(enc)
			if !ok {
				cps = append(cps, 0xFFFD)
				continue
			}
			cps = append(cps, cp)
			continue
		}
		if b >= 0x80 {
			if enc == token.FlagEncodingPlain {
				l.sink.Diag(diag.ERROR, l.spanFrom(start), l.stream, "byte value out of range in plain %s", what)
				cps = append(cps, '?')
				l.tr.Next()
				continue
			}
			r, n, ok := l.decodeUTF8Ahead()
			if !ok {
				cps = append(cps, 0xFFFD)
				l.tr.Next()
				continue
			}
			for i := 0; i < n; i++ {
				l.tr.Next()
			}
			cps = append(cps, r)
			continue
		}
		cps = append(cps, rune(l.tr.Next()))
	}
}

// decodeEscape consumes a backslash escape sequence and returns its
// decoded code point. On a hard failure it has already emitted a
// diagnostic and returns (0, false); the caller substitutes U+FFFD.
func (l *Lexer) decodeEscape(enc token.Flags) (rune, bool) {
	start := l.tr.Position()
	l.tr.Next() // backslash
	b := l.tr.Peek()
	switch b {
	case 'a':
		l.tr.Next()
		return 0x07, true
	case 'b':
		l.tr.Next()
		return 0x08, true
	case 'f':
		l.tr.Next()
		return 0x0C, true
	case 'n':
		l.tr.Next()
		return 0x0A, true
	case 'r':
		l.tr.Next()
		return 0x0D, true
	case 't':
		l.tr.Next()
		return 0x09, true
	case 'v':
		l.tr.Next()
		return 0x0B, true
	case '\\':
		l.tr.Next()
		return 0x5C, true
	case '\'':
		l.tr.Next()
		return 0x27, true
	case '"':
		l.tr.Next()
		return 0x22, true
	case '?':
		l.tr.Next()
		return 0x3F, true
	case 'e':
		l.tr.Next()
		if !l.ctx.GNUExtensions {
			l.warn(cctx.WarnExtension, l.spanFrom(start), "'\\e' is a GNU extension")
		}
		return 0x1B, true
	case 'x':
		l.tr.Next()
		v, n := l.readHexDigits()
		if n == 0 {
			l.sink.Diag(diag.ERROR, l.spanFrom(start), l.stream, "\\x used with no following hex digits")
			return 0, false
		}
		return rune(v), true
	case 'u', 'U':
		width := 4
		if b == 'U' {
			width = 8
		}
		l.tr.Next()
		if enc == token.FlagEncodingPlain || enc == token.FlagEncodingUTF8 {
			l.sink.Diag(diag.ERROR, l.spanFrom(start), l.stream, "universal character name not permitted in this literal's encoding")
		}
		v, ok := l.readExactHexDigits(width)
		if !ok {
			l.sink.Diag(diag.ERROR, l.spanFrom(start), l.stream, "incomplete universal character name")
			return 0, false
		}
		if v >= 0xD800 && v <= 0xDFFF {
			l.sink.Diag(diag.ERROR, l.spanFrom(start), l.stream, "universal character name refers to a surrogate")
			return 0, false
		}
		return rune(v), true
	default:
		if b >= '0' && b <= '7' {
			v := 0
			for i := 0; i < 3; i++ {
				c := l.tr.Peek()
				if c < '0' || c > '7' {
					break
				}
				v = v*8 + int(c-'0')
				l.tr.Next()
			}
			return rune(v), true
		}
		l.sink.Diag(diag.ERROR, l.spanFrom(start), l.stream, "unknown escape sequence")
		if b != source.EOF && b != '\n' {
			l.tr.Next()
		}
		return 0, false
	}
}

func (l *Lexer) readHexDigits() (uint32, int) {
	var v uint32
	n := 0
	for {
		d, ok := hexVal(byte(l.tr.Peek()))
		if !ok {
			break
		}
		v = v*16 + uint32(d)
		l.tr.Next()
		n++
	}
	return v, n
}

func (l *Lexer) readExactHexDigits(n int) (uint32, bool) {
	var v uint32
	for i := 0; i < n; i++ {
		d, ok := hexVal(byte(l.tr.Peek()))
		if !ok {
			return 0, false
		}
		v = v*16 + uint32(d)
		l.tr.Next()
	}
	return v, true
}

// finishStringToken concatenates adjacent literal pieces, promoting the
// result to the widest encoding among them (plain < u8 < u16 < u32 <
// wide) and warning whenever any piece is written in a narrower
// encoding than that result.
func (l *Lexer) finishStringToken(start token.Position, pieces []decodedString) *token.Token {
	span := l.spanFrom(start)
	finalEnc := token.FlagEncodingPlain
	if len(pieces) > 0 {
		finalEnc = pieces[0].enc
	}
	promoted := false
	var allCps []rune
	for _, p := range pieces {
		if p.enc.EncodingRank() > finalEnc.EncodingRank() {
			promoted = true
			finalEnc = p.enc
		} else if p.enc.EncodingRank() < finalEnc.EncodingRank() {
			promoted = true
		}
		allCps = append(allCps, p.codepoints...)
	}
	if promoted {
		l.warn(cctx.WarnStringWidthPromotion, span, "adjacent string literals concatenated at a wider encoding")
	}

	return &token.Token{
		Kind:  token.STRING_LITERAL,
		Span:  span,
		Flags: finalEnc,
		Value: token.Value{Str: l.encodeString(allCps, finalEnc, span)},
	}
}

func (l *Lexer) encodeString(cps []rune, enc token.Flags, span token.Span) token.StringValue {
	switch enc {
	case token.FlagEncodingUTF8:
		var buf []byte
		for _, cp := range cps {
			buf = appendUTF8Scalar(buf, cp)
		}
		return token.StringValue{Bytes: append(buf, 0)}

	case token.FlagEncodingUTF16:
		var units []uint16
		for _, cp := range cps {
			units = appendUTF16Scalar(units, cp)
		}
		return token.StringValue{Units16: append(units, 0)}

	case token.FlagEncodingUTF32:
		units := make([]uint32, 0, len(cps)+1)
		for _, cp := range cps {
			units = append(units, clampScalar32(cp))
		}
		return token.StringValue{Units32: append(units, 0)}

	case token.FlagEncodingWide:
		switch l.ctx.WCharBits {
		case cctx.WChar8:
			buf := make([]byte, 0, len(cps)+1)
			for _, cp := range cps {
				if cp > 0xFF {
					l.warn(cctx.WarnOverflow, span, "wide character exceeds 8-bit target width")
					buf = append(buf, 0xFD)
					continue
				}
				buf = append(buf, byte(cp))
			}
			return token.StringValue{Bytes: append(buf, 0)}
		case cctx.WChar16:
			var units []uint16
			for _, cp := range cps {
				units = appendUTF16Scalar(units, cp)
			}
			return token.StringValue{Units16: append(units, 0)}
		default:
			units := make([]uint32, 0, len(cps)+1)
			for _, cp := range cps {
				units = append(units, clampScalar32(cp))
			}
			return token.StringValue{Units32: append(units, 0)}
		}

	default: // FlagEncodingPlain
		buf := make([]byte, 0, len(cps)+1)
		for _, cp := range cps {
			buf = append(buf, byte(cp&0xFF))
		}
		return token.StringValue{Bytes: append(buf, 0)}
	}
}
