// Number lexing uses the classic two-pass "pp-number" strategy: first
// scan the raw token greedily (scanPPNumber), then classify its base,
// float-ness, and suffix (classifyNumber and friends). This mirrors how
// a preprocessor never needs to predict a number's final shape before
// reading it.
package lexer

import (
	"strconv"
	"strings"

	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/token"
)

func (l *Lexer) lexNumber() *token.Token {
	start := l.tr.Position()
	raw := l.scanPPNumber()
	return l.classifyNumber(start, raw)
}

// scanPPNumber greedily consumes a pp-number: digits, letters, '_', "'"
// separators, '.', and a '+'/'-' immediately following an exponent
// marker (so "1e+10" scans as one token rather than splitting at '+').
func (l *Lexer) scanPPNumber() []byte {
	var buf []byte
	for {
		b := l.tr.Peek()
		switch {
		case isDigit(b) || isAlpha(b) || b == '_' || b == '\'' || b == '.':
			buf = append(buf, byte(l.tr.Next()))
		case (b == '+' || b == '-') && len(buf) > 0 && isExpChar(buf[len(buf)-1]):
			buf = append(buf, byte(l.tr.Next()))
		default:
			return buf
		}
	}
}

func isExpChar(c byte) bool { return c == 'e' || c == 'E' || c == 'p' || c == 'P' }

func isDecDigitByte(c byte) bool { return c >= '0' && c <= '9' }
func isHexDigitByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isBinDigitByte(c byte) bool { return c == '0' || c == '1' }

// scanDigitRun splits s into a leading run of digit/separator bytes
// (accepted by isDigit) and the remainder.
func scanDigitRun(s string, isDigit func(byte) bool) (digits, rest string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if isDigit(c) || c == '\'' || c == '_' {
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

// stripSeparators validates that every "'" / "_" digit separator in
// digits sits strictly between two other characters (never leading,
// trailing, or doubled) and returns the separator-free text.
func stripSeparators(digits string) (string, bool) {
	var out []byte
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '\'' || c == '_' {
			if i == 0 || i == len(digits)-1 {
				return "", true
			}
			if digits[i-1] == '\'' || digits[i-1] == '_' || digits[i+1] == '\'' || digits[i+1] == '_' {
				return "", true
			}
			continue
		}
		out = append(out, c)
	}
	return string(out), false
}

func (l *Lexer) classifyNumber(start token.Position, raw []byte) *token.Token {
	span := l.spanFrom(start)
	s := string(raw)
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "0x") {
		return l.classifyHex(span, s)
	}
	if strings.HasPrefix(lower, "0b") && (l.ctx.StdAtLeast(cctx.C23) || l.ctx.GNUExtensions) {
		return l.classifyBinary(span, s)
	}
	if isDecimalFloatLike(s) {
		return l.classifyDecimalFloat(span, s)
	}
	if len(s) >= 1 && s[0] == '0' {
		digits, _ := scanDigitRun(s[1:], isDecDigitByte)
		if len(digits) > 0 {
			return l.classifyOctal(span, s)
		}
	}
	return l.classifyDecimalInt(span, s)
}

func isDecimalFloatLike(s string) bool {
	return strings.ContainsAny(s, ".") || strings.ContainsAny(s, "eE")
}

func (l *Lexer) intToken(span token.Span, uval uint64, base token.IntBase, flags token.Flags) *token.Token {
	return &token.Token{
		Kind:  token.INTEGER_CONSTANT,
		Span:  span,
		Flags: flags,
		Value: token.Value{Int: token.IntValue{Signed: int64(uval), Unsigned: uval, Base: base}},
	}
}

// stripImaginarySuffix removes a single trailing GNU/legacy imaginary
// marker ("i", "I", "j", or "J") from suffix, reporting whether one was
// present.
func stripImaginarySuffix(suffix string) (rest string, hasImaginary bool) {
	if len(suffix) == 0 {
		return suffix, false
	}
	switch suffix[len(suffix)-1] {
	case 'i', 'I', 'j', 'J':
		return suffix[:len(suffix)-1], true
	default:
		return suffix, false
	}
}

// checkImaginarySuffix validates a GNU/legacy imaginary-number suffix
// against the active language standard: a conforming extension before
// C23, and rejected at C23 and later now that imaginary types have been
// removed from the standard.
func (l *Lexer) checkImaginarySuffix(span token.Span) bool {
	if l.ctx.StdAtLeast(cctx.C23) {
		return false
	}
	l.warn(cctx.WarnImaginary, span, "imaginary number suffix is a GNU/legacy extension")
	return true
}

// parseIntSuffix accepts an optional single u/U, plus an optional single
// or doubled (same-case) l/L, in either order, followed by an optional
// trailing imaginary marker. Anything else is rejected.
func parseIntSuffix(suffix string) (token.Flags, bool, bool) {
	suffix, hasImaginary := stripImaginarySuffix(suffix)
	var flags token.Flags
	hasU := false
	lCount := 0
	var lChar byte
	i := 0
	for i < len(suffix) {
		c := suffix[i]
		switch c {
		case 'u', 'U':
			if hasU {
				return 0, false, false
			}
			hasU = true
			i++
		case 'l', 'L':
			switch lCount {
			case 0:
				lChar, lCount = c, 1
			case 1:
				if c != lChar || suffix[i-1] != lChar {
					return 0, false, false
				}
				lCount = 2
			default:
				return 0, false, false
			}
			i++
		default:
			return 0, false, false
		}
	}
	if hasU {
		flags |= token.FlagUnsigned
	}
	if lCount == 1 {
		flags |= token.FlagLong
	}
	if lCount == 2 {
		flags |= token.FlagLongLong
	}
	return flags, hasImaginary, true
}

func (l *Lexer) classifyDecimalInt(span token.Span, s string) *token.Token {
	digits, suffix := scanDigitRun(s, isDecDigitByte)
	clean, sepErr := stripSeparators(digits)
	if sepErr {
		return l.errorAt(span, "misplaced digit separator")
	}
	flags, imaginary, ok := parseIntSuffix(suffix)
	if !ok {
		return l.errorAt(span, "invalid suffix on integer constant")
	}
	if imaginary && !l.checkImaginarySuffix(span) {
		return l.errorAt(span, "imaginary numbers are not supported in this language standard")
	}
	if clean == "" {
		return l.errorAt(span, "invalid integer constant")
	}
	uval, err := strconv.ParseUint(clean, 10, 64)
	if err != nil {
		l.warn(cctx.WarnOverflow, span, "integer constant overflows")
	}
	return l.intToken(span, uval, token.Base10, flags)
}

func (l *Lexer) classifyOctal(span token.Span, s string) *token.Token {
	digits, suffix := scanDigitRun(s[1:], isDecDigitByte)
	clean, sepErr := stripSeparators(digits)
	if sepErr {
		return l.errorAt(span, "misplaced digit separator")
	}
	for i := 0; i < len(clean); i++ {
		if clean[i] == '8' || clean[i] == '9' {
			return l.errorAt(span, "invalid digit in octal constant")
		}
	}
	flags, imaginary, ok := parseIntSuffix(suffix)
	if !ok {
		return l.errorAt(span, "invalid suffix on integer constant")
	}
	if imaginary && !l.checkImaginarySuffix(span) {
		return l.errorAt(span, "imaginary numbers are not supported in this language standard")
	}
	uval, err := strconv.ParseUint(clean, 8, 64)
	if err != nil {
		l.warn(cctx.WarnOverflow, span, "integer constant overflows")
	}
	return l.intToken(span, uval, token.Base8, flags)
}

func (l *Lexer) classifyHex(span token.Span, s string) *token.Token {
	rest := s[2:]
	lower := strings.ToLower(rest)
	if strings.ContainsAny(lower, ".") || strings.Contains(lower, "p") {
		return l.classifyHexFloat(span, rest)
	}
	digits, suffix := scanDigitRun(rest, isHexDigitByte)
	clean, sepErr := stripSeparators(digits)
	if sepErr {
		return l.errorAt(span, "misplaced digit separator")
	}
	if clean == "" {
		return l.errorAt(span, "invalid hexadecimal constant")
	}
	flags, imaginary, ok := parseIntSuffix(suffix)
	if !ok {
		return l.errorAt(span, "invalid suffix on integer constant")
	}
	if imaginary && !l.checkImaginarySuffix(span) {
		return l.errorAt(span, "imaginary numbers are not supported in this language standard")
	}
	uval, err := strconv.ParseUint(clean, 16, 64)
	if err != nil {
		l.warn(cctx.WarnOverflow, span, "integer constant overflows")
	}
	return l.intToken(span, uval, token.Base16, flags)
}

func (l *Lexer) classifyBinary(span token.Span, s string) *token.Token {
	rest := s[2:]
	digits, suffix := scanDigitRun(rest, isBinDigitByte)
	clean, sepErr := stripSeparators(digits)
	if sepErr {
		return l.errorAt(span, "misplaced digit separator")
	}
	if clean == "" {
		return l.errorAt(span, "invalid binary constant")
	}
	flags, imaginary, ok := parseIntSuffix(suffix)
	if !ok {
		return l.errorAt(span, "invalid suffix on integer constant")
	}
	if imaginary && !l.checkImaginarySuffix(span) {
		return l.errorAt(span, "imaginary numbers are not supported in this language standard")
	}
	uval, err := strconv.ParseUint(clean, 2, 64)
	if err != nil {
		l.warn(cctx.WarnOverflow, span, "integer constant overflows")
	}
	return l.intToken(span, uval, token.Base2, flags)
}

// parseFloatSuffix classifies suffix, first stripping an optional
// trailing imaginary marker.
func parseFloatSuffix(suffix string) (sfx token.FloatSuffix, hasImaginary bool, ok bool) {
	suffix, hasImaginary = stripImaginarySuffix(suffix)
	switch strings.ToLower(suffix) {
	case "":
		return token.FloatSuffixNone, hasImaginary, true
	case "f":
		return token.FloatSuffixF, hasImaginary, true
	case "l":
		return token.FloatSuffixLongDouble, hasImaginary, true
	case "f16":
		return token.FloatSuffixF16, hasImaginary, true
	case "f32":
		return token.FloatSuffixF32, hasImaginary, true
	case "f64":
		return token.FloatSuffixF64, hasImaginary, true
	case "f128":
		return token.FloatSuffixF128, hasImaginary, true
	case "f32x":
		return token.FloatSuffixF32x, hasImaginary, true
	case "f64x":
		return token.FloatSuffixF64x, hasImaginary, true
	case "f128x":
		return token.FloatSuffixF128x, hasImaginary, true
	case "df":
		return token.FloatSuffixDF, hasImaginary, true
	case "dd":
		return token.FloatSuffixDD, hasImaginary, true
	case "dl":
		return token.FloatSuffixDL, hasImaginary, true
	default:
		return token.FloatSuffixNone, hasImaginary, false
	}
}

// checkFloatSuffixDialect warns when an extended floating suffix is used
// outside the dialect that defines it.
func (l *Lexer) checkFloatSuffixDialect(suf token.FloatSuffix, span token.Span) {
	switch suf {
	case token.FloatSuffixF16, token.FloatSuffixF32, token.FloatSuffixF64, token.FloatSuffixF128,
		token.FloatSuffixF32x, token.FloatSuffixF64x, token.FloatSuffixF128x:
		if !l.ctx.GNUExtensions {
			l.warn(cctx.WarnExtension, span, "extended floating-point suffix is a GNU extension")
		}
	case token.FloatSuffixDF, token.FloatSuffixDD, token.FloatSuffixDL:
		if !l.ctx.StdAtLeast(cctx.C23) && !l.ctx.GNUExtensions {
			l.warn(cctx.WarnExtension, span, "decimal floating-point suffix requires C23 or GNU extensions")
		}
	}
}

func (l *Lexer) classifyDecimalFloat(span token.Span, s string) *token.Token {
	if l.ctx.FloatMode == cctx.FloatDisabled {
		return l.errorAt(span, "floating-point constants are disabled")
	}

	mantissaEnd := 0
	for mantissaEnd < len(s) {
		c := s[mantissaEnd]
		if isDecDigitByte(c) || c == '.' || c == '\'' || c == '_' {
			mantissaEnd++
			continue
		}
		break
	}
	mantissa := s[:mantissaEnd]
	rest := s[mantissaEnd:]
	hasExp := len(rest) > 0 && (rest[0] == 'e' || rest[0] == 'E')

	cleanMantissa, sepErr := stripSeparators(mantissa)
	if sepErr {
		return l.errorAt(span, "misplaced digit separator")
	}
	if cleanMantissa == "" || cleanMantissa == "." {
		return l.errorAt(span, "malformed floating constant")
	}

	expDigits := ""
	suffix := rest
	if hasExp {
		suffix = rest[1:]
		sign := ""
		if len(suffix) > 0 && (suffix[0] == '+' || suffix[0] == '-') {
			sign, suffix = string(suffix[0]), suffix[1:]
		}
		digits, tail := scanDigitRun(suffix, isDecDigitByte)
		if digits == "" {
			return l.errorAt(span, "exponent has no digits")
		}
		expDigits, suffix = sign+digits, tail
	}

	suf, imaginary, ok := parseFloatSuffix(suffix)
	if !ok {
		return l.errorAt(span, "invalid suffix on floating constant")
	}
	if imaginary && !l.checkImaginarySuffix(span) {
		return l.errorAt(span, "imaginary numbers are not supported in this language standard")
	}
	l.checkFloatSuffixDialect(suf, span)

	fullNum := cleanMantissa
	if hasExp {
		fullNum += "e" + expDigits
	}
	bits, err := strconv.ParseFloat(fullNum, 64)
	if err != nil {
		l.warn(cctx.WarnOverflow, span, "floating constant out of range")
	}
	return &token.Token{
		Kind:  token.FLOATING_CONSTANT,
		Span:  span,
		Value: token.Value{Float: token.FloatValue{Bits: bits, Style: token.FloatDec, Suffix: suf}},
	}
}

func (l *Lexer) classifyHexFloat(span token.Span, rest string) *token.Token {
	if l.ctx.FloatMode == cctx.FloatDisabled {
		return l.errorAt(span, "floating-point constants are disabled")
	}

	pIdx := -1
	for i := 0; i < len(rest); i++ {
		if rest[i] == 'p' || rest[i] == 'P' {
			pIdx = i
			break
		}
	}
	if pIdx < 0 {
		return l.errorAt(span, "hexadecimal floating constant requires a 'p' exponent")
	}
	mantissa := rest[:pIdx]
	expAndSuffix := rest[pIdx+1:]

	cleanMantissa, sepErr := stripSeparators(mantissa)
	if sepErr {
		return l.errorAt(span, "misplaced digit separator")
	}
	hasHexDigit := false
	for i := 0; i < len(cleanMantissa); i++ {
		if isHexDigitByte(cleanMantissa[i]) {
			hasHexDigit = true
			break
		}
	}
	if !hasHexDigit {
		return l.errorAt(span, "hexadecimal floating constant requires at least one hex digit")
	}

	sign := ""
	if len(expAndSuffix) > 0 && (expAndSuffix[0] == '+' || expAndSuffix[0] == '-') {
		sign, expAndSuffix = string(expAndSuffix[0]), expAndSuffix[1:]
	}
	expDigits, suffix := scanDigitRun(expAndSuffix, isDecDigitByte)
	if expDigits == "" {
		return l.errorAt(span, "hexadecimal floating constant requires exponent digits")
	}

	suf, imaginary, ok := parseFloatSuffix(suffix)
	if !ok {
		return l.errorAt(span, "invalid suffix on floating constant")
	}
	if imaginary && !l.checkImaginarySuffix(span) {
		return l.errorAt(span, "imaginary numbers are not supported in this language standard")
	}
	l.checkFloatSuffixDialect(suf, span)

	fullNum := "0x" + cleanMantissa + "p" + sign + expDigits
	bits, err := strconv.ParseFloat(fullNum, 64)
	if err != nil {
		l.warn(cctx.WarnOverflow, span, "floating constant out of range")
	}
	return &token.Token{
		Kind:  token.FLOATING_CONSTANT,
		Span:  span,
		Value: token.Value{Float: token.FloatValue{Bits: bits, Style: token.FloatHex, Suffix: suf}},
	}
}
