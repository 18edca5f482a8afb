package lexer

import "unicode/utf8"

// decodeRuneBytes decodes the single UTF-8 rune starting w, returning
// (utf8.RuneError, 1) on any invalid encoding so callers can substitute
// U+FFFD and resynchronize by one byte.
func decodeRuneBytes(w []byte) (rune, int) {
	if len(w) == 0 {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRune(w)
	return r, size
}

// appendUTF8Scalar appends cp's UTF-8 encoding to buf, substituting
// U+FFFD for any scalar outside the valid code point range or within the
// surrogate range.
func appendUTF8Scalar(buf []byte, cp rune) []byte {
	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		cp = 0xFFFD
	}
	var tmp [4]byte
	n := utf8.EncodeRune(tmp[:], cp)
	return append(buf, tmp[:n]...)
}

// appendUTF16Scalar appends cp's UTF-16 representation (a surrogate pair
// above the BMP) to units, substituting U+FFFD for any invalid scalar.
func appendUTF16Scalar(units []uint16, cp rune) []uint16 {
	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return append(units, 0xFFFD)
	}
	if cp <= 0xFFFF {
		return append(units, uint16(cp))
	}
	cp -= 0x10000
	hi := uint16(0xD800 + (cp >> 10))
	lo := uint16(0xDC00 + (cp & 0x3FF))
	return append(units, hi, lo)
}

// clampScalar32 validates cp as a UTF-32 code unit, substituting U+FFFD
// for any invalid scalar.
func clampScalar32(cp rune) uint32 {
	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return 0xFFFD
	}
	return uint32(cp)
}

func unitMask(bits int) uint32 {
	if bits >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << uint(bits)) - 1
}

// packCharScalar packs a multi-character character constant: units are
// shifted in big-endian order and the final value is truncated to a
// single unit's width (so 'ABC' packs down to 'C').
func packCharScalar(cps []rune, unitBits int) uint32 {
	var v uint64
	for _, cp := range cps {
		v = (v << uint(unitBits)) | uint64(uint32(cp))
	}
	return uint32(v) & unitMask(unitBits)
}
