package token

// Flags is a bitset carried on every Token. Integer-suffix bits and the
// encoding-kind bits are mutually exclusive groups; exactly one encoding
// bit is set on a STRING_LITERAL or CHARACTER_CONSTANT token.
type Flags uint16

const (
	FlagUnsigned Flags = 1 << iota
	FlagLong
	FlagLongLong

	FlagEncodingPlain
	FlagEncodingUTF8
	FlagEncodingUTF16
	FlagEncodingUTF32
	FlagEncodingWide
)

// Encoding extracts the single encoding-kind flag set in f, or
// FlagEncodingPlain if none is set.
func (f Flags) Encoding() Flags {
	const mask = FlagEncodingPlain | FlagEncodingUTF8 | FlagEncodingUTF16 | FlagEncodingUTF32 | FlagEncodingWide
	if e := f & mask; e != 0 {
		return e
	}
	return FlagEncodingPlain
}

// EncodingRank orders encoding kinds for the string-concatenation
// promotion rule: plain < u8 < u16 < u32 < wide.
func (f Flags) EncodingRank() int {
	switch f.Encoding() {
	case FlagEncodingPlain:
		return 0
	case FlagEncodingUTF8:
		return 1
	case FlagEncodingUTF16:
		return 2
	case FlagEncodingUTF32:
		return 3
	case FlagEncodingWide:
		return 4
	}
	return 0
}
