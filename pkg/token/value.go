package token

import "github.com/Yeint-herp/yecc/pkg/intern"

// IntBase tags the radix an integer literal was written in.
type IntBase int

const (
	BaseNone IntBase = iota
	Base10
	Base16
	Base8
	Base2
)

// FloatStyle tags whether a floating literal used decimal or hexadecimal
// notation.
type FloatStyle int

const (
	FloatDec FloatStyle = iota
	FloatHex
)

// FloatSuffix tags the suffix spelling of a floating literal.
// FloatSuffixLongDouble is used for both 'l' and 'L'; FloatSuffixF32 is
// used only for the explicit f32/F32 suffix spelling.
type FloatSuffix int

const (
	FloatSuffixNone FloatSuffix = iota
	FloatSuffixF
	FloatSuffixLongDouble
	FloatSuffixF16
	FloatSuffixF32
	FloatSuffixF64
	FloatSuffixF128
	FloatSuffixF32x
	FloatSuffixF64x
	FloatSuffixF128x
	FloatSuffixDF
	FloatSuffixDD
	FloatSuffixDL
)

// IntValue is the decoded payload of an INTEGER_CONSTANT token.
type IntValue struct {
	Signed   int64
	Unsigned uint64
	Base     IntBase
}

// FloatValue is the decoded payload of a FLOATING_CONSTANT token.
type FloatValue struct {
	Bits   float64
	Style  FloatStyle
	Suffix FloatSuffix
}

// StringValue is the decoded payload of a STRING_LITERAL token. Exactly
// one of Bytes/Units16/Units32 is populated, per the token's encoding
// flag. Every populated slice is NUL-terminated (the terminator is part
// of the slice).
type StringValue struct {
	Bytes   []byte   // PLAIN and UTF8, and WIDE when wchar_bits == 8
	Units16 []uint16 // UTF16, and WIDE when wchar_bits == 16
	Units32 []uint32 // UTF32, and WIDE when wchar_bits == 32
}

// Value is the decoded payload carried by a Token. Which field is
// meaningful is determined by the Token's Kind.
type Value struct {
	Int      IntValue
	Float    FloatValue
	Spelling *intern.Ref // identifier / keyword / header-name spelling
	Str      StringValue
	Char     uint32 // CHARACTER_CONSTANT scalar value
	ErrorMsg *intern.Ref // TOKEN_ERROR reason
}
