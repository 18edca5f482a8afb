// Package cctx holds the shared compiler context: language standard,
// dialect flags, warning masks, and target parameters consumed by the
// lexer and its collaborators.
package cctx

// Std is a supported C language standard.
type Std int

const (
	C89 Std = iota
	C99
	C11
	C17
	C23
)

// String returns the conventional spelling of s.
func (s Std) String() string {
	switch s {
	case C89:
		return "c89"
	case C99:
		return "c99"
	case C11:
		return "c11"
	case C17:
		return "c17"
	case C23:
		return "c23"
	default:
		return "unknown"
	}
}

// WCharBits is the target's wide-character bit width.
type WCharBits int

const (
	WChar8  WCharBits = 8
	WChar16 WCharBits = 16
	WChar32 WCharBits = 32
)

// FloatMode controls whether and how floating literals are accepted.
type FloatMode int

const (
	FloatFull FloatMode = iota
	FloatSoft
	FloatDisabled
)

// Warning identifies a diagnosable extension/style condition that can be
// independently enabled and independently upgraded to an error.
type Warning int

const (
	WarnPedantic Warning = iota
	WarnTrigraphs
	WarnMultiCharChar
	WarnStringWidthPromotion
	WarnExtension
	WarnDeprecated
	WarnOverflow
	WarnImaginary

	numWarnings
)

// WarningMask is a bitmask over Warning values.
type WarningMask uint32

func maskBit(w Warning) WarningMask { return WarningMask(1) << uint(w) }

// AllWarnings is a mask with every known warning bit set, a convenient
// default for WarningEnabledMask.
func AllWarnings() WarningMask {
	var m WarningMask
	for w := Warning(0); w < numWarnings; w++ {
		m |= maskBit(w)
	}
	return m
}

// Context is the shared configuration record consulted by the lexer, the
// keyword table, and the literal decoders.
type Context struct {
	LangStd         Std
	GNUExtensions   bool
	Pedantic        bool
	EnableTrigraphs bool
	WCharBits       WCharBits
	FloatMode       FloatMode

	WarningsAsErrors   bool
	WarningEnabledMask WarningMask
	WarningErrorMask   WarningMask

	// MaxErrors bounds the number of ERROR diagnostics a single lexing
	// session will emit before a caller should stop. 0 means unlimited.
	// The lexer itself does not enforce this; it is surfaced for
	// callers such as cmd/yecc.
	MaxErrors int
}

// New returns a Context with the conservative defaults: C17, no GNU
// extensions, no pedantic mode, trigraphs disabled, 32-bit wide chars,
// full floating-point support, and every warning enabled but none
// promoted to an error.
func New() *Context {
	return &Context{
		LangStd:            C17,
		WCharBits:          WChar32,
		FloatMode:          FloatFull,
		WarningEnabledMask: AllWarnings(),
		MaxErrors:          64,
	}
}

// StdAtLeast reports whether the configured language standard is at
// least v.
func (c *Context) StdAtLeast(v Std) bool { return c.LangStd >= v }

// WarningEnabled reports whether diagnostics for w should be emitted at
// all.
func (c *Context) WarningEnabled(w Warning) bool {
	return c.WarningEnabledMask&maskBit(w) != 0
}

// WarningAsError reports whether an enabled warning w should be
// surfaced as an error instead, per WarningsAsErrors and
// WarningErrorMask.
func (c *Context) WarningAsError(w Warning) bool {
	if !c.WarningEnabled(w) {
		return false
	}
	return c.WarningsAsErrors || c.WarningErrorMask&maskBit(w) != 0
}
