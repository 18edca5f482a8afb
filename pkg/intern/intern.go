// Package intern implements an append-only string interner. Distinct
// byte sequences map to distinct, stable *Ref values; identical byte
// sequences always map to the same *Ref (reference equality), and
// previously returned Refs are never invalidated or moved, because the
// arena backing them only ever grows.
//
// An Interner is an instance a caller constructs per compilation rather
// than process-wide global state, and is not safe for concurrent use.
package intern

import "github.com/Yeint-herp/yecc/pkg/collection"

// Ref is a stable reference to an interned byte sequence. Two Refs
// returned by the same Interner for equal content are the same pointer.
type Ref struct {
	text string
}

// String returns the interned text.
func (r *Ref) String() string {
	if r == nil {
		return ""
	}
	return r.text
}

// Bytes returns the interned text as a byte slice. The returned slice
// must not be mutated.
func (r *Ref) Bytes() []byte {
	if r == nil {
		return nil
	}
	return []byte(r.text)
}

// Interner deduplicates byte sequences into stable *Ref values. The zero
// value is not usable; construct with New.
type Interner struct {
	refs  *collection.Map[string, *Ref]
	arena *collection.Vector[*Ref]
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{
		refs:  collection.NewMap[string, *Ref](collection.FNV1a64),
		arena: collection.NewVector[*Ref](64),
	}
}

// Intern returns the stable Ref for s, allocating a new one on first
// sight of this exact content. The byte sequence is copied into the
// interner's own storage, so the caller's s may be reused or mutated
// after Intern returns.
func (in *Interner) Intern(s string) *Ref {
	if r, ok := in.refs.Get(s); ok {
		return r
	}
	// Copy into owned storage so later mutation of the caller's
	// underlying buffer (e.g. a reused lexer scratch buffer) can't
	// corrupt the interned value.
	owned := string(append([]byte(nil), s...))
	r := &Ref{text: owned}
	in.refs.Set(owned, r)
	in.arena.PushBack(r)
	return r
}

// InternBytes is a convenience wrapper for Intern(string(b)).
func (in *Interner) InternBytes(b []byte) *Ref {
	return in.Intern(string(b))
}

// Len returns the number of distinct interned strings.
func (in *Interner) Len() int { return in.arena.Len() }

// At returns the n'th distinct string interned so far (0-based, in
// first-seen order). It panics if n is out of range.
func (in *Interner) At(n int) *Ref { return in.arena.At(n) }
