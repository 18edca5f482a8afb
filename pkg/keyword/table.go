// Package keyword implements the static spelling -> token-kind
// classification table, including the min-standard, GNU-only,
// spelling-form, and C23-status policy a classified keyword's
// diagnostics depend on.
package keyword

import (
	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/collection"
	"github.com/Yeint-herp/yecc/pkg/token"
)

// SpellingForm classifies whether a keyword spelling is the neutral
// (only) form, the historical underscored form, or the new bare-word
// form introduced as its C23 replacement.
type SpellingForm int

const (
	FormNeutral SpellingForm = iota
	FormOldUnderscored
	FormNew
)

// C23Status records whether C23 deprecates or removes a keyword.
type C23Status int

const (
	StatusNone C23Status = iota
	StatusDeprecated
	StatusRemoved
)

// Entry is one row of the keyword table.
type Entry struct {
	Spelling        string
	Kind            token.Kind
	IsPreprocessor  bool
	MinStd          cctx.Std
	GNUOnly         bool
	Form            SpellingForm
	C23Status       C23Status
}

// Table is the classification table, indexed by spelling for O(1)
// lookup. The zero value is not usable; construct with NewTable.
type Table struct {
	bySpelling *collection.Map[string, []Entry]
}

// NewTable builds the standard table of C-family keywords and
// preprocessor directive names.
func NewTable() *Table {
	t := &Table{bySpelling: collection.NewMap[string, []Entry](collection.FNV1a64)}
	for _, e := range entries {
		existing, _ := t.bySpelling.Get(e.Spelling)
		t.bySpelling.Set(e.Spelling, append(existing, e))
	}
	return t
}

// Classify returns the token kind for spelling given whether the lexer
// is currently inside a preprocessor directive:
//
//   - No entry matches: TOKEN_IDENTIFIER (here, token.IDENTIFIER).
//   - An entry whose IsPreprocessor matches inDirective is preferred.
//   - If only a preprocessor-only entry exists and inDirective is false,
//     the spelling degrades to an identifier (e.g. "defined" outside a
//     directive).
//   - If only a regular entry exists and inDirective is true, that entry
//     is still used (a keyword remains a keyword inside a directive).
func (t *Table) Classify(spelling string, inDirective bool) (token.Kind, *Entry) {
	candidates, ok := t.bySpelling.Get(spelling)
	if !ok || len(candidates) == 0 {
		return token.IDENTIFIER, nil
	}
	var fallback *Entry
	for i := range candidates {
		e := &candidates[i]
		if e.IsPreprocessor == inDirective {
			return e.Kind, e
		}
		fallback = e
	}
	// Only the wrong-context entry exists.
	if inDirective {
		// A regular keyword remains classified inside a directive.
		return fallback.Kind, fallback
	}
	// A preprocessor-only entry outside a directive is just an
	// identifier.
	return token.IDENTIFIER, nil
}
