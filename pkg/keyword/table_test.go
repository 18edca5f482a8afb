package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/token"
)

func TestClassifyPlainKeyword(t *testing.T) {
	tbl := NewTable()
	kind, e := tbl.Classify("while", false)
	assert.Equal(t, token.KW_WHILE, kind)
	assert.NotNil(t, e)
	assert.Equal(t, cctx.C89, e.MinStd)
}

func TestClassifyUnknownSpellingIsIdentifier(t *testing.T) {
	tbl := NewTable()
	kind, e := tbl.Classify("frobnicate", false)
	assert.Equal(t, token.IDENTIFIER, kind)
	assert.Nil(t, e)
}

func TestClassifyDirectiveOnlyOutsideDirectiveIsIdentifier(t *testing.T) {
	tbl := NewTable()
	kind, e := tbl.Classify("include", false)
	assert.Equal(t, token.IDENTIFIER, kind)
	assert.Nil(t, e)
}

func TestClassifyDirectiveOnlyInsideDirective(t *testing.T) {
	tbl := NewTable()
	kind, e := tbl.Classify("include", true)
	assert.Equal(t, token.PP_INCLUDE, kind)
	assert.True(t, e.IsPreprocessor)
}

func TestClassifyDefinedDegradesOutsideDirective(t *testing.T) {
	tbl := NewTable()
	kind, _ := tbl.Classify("defined", false)
	assert.Equal(t, token.IDENTIFIER, kind)

	kind, e := tbl.Classify("defined", true)
	assert.Equal(t, token.PP_DEFINED, kind)
	assert.True(t, e.IsPreprocessor)
}

func TestClassifyDualSpellingPicksByDirectiveContext(t *testing.T) {
	tbl := NewTable()
	// "if" is both a directive keyword (#if) and a language keyword (if
	// statement); the preprocessor one wins inside a directive.
	kind, e := tbl.Classify("if", true)
	assert.Equal(t, token.PP_IF, kind)
	assert.True(t, e.IsPreprocessor)

	kind, e = tbl.Classify("if", false)
	assert.Equal(t, token.KW_IF, kind)
	assert.False(t, e.IsPreprocessor)
}

func TestClassifyGNUOnlyKeyword(t *testing.T) {
	tbl := NewTable()
	kind, e := tbl.Classify("__attribute__", false)
	assert.Equal(t, token.KW_GNU_ATTRIBUTE, kind)
	assert.True(t, e.GNUOnly)
}

func TestClassifyC23NewAndOldForms(t *testing.T) {
	tbl := NewTable()

	kind, e := tbl.Classify("_Bool", false)
	assert.Equal(t, token.KW_UNDERSCORE_BOOL, kind)
	assert.Equal(t, FormOldUnderscored, e.Form)

	kind, e = tbl.Classify("bool", false)
	assert.Equal(t, token.KW_BOOL, kind)
	assert.Equal(t, FormNew, e.Form)
	assert.Equal(t, cctx.C23, e.MinStd)
}

func TestClassifyRemovedStatus(t *testing.T) {
	tbl := NewTable()
	_, e := tbl.Classify("_Imaginary", false)
	assert.Equal(t, StatusRemoved, e.C23Status)
}
