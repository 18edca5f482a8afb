package cctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdAtLeast(t *testing.T) {
	c := New()
	c.LangStd = C11
	assert.True(t, c.StdAtLeast(C99))
	assert.True(t, c.StdAtLeast(C11))
	assert.False(t, c.StdAtLeast(C17))
}

func TestWarningEnabledAndAsError(t *testing.T) {
	c := New()
	c.WarningEnabledMask = 0
	assert.False(t, c.WarningEnabled(WarnPedantic))
	assert.False(t, c.WarningAsError(WarnPedantic))

	c.WarningEnabledMask = AllWarnings()
	assert.True(t, c.WarningEnabled(WarnPedantic))
	assert.False(t, c.WarningAsError(WarnPedantic))

	c.WarningsAsErrors = true
	assert.True(t, c.WarningAsError(WarnPedantic))

	c.WarningsAsErrors = false
	c.WarningErrorMask = WarningMask(1) << uint(WarnTrigraphs)
	assert.False(t, c.WarningAsError(WarnPedantic))
	assert.True(t, c.WarningAsError(WarnTrigraphs))
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, C17, c.LangStd)
	assert.Equal(t, WChar32, c.WCharBits)
	assert.Equal(t, FloatFull, c.FloatMode)
	assert.Equal(t, 64, c.MaxErrors)
}
