package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first := NewTheme(dir, ThemeLight)
	assert.Equal(t, ThemeLight, first.Name())
	first.Set(ThemeDark)

	second := NewTheme(dir, ThemeLight)
	assert.Equal(t, ThemeDark, second.Name())
}

func TestThemeToggle(t *testing.T) {
	theme := NewTheme(t.TempDir(), ThemeLight)
	assert.Equal(t, ThemeDark, theme.Toggle())
	assert.Equal(t, ThemeLight, theme.Toggle())

	// anything unknown toggles back to light
	theme.Set("sepia")
	assert.Equal(t, ThemeLight, theme.Toggle())
}
