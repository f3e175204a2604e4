package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type memoryStorage map[string]string

func (s memoryStorage) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func (s memoryStorage) Set(key, value string) {
	s[key] = value
}

func TestThemeDefaultsToLight(t *testing.T) {
	effects := &recordingEffects{}
	m := NewThemeManager(memoryStorage{}, effects)

	assert.Equal(t, ThemeLight, m.Current())
	assert.Equal(t, ThemeLight, effects.theme)
}

func TestThemeRestoresPersistedVariant(t *testing.T) {
	effects := &recordingEffects{}
	m := NewThemeManager(memoryStorage{ThemeKey: ThemeDark}, effects)

	assert.Equal(t, ThemeDark, m.Current())
	assert.Equal(t, ThemeDark, effects.theme)
}

func TestThemeGarbagePersistedValueFallsBackToLight(t *testing.T) {
	m := NewThemeManager(memoryStorage{ThemeKey: "solarized"}, &recordingEffects{})
	assert.Equal(t, ThemeLight, m.Current())
}

func TestThemeToggleFlipsAppliesAndPersists(t *testing.T) {
	storage := memoryStorage{}
	effects := &recordingEffects{}
	m := NewThemeManager(storage, effects)

	assert.Equal(t, ThemeDark, m.Toggle())
	assert.Equal(t, ThemeDark, effects.theme)
	assert.Equal(t, ThemeDark, storage[ThemeKey])

	assert.Equal(t, ThemeLight, m.Toggle())
	assert.Equal(t, ThemeLight, storage[ThemeKey])
}

func TestThemeRoundTripSurvivesReload(t *testing.T) {
	storage := memoryStorage{}
	NewThemeManager(storage, &recordingEffects{}).Toggle()

	// A fresh manager over the same storage simulates a page reload.
	reloaded := NewThemeManager(storage, &recordingEffects{})
	assert.Equal(t, ThemeDark, reloaded.Current())
}
