package view

// Theme variants. These are the only two valid values; anything else found
// in storage is treated as the light default.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeKey is the storage key the preference is persisted under.
const ThemeKey = "theme"

// Storage is the persisted key-value store backing the theme preference.
// The HTTP layer implements it over a cookie.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// ThemeManager owns the theme preference: it reads the persisted variant at
// construction, applies it through the effects surface, and persists every
// toggle synchronously.
type ThemeManager struct {
	storage Storage
	effects Effects
	current string
}

// NewThemeManager creates a ThemeManager, restoring the persisted variant
// (or the light default) and applying it immediately.
func NewThemeManager(storage Storage, effects Effects) *ThemeManager {
	current := ThemeLight
	if saved, ok := storage.Get(ThemeKey); ok {
		current = normalizeTheme(saved)
	}

	m := &ThemeManager{
		storage: storage,
		effects: effects,
		current: current,
	}
	m.effects.SetTheme(current)
	return m
}

// Current returns the active theme variant.
func (m *ThemeManager) Current() string {
	return m.current
}

// Toggle flips between light and dark, applies the new variant, and persists
// it before returning.
func (m *ThemeManager) Toggle() string {
	next := ThemeLight
	if m.current == ThemeLight {
		next = ThemeDark
	}

	m.current = next
	m.effects.SetTheme(next)
	m.storage.Set(ThemeKey, next)
	return next
}

// normalizeTheme collapses unrecognized persisted values to the light
// default rather than propagating garbage state.
func normalizeTheme(value string) string {
	if value == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}
