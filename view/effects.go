package view

// Effects applies presentation side effects to the display surface.
// Abstracting them keeps the modal and theme logic free of any concrete
// page representation.
type Effects interface {
	// LockScroll disables background scrolling while an overlay is shown.
	LockScroll()
	// UnlockScroll restores background scrolling.
	UnlockScroll()
	// SetTheme applies a theme variant to the document-level attribute.
	SetTheme(theme string)
}

// PageState is the Effects implementation for server-rendered pages. The
// storefront template reads its fields to emit the body scroll-lock class
// and the html data-theme attribute.
type PageState struct {
	ScrollLocked bool
	Theme        string
}

// Ensure PageState implements Effects
var _ Effects = (*PageState)(nil)

func (p *PageState) LockScroll() {
	p.ScrollLocked = true
}

func (p *PageState) UnlockScroll() {
	p.ScrollLocked = false
}

func (p *PageState) SetTheme(theme string) {
	p.Theme = theme
}
