package view

import (
	"almacen-catalogo/models"
)

// ModalState is the visibility state of the detail overlay.
type ModalState int

const (
	ModalHidden ModalState = iota
	ModalVisible
)

// Catalog is the read side of the product store the modal resolves
// identifiers against.
type Catalog interface {
	ByID(id int) (models.Product, bool)
}

// ModalController drives the single product detail overlay. It starts
// Hidden; every transition is user-input-driven.
type ModalController struct {
	catalog Catalog
	effects Effects
	state   ModalState
	current models.Product
}

// NewModalController creates a new ModalController in the Hidden state.
func NewModalController(catalog Catalog, effects Effects) *ModalController {
	return &ModalController{
		catalog: catalog,
		effects: effects,
		state:   ModalHidden,
	}
}

// Open populates the overlay with the product identified by id and shows it.
// An unknown id is a stale or malformed click and is silently ignored: no
// state change, no error. Opening while already Visible repopulates the
// fields without passing through Hidden, so the scroll lock is not reapplied.
func (m *ModalController) Open(id int) {
	product, ok := m.catalog.ByID(id)
	if !ok {
		return
	}

	m.current = product
	if m.state != ModalVisible {
		m.state = ModalVisible
		m.effects.LockScroll()
	}
}

// Close hides the overlay and restores page scroll. Closing while Hidden is
// a no-op.
func (m *ModalController) Close() {
	if m.state != ModalVisible {
		return
	}
	m.state = ModalHidden
	m.current = models.Product{}
	m.effects.UnlockScroll()
}

// State returns the current visibility state.
func (m *ModalController) State() ModalState {
	return m.state
}

// Current returns the product the overlay is showing, if Visible.
func (m *ModalController) Current() (models.Product, bool) {
	if m.state != ModalVisible {
		return models.Product{}, false
	}
	return m.current, true
}
