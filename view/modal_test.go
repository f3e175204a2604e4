package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almacen-catalogo/models"
)

type fakeCatalog map[int]models.Product

func (c fakeCatalog) ByID(id int) (models.Product, bool) {
	p, ok := c[id]
	return p, ok
}

type recordingEffects struct {
	locks   int
	unlocks int
	theme   string
}

func (e *recordingEffects) LockScroll()           { e.locks++ }
func (e *recordingEffects) UnlockScroll()         { e.unlocks++ }
func (e *recordingEffects) SetTheme(theme string) { e.theme = theme }

func testModal() (*ModalController, *recordingEffects) {
	catalog := fakeCatalog{
		1: {ID: 1, Name: "Agua Mineral", Price: 500},
		2: {ID: 2, Name: "Papas Fritas", Price: 1500, PromoPrice: 2500},
	}
	effects := &recordingEffects{}
	return NewModalController(catalog, effects), effects
}

func TestModalStartsHidden(t *testing.T) {
	m, _ := testModal()

	assert.Equal(t, ModalHidden, m.State())
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestModalOpenShowsProductAndLocksScroll(t *testing.T) {
	m, effects := testModal()

	m.Open(1)

	assert.Equal(t, ModalVisible, m.State())
	p, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "Agua Mineral", p.Name)
	assert.Equal(t, 1, effects.locks)
}

func TestModalOpenUnknownIDIsNoOp(t *testing.T) {
	m, effects := testModal()

	m.Open(99)

	assert.Equal(t, ModalHidden, m.State())
	assert.Zero(t, effects.locks)
}

func TestModalOpenUnknownIDWhileVisibleKeepsContent(t *testing.T) {
	m, _ := testModal()
	m.Open(1)

	m.Open(99)

	assert.Equal(t, ModalVisible, m.State())
	p, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)
}

func TestModalReopenRepopulatesWithoutRelocking(t *testing.T) {
	m, effects := testModal()
	m.Open(1)

	m.Open(2)

	assert.Equal(t, ModalVisible, m.State())
	p, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "Papas Fritas", p.Name)
	assert.Equal(t, 1, effects.locks, "no transition through Hidden on reopen")
}

func TestModalCloseRestoresScroll(t *testing.T) {
	m, effects := testModal()
	m.Open(1)

	m.Close()

	assert.Equal(t, ModalHidden, m.State())
	_, ok := m.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, effects.unlocks)
}

func TestModalCloseWhileHiddenIsNoOp(t *testing.T) {
	m, effects := testModal()

	m.Close()

	assert.Equal(t, ModalHidden, m.State())
	assert.Zero(t, effects.unlocks)
}
