package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almacen-catalogo/models"
)

const testPhone = "542346698477"

func testRenderService() *RenderService {
	return NewRenderService("Almacén La Esquina", testPhone)
}

func renderGridString(t *testing.T, products []models.Product, loadError bool) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, testRenderService().RenderGrid(&b, products, loadError, "all", "default"))
	return b.String()
}

func TestRenderGridEmptyShowsPlaceholder(t *testing.T) {
	out := renderGridString(t, nil, false)

	assert.Contains(t, out, "No se encontraron productos.")
	assert.NotContains(t, out, "product-card")
	assert.NotContains(t, out, "class=\"error\"")
}

func TestRenderGridLoadErrorShowsReloadMessage(t *testing.T) {
	out := renderGridString(t, nil, true)

	assert.Contains(t, out, "Error al cargar los productos. Por favor recarga la página.")
	assert.NotContains(t, out, "No se encontraron productos.")
}

func TestRenderGridOneCardPerProductInOrder(t *testing.T) {
	products := []models.Product{
		{ID: 3, Name: "Gaseosa Cola", Category: "bebidas", Weight: "1.5L", Price: 300},
		{ID: 1, Name: "Agua Mineral", Category: "bebidas", Weight: "500ml", Price: 500},
	}

	out := renderGridString(t, products, false)

	assert.Equal(t, 2, strings.Count(out, `class="product-card"`))
	assert.Less(t, strings.Index(out, "Gaseosa Cola"), strings.Index(out, "Agua Mineral"))
	assert.Contains(t, out, `loading="lazy"`)
	assert.Contains(t, out, "/products/3/image?size=thumb")
}

func TestRenderGridIsIdempotent(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Agua Mineral", Category: "bebidas", Price: 500},
	}

	first := renderGridString(t, products, false)
	second := renderGridString(t, products, false)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(second, `class="product-card"`))
}

func TestRenderGridPromoBadge(t *testing.T) {
	withPromo := []models.Product{
		{ID: 1, Name: "Papas Fritas", Category: "snacks", Price: 1000, PromoPrice: 1800},
	}
	out := renderGridString(t, withPromo, false)

	assert.Contains(t, out, "2 x $1.800")
	assert.Contains(t, out, "$1.000")

	without := []models.Product{
		{ID: 2, Name: "Maní Salado", Category: "snacks", Price: 1000},
	}
	out = renderGridString(t, without, false)
	assert.NotContains(t, out, "promo-badge")
	assert.NotContains(t, out, "2 x ")
}

func TestRenderGridOrderLink(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Yerba Mate", Category: "almacen", Price: 3200},
	}
	out := renderGridString(t, products, false)

	assert.Contains(t, out, "https://wa.me/"+testPhone+"?text=Hola%21%20Me%20interesa%20Yerba%20Mate")
}

func TestRenderPageModalMatchesCard(t *testing.T) {
	svc := testRenderService()
	product := models.Product{ID: 1, Name: "Papas Fritas", Category: "snacks", Weight: "90g", Price: 1000, PromoPrice: 1800}

	modal := svc.BuildModal(product, "all", "default")
	var b strings.Builder
	require.NoError(t, svc.RenderPage(&b, PageData{
		Theme:            "light",
		ScrollLocked:     true,
		Categories:       []string{"snacks"},
		SelectedCategory: "all",
		SelectedSort:     "default",
		Grid:             svc.BuildGrid([]models.Product{product}, false, "all", "default"),
		Modal:            &modal,
	}))
	out := b.String()

	// The CTA link must be byte-identical between the grid card and the modal.
	link := "https://wa.me/" + testPhone + "?text=Hola%21%20Me%20interesa%20Papas%20Fritas"
	assert.Equal(t, 2, strings.Count(out, link))

	// Promo shown in both places, base price alongside.
	assert.Equal(t, 2, strings.Count(out, "2 x $1.800"))
	assert.Contains(t, out, "Promoción: 2 x $1.800")
	assert.Contains(t, out, "$1.000")

	// Scroll lock and modal markup present.
	assert.Contains(t, out, `class="modal-open"`)
	assert.Contains(t, out, `id="product-modal"`)
	assert.Contains(t, out, `class="modal-backdrop"`)
}

func TestRenderPageWithoutModal(t *testing.T) {
	svc := testRenderService()
	var b strings.Builder
	require.NoError(t, svc.RenderPage(&b, PageData{
		Theme:            "dark",
		Categories:       []string{"bebidas", "snacks"},
		SelectedCategory: "bebidas",
		SelectedSort:     "asc",
		Grid:             GridView{},
	}))
	out := b.String()

	assert.Contains(t, out, `data-theme="dark"`)
	assert.NotContains(t, out, `class="modal-open"`)
	assert.NotContains(t, out, `id="product-modal"`)
	assert.Contains(t, out, `<option value="bebidas" selected>`)
	assert.Contains(t, out, `<option value="asc" selected>`)
}

func TestStorefrontURL(t *testing.T) {
	assert.Equal(t, "/", storefrontURL("all", "default", 0))
	assert.Equal(t, "/?category=bebidas&sort=asc", storefrontURL("bebidas", "asc", 0))
	assert.Equal(t, "/?product=7", storefrontURL("all", "default", 7))
}
