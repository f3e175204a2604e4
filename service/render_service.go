package service

import (
	"fmt"
	"html/template"
	"io"
	"net/url"

	"almacen-catalogo/models"
	"almacen-catalogo/utils"
)

// RenderService projects products into storefront markup: the card grid,
// the detail modal, and the full page. Every render replaces the previous
// output completely; there is no incremental diffing.
type RenderService struct {
	storeName string
	phone     string
}

// NewRenderService creates a new RenderService
func NewRenderService(storeName, phone string) *RenderService {
	return &RenderService{
		storeName: storeName,
		phone:     phone,
	}
}

// CardView is the template data for one grid card.
type CardView struct {
	ID          int
	Name        string
	Description string
	Category    string
	Weight      string
	ImageURL    string
	Price       string
	Promo       string
	OrderLink   template.URL
	DetailURL   string
}

// ModalView is the template data for the detail overlay.
type ModalView struct {
	ID          int
	Name        string
	Description string
	Category    string
	Weight      string
	ImageURL    string
	Price       string
	Promo       string
	OrderLink   template.URL
	CloseURL    string
}

// GridView is the template data for the grid area. LoadError takes
// precedence over the empty state: a failed catalog fetch shows the reload
// message, an empty filter result shows the no-results placeholder.
type GridView struct {
	LoadError bool
	Cards     []CardView
}

// PageData is the template data for the whole storefront page.
type PageData struct {
	StoreName        string
	Theme            string
	ScrollLocked     bool
	Categories       []string
	SelectedCategory string
	SelectedSort     string
	Grid             GridView
	Modal            *ModalView
}

// BuildCard prepares the card view for a product. The detail URL carries the
// current selection criteria so closing the modal returns to the same view.
func (s *RenderService) BuildCard(p models.Product, category, sortMode string) CardView {
	card := CardView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Weight:      p.Weight,
		ImageURL:    fmt.Sprintf("/products/%d/image?size=thumb", p.ID),
		Price:       utils.FormatARS(p.Price),
		OrderLink:   template.URL(utils.OrderLink(s.phone, p.Name)),
		DetailURL:   storefrontURL(category, sortMode, p.ID),
	}
	if p.HasPromo() {
		card.Promo = utils.FormatARS(p.PromoPrice)
	}
	return card
}

// BuildModal prepares the overlay view for a product.
func (s *RenderService) BuildModal(p models.Product, category, sortMode string) ModalView {
	modal := ModalView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Weight:      p.Weight,
		ImageURL:    fmt.Sprintf("/products/%d/image?size=medium", p.ID),
		Price:       utils.FormatARS(p.Price),
		OrderLink:   template.URL(utils.OrderLink(s.phone, p.Name)),
		CloseURL:    storefrontURL(category, sortMode, 0),
	}
	if p.HasPromo() {
		modal.Promo = utils.FormatARS(p.PromoPrice)
	}
	return modal
}

// BuildGrid prepares the grid view for an ordered product sequence.
func (s *RenderService) BuildGrid(products []models.Product, loadError bool, category, sortMode string) GridView {
	grid := GridView{LoadError: loadError}
	for _, p := range products {
		grid.Cards = append(grid.Cards, s.BuildCard(p, category, sortMode))
	}
	return grid
}

// RenderGrid writes the grid area markup for an ordered product sequence.
func (s *RenderService) RenderGrid(w io.Writer, products []models.Product, loadError bool, category, sortMode string) error {
	grid := s.BuildGrid(products, loadError, category, sortMode)
	if err := storefrontTmpl.ExecuteTemplate(w, "grid", grid); err != nil {
		return fmt.Errorf("failed to render grid: %w", err)
	}
	return nil
}

// RenderPage writes the complete storefront page.
func (s *RenderService) RenderPage(w io.Writer, data PageData) error {
	if data.StoreName == "" {
		data.StoreName = s.storeName
	}
	if err := storefrontTmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// storefrontURL builds the storefront URL for the given selection criteria,
// optionally pointing at an open product detail (productID > 0).
func storefrontURL(category, sortMode string, productID int) string {
	q := url.Values{}
	if category != "" && category != "all" {
		q.Set("category", category)
	}
	if sortMode != "" && sortMode != "default" {
		q.Set("sort", sortMode)
	}
	if productID > 0 {
		q.Set("product", fmt.Sprintf("%d", productID))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

var storefrontTmpl = template.Must(template.New("storefront").Parse(storefrontHTML))

const storefrontHTML = `
{{define "card"}}
<div class="product-card">
    <div class="card-image">
        <a href="{{.DetailURL}}"><img src="{{.ImageURL}}" alt="{{.Name}}" loading="lazy"></a>
        {{if .Promo}}<div class="promo-badge">2 x {{.Promo}}</div>{{end}}
    </div>
    <div class="card-content">
        <div class="card-meta">
            <span class="category-tag">{{.Category}}</span>
            <span class="product-weight">{{.Weight}}</span>
        </div>
        <h3 class="product-title">{{.Name}}</h3>
        <p class="product-desc">{{.Description}}</p>
        <div class="card-footer">
            <span class="price">{{.Price}}</span>
            <a href="{{.OrderLink}}" target="_blank" rel="noopener" class="btn-add">Pedir</a>
        </div>
    </div>
</div>
{{end}}

{{define "grid"}}
<div id="product-grid" class="product-grid">
{{- if .LoadError}}
    <p class="error">Error al cargar los productos. Por favor recarga la página.</p>
{{- else if not .Cards}}
    <p class="no-results">No se encontraron productos.</p>
{{- else}}
{{- range .Cards}}{{template "card" .}}{{end}}
{{- end}}
</div>
{{end}}

{{define "modal"}}
<div id="product-modal" class="modal">
    <a class="modal-backdrop" href="{{.CloseURL}}" aria-label="Cerrar"></a>
    <div class="modal-content">
        <a class="close-modal" href="{{.CloseURL}}">&times;</a>
        <img id="modal-img" src="{{.ImageURL}}" alt="{{.Name}}">
        <div class="modal-info">
            <h2 id="modal-title">{{.Name}}</h2>
            <div class="modal-meta">
                <span id="modal-category" class="category-tag">{{.Category}}</span>
                <span id="modal-weight" class="product-weight">{{.Weight}}</span>
            </div>
            <p id="modal-desc">{{.Description}}</p>
            <p id="modal-price" class="price">{{.Price}}{{if .Promo}}<br><span class="modal-promo">Promoción: 2 x {{.Promo}}</span>{{end}}</p>
            <a id="modal-btn" href="{{.OrderLink}}" target="_blank" rel="noopener" class="btn-add">Pedir</a>
        </div>
    </div>
</div>
{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="es" data-theme="{{.Theme}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.StoreName}}</title>
    <link rel="stylesheet" href="/static/styles.css">
</head>
<body{{if .ScrollLocked}} class="modal-open"{{end}}>
    <header class="site-header">
        <h1>{{.StoreName}}</h1>
        <form method="POST" action="/theme/toggle" class="theme-form">
            <button id="theme-toggle" type="submit" title="Cambiar tema">{{if eq .Theme "dark"}}☀️{{else}}🌙{{end}}</button>
        </form>
    </header>
    <main>
        <form id="filters" method="GET" action="/" class="filters">
            <select id="category-filter" name="category" onchange="this.form.submit()">
                <option value="all"{{if eq .SelectedCategory "all"}} selected{{end}}>Todas las categorías</option>
                {{- range .Categories}}
                <option value="{{.}}"{{if eq . $.SelectedCategory}} selected{{end}}>{{.}}</option>
                {{- end}}
            </select>
            <select id="price-sort" name="sort" onchange="this.form.submit()">
                <option value="default"{{if eq .SelectedSort "default"}} selected{{end}}>Orden original</option>
                <option value="asc"{{if eq .SelectedSort "asc"}} selected{{end}}>Precio: menor a mayor</option>
                <option value="desc"{{if eq .SelectedSort "desc"}} selected{{end}}>Precio: mayor a menor</option>
            </select>
            <noscript><button type="submit">Aplicar</button></noscript>
        </form>
        {{template "grid" .Grid}}
    </main>
    {{with .Modal}}{{template "modal" .}}{{end}}
</body>
</html>
{{end}}
`
