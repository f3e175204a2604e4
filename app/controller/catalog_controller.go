package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"almacen-catalogo/filtering"
	"almacen-catalogo/service"
	"almacen-catalogo/view"
)

// CatalogController serves the catalog as JSON and as shareable exports
type CatalogController struct {
	store         *service.CatalogStore
	render        *service.RenderService
	exportService *service.ExportService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(store *service.CatalogStore, render *service.RenderService, exportService *service.ExportService) *CatalogController {
	return &CatalogController{
		store:         store,
		render:        render,
		exportService: exportService,
	}
}

// validExportFormats is a map of valid format values
var validExportFormats = map[string]bool{
	"html": true,
	"pdf":  true,
	"png":  true,
}

// ListProducts handles GET /products?category=&sort=
// Returns the filtered, sorted catalog as JSON.
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := c.store.Err(); err != nil {
		log.Printf("❌ ListProducts: catalog unavailable: %v", err)
		http.Error(w, "Catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = filtering.CategoryAll
	}
	sortMode := filtering.ParseSortMode(r.URL.Query().Get("sort"))

	products := filtering.Apply(c.store.All(), category, sortMode)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(products); err != nil {
		log.Printf("❌ ListProducts: failed to encode response: %v", err)
	}
}

// Export handles GET /admin/catalog/export?format=html|pdf|png
// Produces a shareable rendition of the full storefront.
func (c *CatalogController) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		http.Error(w, "format parameter is required. Valid formats: html, pdf, png", http.StatusBadRequest)
		return
	}
	if !validExportFormats[format] {
		log.Printf("❌ Export: invalid format: %s", format)
		http.Error(w, "Invalid format. Valid formats: html, pdf, png", http.StatusBadRequest)
		return
	}

	log.Printf("📤 Export: format=%s", format)

	switch format {
	case "html":
		products := c.store.All()
		data := service.PageData{
			Theme:            view.ThemeLight,
			Categories:       c.store.Categories(),
			SelectedCategory: filtering.CategoryAll,
			SelectedSort:     filtering.SortDefault.String(),
			Grid:             c.render.BuildGrid(products, c.store.Err() != nil, filtering.CategoryAll, filtering.SortDefault.String()),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := c.render.RenderPage(w, data); err != nil {
			log.Printf("❌ Export: failed to render HTML: %v", err)
		}

	case "pdf":
		pdf, err := c.exportService.GeneratePDF(r.Context())
		if err != nil {
			log.Printf("❌ Export: PDF generation failed: %v", err)
			http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="catalogo.pdf"`)
		w.Write(pdf)

	case "png":
		png, err := c.exportService.GeneratePNG(r.Context())
		if err != nil {
			log.Printf("❌ Export: PNG generation failed: %v", err)
			http.Error(w, fmt.Sprintf("Failed to generate PNG: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="catalogo.png"`)
		w.Write(png)
	}
}
