package controller

import (
	"log"
	"net/http"
	"strconv"

	"almacen-catalogo/filtering"
	"almacen-catalogo/service"
	"almacen-catalogo/view"
)

// cookieStorage adapts the theme cookie to the view.Storage interface. Reads
// come from the request, writes go out as a Set-Cookie header, so the
// preference is persisted synchronously with the response.
type cookieStorage struct {
	r *http.Request
	w http.ResponseWriter
}

func (c cookieStorage) Get(key string) (string, bool) {
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (c cookieStorage) Set(key, value string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
}

// StorefrontController serves the storefront page and the theme toggle
type StorefrontController struct {
	store  *service.CatalogStore
	render *service.RenderService
}

// NewStorefrontController creates a new StorefrontController
func NewStorefrontController(store *service.CatalogStore, render *service.RenderService) *StorefrontController {
	return &StorefrontController{
		store:  store,
		render: render,
	}
}

// Storefront handles GET /?category=&sort=&product=
// It renders the full page: filter controls, the card grid for the current
// selection criteria, and the detail modal when a product is selected.
func (c *StorefrontController) Storefront(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = filtering.CategoryAll
	}
	sortMode := filtering.ParseSortMode(r.URL.Query().Get("sort"))

	effects := &view.PageState{}
	view.NewThemeManager(cookieStorage{r: r, w: w}, effects)

	modal := view.NewModalController(c.store, effects)
	if raw := r.URL.Query().Get("product"); raw != "" {
		// A bad or stale product reference is ignored, not an error.
		if id, err := strconv.Atoi(raw); err == nil {
			modal.Open(id)
		}
	}

	products := filtering.Apply(c.store.All(), category, sortMode)
	log.Printf("🛒 Storefront: category=%s sort=%s products=%d", category, sortMode, len(products))

	data := service.PageData{
		Theme:            effects.Theme,
		ScrollLocked:     effects.ScrollLocked,
		Categories:       c.store.Categories(),
		SelectedCategory: category,
		SelectedSort:     sortMode.String(),
		Grid:             c.render.BuildGrid(products, c.store.Err() != nil, category, sortMode.String()),
	}
	if p, ok := modal.Current(); ok {
		m := c.render.BuildModal(p, category, sortMode.String())
		data.Modal = &m
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.render.RenderPage(w, data); err != nil {
		log.Printf("❌ Storefront: failed to render page: %v", err)
	}
}

// ToggleTheme handles POST /theme/toggle
// Flips the persisted theme variant and sends the visitor back to where
// they came from.
func (c *StorefrontController) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	manager := view.NewThemeManager(cookieStorage{r: r, w: w}, &view.PageState{})
	next := manager.Toggle()
	log.Printf("🎨 ToggleTheme: theme is now %s", next)

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
