package router

import (
	"net/http"
	"strings"

	"almacen-catalogo/app/controller"
)

type Controllers struct {
	Storefront *controller.StorefrontController
	Catalog    *controller.CatalogController
	Image      *controller.ImageController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Storefront page (also matches the site root catch-all)
	http.HandleFunc("/", controllers.Storefront.Storefront)

	// Theme toggle
	http.HandleFunc("/theme/toggle", controllers.Storefront.ToggleTheme)

	// Catalog as JSON
	http.HandleFunc("/products", controllers.Catalog.ListProducts)

	// Optimized product images
	http.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Image.GetProductImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Catalog export (html, pdf, png)
	http.HandleFunc("/admin/catalog/export", controllers.Catalog.Export)

	// Drive photo sync
	http.HandleFunc("/admin/images/sync", controllers.Image.SyncImages)

	// Static assets (stylesheet, product photos)
	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
}
