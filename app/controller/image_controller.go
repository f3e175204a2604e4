package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"almacen-catalogo/service"
)

// ImageController serves optimized product images and the Drive photo sync
type ImageController struct {
	store         *service.CatalogStore
	syncService   *service.ImageSyncService
	driveFolderID string
}

// NewImageController creates a new ImageController
// syncService may be nil when Drive credentials are not configured.
func NewImageController(store *service.CatalogStore, syncService *service.ImageSyncService, driveFolderID string) *ImageController {
	return &ImageController{
		store:         store,
		syncService:   syncService,
		driveFolderID: driveFolderID,
	}
}

// validImageSizes is a map of valid size values
var validImageSizes = map[string]bool{
	"thumb":  true,
	"medium": true,
}

// GetProductImage handles GET /products/{id}/image?size=thumb|medium
// Resolves the product's image reference and serves an optimized JPEG.
func (c *ImageController) GetProductImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/products/"), "/image")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}
	if !validImageSizes[size] {
		http.Error(w, "Invalid size. Valid sizes: thumb, medium", http.StatusBadRequest)
		return
	}

	product, ok := c.store.ByID(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	// Remote image references are passed through untouched.
	if strings.HasPrefix(product.Image, "http://") || strings.HasPrefix(product.Image, "https://") {
		http.Redirect(w, r, product.Image, http.StatusFound)
		return
	}

	sourcePath := strings.TrimPrefix(product.Image, "/")
	data, err := service.OptimizedProductImage(id, sourcePath, size)
	if err != nil {
		log.Printf("❌ GetProductImage: product=%d size=%s: %v", id, size, err)
		http.Error(w, "Image not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}

// SyncImages handles POST /admin/images/sync?folderId=
// Pulls new product photos from the shop's Drive folder into static/images.
func (c *ImageController) SyncImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.syncService == nil {
		http.Error(w, "Image sync is not configured", http.StatusServiceUnavailable)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		folderID = c.driveFolderID
	}
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	downloaded, skipped, total, err := c.syncService.SyncImages(folderID)
	if err != nil {
		log.Printf("❌ SyncImages: %v", err)
		http.Error(w, "Failed to sync images", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"downloaded": downloaded,
		"skipped":    skipped,
		"total":      total,
	})
}
