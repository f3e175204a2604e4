package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"almacen-catalogo/models"
)

// CatalogFileRepository loads the product catalog from a JSON file on disk.
type CatalogFileRepository struct {
	path string
}

// NewCatalogFileRepository creates a new CatalogFileRepository
func NewCatalogFileRepository(path string) *CatalogFileRepository {
	return &CatalogFileRepository{path: path}
}

// Ensure CatalogFileRepository implements CatalogSourceInterface
var _ CatalogSourceInterface = (*CatalogFileRepository)(nil)

// LoadProducts reads and decodes the product list from the configured file.
func (r *CatalogFileRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", r.path, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", r.path, err)
	}

	log.Printf("✓ Loaded %d products from %s", len(products), r.path)
	return products, nil
}
