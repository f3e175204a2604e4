package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"almacen-catalogo/models"
)

// CatalogURLRepository fetches the product catalog from a remote JSON
// resource. The fetch happens once; a network error or non-2xx status is
// terminal for the session.
type CatalogURLRepository struct {
	url    string
	client *http.Client
}

// NewCatalogURLRepository creates a new CatalogURLRepository
func NewCatalogURLRepository(url string) *CatalogURLRepository {
	return &CatalogURLRepository{
		url:    url,
		client: http.DefaultClient,
	}
}

// Ensure CatalogURLRepository implements CatalogSourceInterface
var _ CatalogSourceInterface = (*CatalogURLRepository)(nil)

// LoadProducts fetches and decodes the product list from the configured URL.
func (r *CatalogURLRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog from %s: %w", r.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog endpoint %s returned status %d", r.url, resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	log.Printf("✓ Loaded %d products from %s", len(products), r.url)
	return products, nil
}
