package service

import (
	"context"
	"log"

	"almacen-catalogo/models"
	"almacen-catalogo/repository"
)

// CatalogStore owns the product catalog for the lifetime of the process.
// It is populated exactly once by Load and read-only afterwards, so reads
// need no locking. A failed load is terminal: the store stays empty and
// records the error for the storefront to surface.
type CatalogStore struct {
	source     repository.CatalogSourceInterface
	products   []models.Product
	byID       map[int]models.Product
	categories []string
	loaded     bool
	loadErr    error
}

// NewCatalogStore creates a new CatalogStore
func NewCatalogStore(source repository.CatalogSourceInterface) *CatalogStore {
	return &CatalogStore{source: source}
}

// Load populates the store from its source. Calling Load again after a
// successful or failed load is a no-op; there is no retry.
func (s *CatalogStore) Load(ctx context.Context) error {
	if s.loaded {
		return s.loadErr
	}
	s.loaded = true

	products, err := s.source.LoadProducts(ctx)
	if err != nil {
		log.Printf("❌ CatalogStore: failed to load catalog: %v", err)
		s.loadErr = err
		return err
	}

	s.products = products
	s.byID = make(map[int]models.Product, len(products))
	seen := make(map[string]bool)
	for _, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			log.Printf("⚠️  CatalogStore: duplicate product id %d, keeping first occurrence", p.ID)
			continue
		}
		s.byID[p.ID] = p
		if !seen[p.Category] {
			seen[p.Category] = true
			s.categories = append(s.categories, p.Category)
		}
	}

	log.Printf("✓ CatalogStore: %d products, %d categories", len(s.products), len(s.categories))
	return nil
}

// All returns the full catalog in load order. The returned slice is a copy;
// callers may reorder it freely without affecting the store.
func (s *CatalogStore) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID looks up a product by identifier.
func (s *CatalogStore) ByID(id int) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Categories returns the distinct categories in the order they first appear
// in the catalog.
func (s *CatalogStore) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Err returns the terminal load error, or nil if the catalog loaded.
func (s *CatalogStore) Err() error {
	return s.loadErr
}
