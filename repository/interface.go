package repository

import (
	"context"

	"almacen-catalogo/models"
)

// CatalogSourceInterface defines the contract for the one-time catalog load.
// The catalog is fetched exactly once at startup; sources do not watch for
// changes or retry on failure.
type CatalogSourceInterface interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
}
