package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"almacen-catalogo/db"
	"almacen-catalogo/models"
)

// CatalogDBRepository loads the product catalog from the products table in
// PostgreSQL. The master product data lives in the database; the storefront
// still treats the result as an immutable snapshot for the session.
type CatalogDBRepository struct{}

// NewCatalogDBRepository creates a new CatalogDBRepository
func NewCatalogDBRepository() *CatalogDBRepository {
	return &CatalogDBRepository{}
}

// Ensure CatalogDBRepository implements CatalogSourceInterface
var _ CatalogSourceInterface = (*CatalogDBRepository)(nil)

// LoadProducts queries all active products ordered by id.
func (r *CatalogDBRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT
			id,
			name,
			COALESCE(description, '') as description,
			category,
			COALESCE(weight, '') as weight,
			price,
			promo_price,
			COALESCE(image, '') as image
		FROM products
		WHERE is_active = true
		ORDER BY id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var promo sql.NullInt64

		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Weight, &p.Price, &promo, &p.Image); err != nil {
			log.Printf("❌ Error scanning product row: %v", err)
			continue
		}

		if promo.Valid {
			p.PromoPrice = promo.Int64
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ Loaded %d products from database", len(products))
	return products, nil
}
