package filtering

import (
	"sort"

	"almacen-catalogo/models"
)

// CategoryAll is the selector value that matches every category.
const CategoryAll = "all"

// SortMode determines how a filtered result is ordered.
type SortMode int

const (
	// SortDefault preserves the catalog's load-time order.
	SortDefault SortMode = iota
	// SortPriceAsc orders by unit price, lowest first.
	SortPriceAsc
	// SortPriceDesc orders by unit price, highest first.
	SortPriceDesc
)

// ParseSortMode maps the storefront's sort selector values to a SortMode.
// Unknown values fall back to the default order.
func ParseSortMode(value string) SortMode {
	switch value {
	case "asc":
		return SortPriceAsc
	case "desc":
		return SortPriceDesc
	default:
		return SortDefault
	}
}

// String returns the selector value for the mode.
func (m SortMode) String() string {
	switch m {
	case SortPriceAsc:
		return "asc"
	case SortPriceDesc:
		return "desc"
	default:
		return "default"
	}
}

// Apply filters the catalog by category and orders the result by the given
// sort mode. The category must match exactly, except for CategoryAll which
// keeps every product. Products with equal prices keep their prior relative
// order. The input slice is never mutated; Apply always returns a new slice.
func Apply(products []models.Product, category string, mode SortMode) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category == CategoryAll || p.Category == category {
			filtered = append(filtered, p)
		}
	}

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	return filtered
}
