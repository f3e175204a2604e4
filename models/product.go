package models

// Product represents a single sellable item in the catalog
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Weight      string `json:"weight"`
	Price       int64  `json:"price"`
	PromoPrice  int64  `json:"promo_price,omitempty"`
	Image       string `json:"image"`
}

// HasPromo reports whether the product carries a "2 x" bundle price.
// A promo price of 0 means no promotion (the field is absent in the source data).
func (p Product) HasPromo() bool {
	return p.PromoPrice > 0
}
