package domain

// Product is a single catalog record. The catalog is seeded at startup and
// never mutated, so Product values are safe to share across requests.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// PriceFilter restricts a catalog listing. A nil bound leaves that side open.
type PriceFilter struct {
	MinPrice *int
	MaxPrice *int
}

// Matches reports whether p falls inside the filter bounds.
func (f PriceFilter) Matches(p Product) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

type ProductRepository interface {
	ListProducts(filter PriceFilter) []Product
	GetProductByID(id int) (*Product, error)
}
