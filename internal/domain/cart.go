package domain

import "context"

// MaxQuantity is the ceiling for a single cart line. Adds are capped here
// rather than rejected; updates beyond it fail validation upstream.
const MaxQuantity = 99

// DefaultUserID is used when the caller does not identify itself.
const DefaultUserID = "default-user"

// CartLine is one cart entry joined against its catalog product.
type CartLine struct {
	ProductID   int    `json:"productId"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Subtotal    int    `json:"subtotal"`
}

// CartSummary aggregates a cart for display.
type CartSummary struct {
	ItemCount int `json:"itemCount"`
	Total     int `json:"total"`
}

// CartView is the enriched cart returned by GET /api/cart.
type CartView struct {
	Items   []CartLine  `json:"items"`
	Summary CartSummary `json:"summary"`
}

// CartStore holds per-user carts keyed by an opaque user id. Implementations
// must be safe for concurrent use; quantities stay within [1, MaxQuantity].
type CartStore interface {
	// Get returns the productID -> quantity mapping for userID, materializing
	// an empty cart for an unseen user.
	Get(ctx context.Context, userID string) (map[int]int, error)

	// Add merges quantity into an existing line capped at MaxQuantity, or
	// creates the line. It returns the stored quantity.
	Add(ctx context.Context, userID string, productID, quantity int) (int, error)

	// SetQuantity overwrites the quantity of an existing line. It returns
	// ErrItemNotInCart when the product has no line.
	SetQuantity(ctx context.Context, userID string, productID, quantity int) error

	// Remove deletes a line. It returns ErrItemNotInCart when absent.
	Remove(ctx context.Context, userID string, productID int) error

	// Clear empties the user's cart. Clearing an unseen user is a no-op.
	Clear(ctx context.Context, userID string) error

	// Count returns the sum of all quantities in the user's cart.
	Count(ctx context.Context, userID string) (int, error)
}
