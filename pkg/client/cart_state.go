package client

import (
	"sync"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// CartState is a local cart held entirely in client memory, the alternate
// mode where the consumer, not the server, is the source of truth for cart
// contents. It never talks to the network.
type CartState struct {
	mu    sync.Mutex
	items []CartStateItem
}

// CartStateItem pairs a catalog product with its chosen quantity.
type CartStateItem struct {
	Product  domain.Product
	Quantity int
}

func NewCartState() *CartState {
	return &CartState{}
}

// Add puts a product in the cart at quantity 1, or increments an existing
// line capped at the max quantity.
func (s *CartState) Add(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			if s.items[i].Quantity < domain.MaxQuantity {
				s.items[i].Quantity++
			}
			return
		}
	}
	s.items = append(s.items, CartStateItem{Product: product, Quantity: 1})
}

// Remove drops the line for productID. Removing an absent product is a no-op.
func (s *CartState) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// SetQuantity overwrites a line's quantity. The update applies only when the
// line exists and the quantity is within [1, MaxQuantity]; anything else is
// ignored, matching the interactive controls it backs.
func (s *CartState) SetQuantity(productID, quantity int) {
	if quantity < 1 || quantity > domain.MaxQuantity {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a snapshot of the cart lines in insertion order.
func (s *CartState) Items() []CartStateItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]CartStateItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Summary totals the cart the same way the server-side enrichment does.
func (s *CartState) Summary() domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary domain.CartSummary
	for _, item := range s.items {
		summary.ItemCount += item.Quantity
		summary.Total += item.Product.Price * item.Quantity
	}
	return summary
}
