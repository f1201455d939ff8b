package repository

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// MemoryCartStore keeps carts in a process-local map guarded by a mutex.
// Each operation runs as one critical section, so concurrent requests for
// the same user cannot interleave mid-mutation. State lives for the process
// lifetime only.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]map[int]int
	log   *logrus.Logger
}

func NewMemoryCartStore(logger *logrus.Logger) *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]map[int]int),
		log:   logger,
	}
}

// cart returns the live mapping for userID, materializing an empty one for
// an unseen user. Callers must hold s.mu.
func (s *MemoryCartStore) cart(userID string) map[int]int {
	cart, ok := s.carts[userID]
	if !ok {
		cart = make(map[int]int)
		s.carts[userID] = cart
	}
	return cart
}

func (s *MemoryCartStore) Get(_ context.Context, userID string) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[int]int)
	for productID, quantity := range s.cart(userID) {
		snapshot[productID] = quantity
	}
	return snapshot, nil
}

func (s *MemoryCartStore) Add(_ context.Context, userID string, productID, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	if existing, ok := cart[productID]; ok {
		quantity = existing + quantity
		if quantity > domain.MaxQuantity {
			quantity = domain.MaxQuantity
		}
	}
	cart[productID] = quantity
	s.log.Debugf("Cart store: user=%s product=%d quantity=%d after add", userID, productID, quantity)
	return quantity, nil
}

func (s *MemoryCartStore) SetQuantity(_ context.Context, userID string, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	if _, ok := cart[productID]; !ok {
		return domain.ErrItemNotInCart
	}
	cart[productID] = quantity
	return nil
}

func (s *MemoryCartStore) Remove(_ context.Context, userID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	if _, ok := cart[productID]; !ok {
		return domain.ErrItemNotInCart
	}
	delete(cart, productID)
	return nil
}

func (s *MemoryCartStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = make(map[int]int)
	return nil
}

func (s *MemoryCartStore) Count(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, quantity := range s.cart(userID) {
		total += quantity
	}
	return total, nil
}
