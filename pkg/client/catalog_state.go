package client

import (
	"context"
	"sync"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// LoadStatus tracks the lifecycle of an async catalog fetch.
type LoadStatus int

const (
	StatusIdle LoadStatus = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

// CatalogState holds the product list fetched from the API together with
// its loading/error state. Load is typically called once when the consumer
// starts; concurrent loads are not de-duplicated and the last one to finish
// wins.
type CatalogState struct {
	mu       sync.Mutex
	status   LoadStatus
	products []domain.Product
	loadErr  string
}

func NewCatalogState() *CatalogState {
	return &CatalogState{}
}

// Load fetches the full catalog through api, transitioning Idle/Loading ->
// Succeeded or Failed. The returned error is also retained in the state.
func (s *CatalogState) Load(ctx context.Context, api *Client) error {
	s.mu.Lock()
	s.status = StatusLoading
	s.loadErr = ""
	s.mu.Unlock()

	products, err := api.Products(ctx, domain.PriceFilter{})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.loadErr = err.Error()
		return err
	}
	s.status = StatusSucceeded
	s.products = products
	return nil
}

func (s *CatalogState) Status() LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the message of the last failed load, empty otherwise.
func (s *CatalogState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Products returns the last successfully loaded catalog.
func (s *CatalogState) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}
