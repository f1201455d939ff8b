package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

func TestMemoryCartStore_AddMergesAndCaps(t *testing.T) {
	store := NewMemoryCartStore(testLogger())
	ctx := context.Background()

	qty, err := store.Add(ctx, "u1", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qty != 2 {
		t.Errorf("expected quantity 2, got %d", qty)
	}

	qty, _ = store.Add(ctx, "u1", 1, 3)
	if qty != 5 {
		t.Errorf("expected merged quantity 5, got %d", qty)
	}

	qty, _ = store.Add(ctx, "u1", 1, 99)
	if qty != domain.MaxQuantity {
		t.Errorf("expected capped quantity %d, got %d", domain.MaxQuantity, qty)
	}
}

func TestMemoryCartStore_SetQuantity(t *testing.T) {
	store := NewMemoryCartStore(testLogger())
	ctx := context.Background()

	if err := store.SetQuantity(ctx, "u1", 1, 5); !errors.Is(err, domain.ErrItemNotInCart) {
		t.Errorf("expected ErrItemNotInCart, got %v", err)
	}

	store.Add(ctx, "u1", 1, 2)
	if err := store.SetQuantity(ctx, "u1", 1, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, _ := store.Get(ctx, "u1")
	if cart[1] != 7 {
		t.Errorf("expected overwritten quantity 7, got %d", cart[1])
	}
}

func TestMemoryCartStore_RemoveAndClear(t *testing.T) {
	store := NewMemoryCartStore(testLogger())
	ctx := context.Background()

	if err := store.Remove(ctx, "u1", 1); !errors.Is(err, domain.ErrItemNotInCart) {
		t.Errorf("expected ErrItemNotInCart, got %v", err)
	}

	store.Add(ctx, "u1", 1, 2)
	store.Add(ctx, "u1", 2, 3)

	if err := store.Remove(ctx, "u1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, _ := store.Count(ctx, "u1")
	if count != 3 {
		t.Errorf("expected count 3 after remove, got %d", count)
	}

	store.Clear(ctx, "u1")
	cart, _ := store.Get(ctx, "u1")
	if len(cart) != 0 {
		t.Errorf("expected empty cart after clear, got %v", cart)
	}
}

func TestMemoryCartStore_UsersAreIsolated(t *testing.T) {
	store := NewMemoryCartStore(testLogger())
	ctx := context.Background()

	store.Add(ctx, "alice", 1, 5)
	store.Add(ctx, "bob", 2, 1)

	aliceCart, _ := store.Get(ctx, "alice")
	bobCart, _ := store.Get(ctx, "bob")

	if len(aliceCart) != 1 || aliceCart[1] != 5 {
		t.Errorf("unexpected alice cart: %v", aliceCart)
	}
	if len(bobCart) != 1 || bobCart[2] != 1 {
		t.Errorf("unexpected bob cart: %v", bobCart)
	}
}

func TestMemoryCartStore_GetReturnsSnapshot(t *testing.T) {
	store := NewMemoryCartStore(testLogger())
	ctx := context.Background()

	store.Add(ctx, "u1", 1, 2)
	cart, _ := store.Get(ctx, "u1")
	cart[1] = 42

	fresh, _ := store.Get(ctx, "u1")
	if fresh[1] != 2 {
		t.Errorf("store mutated through snapshot: got %d", fresh[1])
	}
}

func TestMemoryCartStore_ConcurrentAdds(t *testing.T) {
	store := NewMemoryCartStore(testLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(ctx, "u1", 1, 1)
		}()
	}
	wg.Wait()

	cart, _ := store.Get(ctx, "u1")
	if cart[1] != 50 {
		t.Errorf("expected quantity 50 after concurrent adds, got %d", cart[1])
	}
}
