package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// CartItemStatus reports the outcome of a single cart mutation.
type CartItemStatus struct {
	ProductID int
	Quantity  int
	ItemCount int
}

type CartUseCase interface {
	GetCart(ctx context.Context, userID string) (*domain.CartView, error)
	AddItem(ctx context.Context, userID string, productID, quantity int) (*CartItemStatus, error)
	UpdateItem(ctx context.Context, userID string, productID, quantity int) (*CartItemStatus, error)
	RemoveItem(ctx context.Context, userID string, productID int) (*CartItemStatus, error)
	ClearCart(ctx context.Context, userID string) error
}

type cartUseCase struct {
	cartStore   domain.CartStore
	catalogRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCartUseCase(store domain.CartStore, repo domain.ProductRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartStore:   store,
		catalogRepo: repo,
		log:         logger,
	}
}

// GetCart joins raw quantities against the catalog, producing display-ready
// lines and a summary. A line whose product is missing from the catalog is
// skipped with a warning rather than failing the whole request; with the
// static catalog this path is unreachable in practice.
func (uc *cartUseCase) GetCart(ctx context.Context, userID string) (*domain.CartView, error) {
	cart, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to load cart for user %s: %v", userID, err)
		return nil, err
	}

	view := &domain.CartView{Items: make([]domain.CartLine, 0, len(cart))}
	for productID, quantity := range cart {
		product, err := uc.catalogRepo.GetProductByID(productID)
		if err != nil {
			uc.log.Warnf("Use Case: Cart for user %s references unknown product %d, skipping", userID, productID)
			continue
		}
		view.Items = append(view.Items, domain.CartLine{
			ProductID:   product.ID,
			Name:        product.Name,
			Price:       product.Price,
			Image:       product.Image,
			Description: product.Description,
			Quantity:    quantity,
			Subtotal:    product.Price * quantity,
		})
	}

	// Stable output for clients; iteration order is not part of the contract.
	sort.Slice(view.Items, func(i, j int) bool {
		return view.Items[i].ProductID < view.Items[j].ProductID
	})
	for _, line := range view.Items {
		view.Summary.ItemCount += line.Quantity
		view.Summary.Total += line.Subtotal
	}
	return view, nil
}

func (uc *cartUseCase) AddItem(ctx context.Context, userID string, productID, quantity int) (*CartItemStatus, error) {
	if _, err := uc.catalogRepo.GetProductByID(productID); err != nil {
		uc.log.Warnf("Use Case: Add rejected for user %s, product %d not in catalog", userID, productID)
		return nil, err
	}

	stored, err := uc.cartStore.Add(ctx, userID, productID, quantity)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to add product %d for user %s: %v", productID, userID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: User %s added product %d, stored quantity %d", userID, productID, stored)
	return uc.itemStatus(ctx, userID, productID, stored)
}

func (uc *cartUseCase) UpdateItem(ctx context.Context, userID string, productID, quantity int) (*CartItemStatus, error) {
	if _, err := uc.catalogRepo.GetProductByID(productID); err != nil {
		uc.log.Warnf("Use Case: Update rejected for user %s, product %d not in catalog", userID, productID)
		return nil, err
	}

	if err := uc.cartStore.SetQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, domain.ErrItemNotInCart) {
			uc.log.Warnf("Use Case: Update rejected for user %s, product %d not in cart", userID, productID)
			return nil, domain.NotFound("Product %d not found in cart", productID)
		}
		uc.log.Errorf("Use Case: Failed to update product %d for user %s: %v", productID, userID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: User %s set product %d quantity to %d", userID, productID, quantity)
	return uc.itemStatus(ctx, userID, productID, quantity)
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, userID string, productID int) (*CartItemStatus, error) {
	if err := uc.cartStore.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, domain.ErrItemNotInCart) {
			uc.log.Warnf("Use Case: Remove rejected for user %s, product %d not in cart", userID, productID)
			return nil, domain.NotFound("Product %d not found in cart", productID)
		}
		uc.log.Errorf("Use Case: Failed to remove product %d for user %s: %v", productID, userID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: User %s removed product %d", userID, productID)
	return uc.itemStatus(ctx, userID, productID, 0)
}

func (uc *cartUseCase) ClearCart(ctx context.Context, userID string) error {
	if err := uc.cartStore.Clear(ctx, userID); err != nil {
		uc.log.Errorf("Use Case: Failed to clear cart for user %s: %v", userID, err)
		return err
	}
	uc.log.Infof("Use Case: User %s cleared cart", userID)
	return nil
}

func (uc *cartUseCase) itemStatus(ctx context.Context, userID string, productID, quantity int) (*CartItemStatus, error) {
	count, err := uc.cartStore.Count(ctx, userID)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to count cart for user %s: %v", userID, err)
		return nil, err
	}
	return &CartItemStatus{ProductID: productID, Quantity: quantity, ItemCount: count}, nil
}
