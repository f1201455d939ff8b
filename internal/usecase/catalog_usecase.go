package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

type CatalogUseCase interface {
	ListProducts(filter domain.PriceFilter) []domain.Product
	GetProductByID(id int) (*domain.Product, error)
}

type catalogUseCase struct {
	catalogRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCatalogUseCase(repo domain.ProductRepository, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: repo,
		log:         logger,
	}
}

func (uc *catalogUseCase) ListProducts(filter domain.PriceFilter) []domain.Product {
	products := uc.catalogRepo.ListProducts(filter)
	uc.log.Debugf("Use Case: Listed %d products", len(products))
	return products
}

func (uc *catalogUseCase) GetProductByID(id int) (*domain.Product, error) {
	product, err := uc.catalogRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Product lookup failed for ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}
