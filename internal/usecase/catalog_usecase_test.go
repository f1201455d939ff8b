package usecase

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
	"github.com/cherry-12345/naksh-jewels/internal/repository"
)

func newCatalogUseCase(t *testing.T) CatalogUseCase {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCatalogUseCase(repository.NewStaticCatalogRepository(logger), logger)
}

func TestListProducts_AppliesBounds(t *testing.T) {
	uc := newCatalogUseCase(t)

	min, max := 5000, 15000
	products := uc.ListProducts(domain.PriceFilter{MinPrice: &min, MaxPrice: &max})
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, min)
		assert.LessOrEqual(t, p.Price, max)
	}

	assert.Len(t, uc.ListProducts(domain.PriceFilter{}), 8)
}

func TestGetProductByID_Boundaries(t *testing.T) {
	uc := newCatalogUseCase(t)

	product, err := uc.GetProductByID(8)
	require.NoError(t, err)
	assert.Equal(t, "Ruby Studded Maang Tikka", product.Name)

	_, err = uc.GetProductByID(0)
	assert.Equal(t, domain.KindNotFound, domain.AsAppError(err).Kind)
}
