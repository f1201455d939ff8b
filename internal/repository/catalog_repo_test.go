package repository

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func intPtr(n int) *int { return &n }

func TestListProducts_ReturnsFullCatalogInOrder(t *testing.T) {
	repo := NewStaticCatalogRepository(testLogger())

	products := repo.ListProducts(domain.PriceFilter{})

	require.Len(t, products, 8)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Image)
		assert.NotEmpty(t, p.Description)
		assert.GreaterOrEqual(t, p.Price, 0)
	}
}

func TestListProducts_PriceFilter(t *testing.T) {
	repo := NewStaticCatalogRepository(testLogger())

	tests := []struct {
		name   string
		filter domain.PriceFilter
		want   []int
	}{
		{"both bounds", domain.PriceFilter{MinPrice: intPtr(5000), MaxPrice: intPtr(15000)}, []int{1, 5, 8}},
		{"min only", domain.PriceFilter{MinPrice: intPtr(15000)}, []int{3, 6}},
		{"max only", domain.PriceFilter{MaxPrice: intPtr(3000)}, []int{2, 7}},
		{"empty range", domain.PriceFilter{MinPrice: intPtr(50000)}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := repo.ListProducts(tt.filter)
			ids := make([]int, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestGetProductByID(t *testing.T) {
	repo := NewStaticCatalogRepository(testLogger())

	product, err := repo.GetProductByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Diamond Solitaire Ring", product.Name)
	assert.Equal(t, 34999, product.Price)

	for _, id := range []int{0, -1, 9, 999} {
		_, err := repo.GetProductByID(id)
		require.Error(t, err, "id %d", id)
		assert.Equal(t, domain.KindNotFound, domain.AsAppError(err).Kind)
	}
}
