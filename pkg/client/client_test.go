package client

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cherry-12345/naksh-jewels/config"
	"github.com/cherry-12345/naksh-jewels/internal/delivery"
	"github.com/cherry-12345/naksh-jewels/internal/domain"
	"github.com/cherry-12345/naksh-jewels/internal/repository"
	"github.com/cherry-12345/naksh-jewels/internal/usecase"
)

// newTestServer runs the real router behind httptest so the client is
// exercised against the actual HTTP contract.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{Port: "5000", Env: "test", CORSOrigins: []string{"*"}}
	catalogRepo := repository.NewStaticCatalogRepository(logger)
	cartStore := repository.NewMemoryCartStore(logger)
	router := delivery.NewRouter(cfg, logger,
		delivery.NewProductHandler(usecase.NewCatalogUseCase(catalogRepo, logger), logger),
		delivery.NewCartHandler(usecase.NewCartUseCase(cartStore, catalogRepo, logger), logger),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func testClient(t *testing.T, opts ...Option) *Client {
	server := newTestServer(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(server.URL, append([]Option{WithLogger(logger)}, opts...)...)
}

func TestClient_Products(t *testing.T) {
	api := testClient(t)

	products, err := api.Products(context.Background(), domain.PriceFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 8)

	min, max := 5000, 15000
	filtered, err := api.Products(context.Background(), domain.PriceFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.NotEmpty(t, filtered)
	for _, p := range filtered {
		assert.GreaterOrEqual(t, p.Price, min)
		assert.LessOrEqual(t, p.Price, max)
	}
}

func TestClient_ProductNotFound(t *testing.T) {
	api := testClient(t)

	_, err := api.Product(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Contains(t, apiErr.Message, "not found")
}

func TestClient_CartRoundTrip(t *testing.T) {
	api := testClient(t, WithUserID("roundtrip-user"))
	ctx := context.Background()

	status, err := api.AddItem(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Quantity)
	assert.Equal(t, 2, status.ItemCount)

	status, err = api.UpdateItem(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, status.Quantity)

	view, err := api.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, 12499*5, view.Summary.Total)

	status, err = api.RemoveItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, status.ItemCount)

	require.NoError(t, api.ClearCart(ctx))
	view, err = api.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestClient_ValidationErrorsCarryFields(t *testing.T) {
	api := testClient(t)

	_, err := api.AddItem(context.Background(), 1, 0)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	require.NotEmpty(t, apiErr.Fields)
	assert.Equal(t, "quantity", apiErr.Fields[0].Field)
}

func TestClient_Health(t *testing.T) {
	api := testClient(t)
	assert.NoError(t, api.Health(context.Background()))
}
