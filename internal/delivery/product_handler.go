package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
	"github.com/cherry-12345/naksh-jewels/internal/usecase"
)

type ProductHandler struct {
	useCase usecase.CatalogUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.CatalogUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
	}
}

// ListProducts returns the catalog, optionally restricted to a price range
// via minPrice/maxPrice query parameters. Unparseable bounds are ignored.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filter domain.PriceFilter
	if raw := c.Query("minPrice"); raw != "" {
		if min, err := strconv.Atoi(raw); err == nil {
			filter.MinPrice = &min
		} else {
			h.log.Warnf("Ignoring invalid minPrice parameter %q", raw)
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if max, err := strconv.Atoi(raw); err == nil {
			filter.MaxPrice = &max
		} else {
			h.log.Warnf("Ignoring invalid maxPrice parameter %q", raw)
		}
	}

	products := h.useCase.ListProducts(filter)
	ListResponse(c, len(products), products)
}

// GetProductByID responds 404 for non-numeric, non-positive, and unknown
// ids alike; a malformed id names no product.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		ErrorResponse(c, h.log, domain.NotFound("Product with ID %s not found", idStr))
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "", product)
}
