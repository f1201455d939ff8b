package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
	"github.com/cherry-12345/naksh-jewels/internal/middleware"
	"github.com/cherry-12345/naksh-jewels/internal/usecase"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("", h.AddItem)
		cart.PUT("/:productId", h.UpdateItem)
		cart.DELETE("/:productId", h.RemoveItem)
		cart.DELETE("", h.ClearCart)
	}
}

type cartItemPayload struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity,omitempty"`
	ItemCount int `json:"itemCount"`
}

func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.useCase.GetCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "", view)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	values, err := parseBody(c)
	if err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	if failures := validate(values, addToCartRules); len(failures) > 0 {
		ErrorResponse(c, h.log, domain.ValidationFailed(failures))
		return
	}

	productID, _ := intValue(values["productId"])
	quantity, _ := intValue(values["quantity"])

	status, err := h.useCase.AddItem(c.Request.Context(), middleware.UserID(c), productID, quantity)
	if err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Item added to cart", cartItemPayload{
		ProductID: status.ProductID,
		Quantity:  status.Quantity,
		ItemCount: status.ItemCount,
	})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	values, err := parseBody(c)
	if err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	values["productId"] = c.Param("productId")
	if failures := validate(values, updateCartRules); len(failures) > 0 {
		ErrorResponse(c, h.log, domain.ValidationFailed(failures))
		return
	}

	productID, _ := intValue(values["productId"])
	quantity, _ := intValue(values["quantity"])

	status, err := h.useCase.UpdateItem(c.Request.Context(), middleware.UserID(c), productID, quantity)
	if err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart item updated", cartItemPayload{
		ProductID: status.ProductID,
		Quantity:  status.Quantity,
		ItemCount: status.ItemCount,
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	values := map[string]any{"productId": c.Param("productId")}
	if failures := validate(values, removeFromCartRules); len(failures) > 0 {
		ErrorResponse(c, h.log, domain.ValidationFailed(failures))
		return
	}

	productID, _ := intValue(values["productId"])

	status, err := h.useCase.RemoveItem(c.Request.Context(), middleware.UserID(c), productID)
	if err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Item removed from cart", cartItemPayload{
		ProductID: status.ProductID,
		ItemCount: status.ItemCount,
	})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.useCase.ClearCart(c.Request.Context(), middleware.UserID(c)); err != nil {
		ErrorResponse(c, h.log, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart cleared", nil)
}
