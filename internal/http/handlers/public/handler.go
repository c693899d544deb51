package public

import (
	"errors"

	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler serves the storefront endpoints.
type Handler struct {
	cartService     *service.CartService
	productService  *service.ProductService
	categoryService *service.CategoryService
	orderService    *service.OrderService
	sessionHeader   string
}

// NewHandler creates the storefront handler.
func NewHandler(
	cartService *service.CartService,
	productService *service.ProductService,
	categoryService *service.CategoryService,
	orderService *service.OrderService,
	sessionHeader string,
) *Handler {
	if sessionHeader == "" {
		sessionHeader = "X-Session-Id"
	}
	return &Handler{
		cartService:     cartService,
		productService:  productService,
		categoryService: categoryService,
		orderService:    orderService,
		sessionHeader:   sessionHeader,
	}
}

func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, service.ErrProductNotAvailable):
		response.BadRequest(c, "product not available")
	case errors.Is(err, service.ErrInvalidQuantity):
		response.BadRequest(c, "quantity must be positive")
	case errors.Is(err, service.ErrInvalidOrderItem):
		response.BadRequest(c, "invalid order item")
	case errors.Is(err, service.ErrOrderTotalMismatch):
		response.BadRequest(c, "order total does not match items")
	case errors.Is(err, service.ErrOrderStatusInvalid):
		response.BadRequest(c, "invalid order status")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, "validation failed")
	default:
		response.Internal(c, "internal error")
	}
}
