package admin

import (
	"errors"
	"strconv"

	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler serves the management endpoints.
type Handler struct {
	productService  *service.ProductService
	categoryService *service.CategoryService
	orderService    *service.OrderService
	statsService    *service.StatsService
	uploadService   *service.UploadService
}

// NewHandler creates the management handler.
func NewHandler(
	productService *service.ProductService,
	categoryService *service.CategoryService,
	orderService *service.OrderService,
	statsService *service.StatsService,
	uploadService *service.UploadService,
) *Handler {
	return &Handler{
		productService:  productService,
		categoryService: categoryService,
		orderService:    orderService,
		statsService:    statsService,
		uploadService:   uploadService,
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, service.ErrSKUExists):
		response.Conflict(c, "sku already exists")
	case errors.Is(err, service.ErrNameExists):
		response.Conflict(c, "name already exists")
	case errors.Is(err, service.ErrCategoryInUse):
		response.Conflict(c, "category still has products")
	case errors.Is(err, service.ErrOrderStatusInvalid):
		response.BadRequest(c, "invalid order status")
	case errors.Is(err, service.ErrUploadTooLarge):
		response.BadRequest(c, "image exceeds size limit")
	case errors.Is(err, service.ErrUploadTooMany):
		response.BadRequest(c, "too many images")
	case errors.Is(err, service.ErrUploadBadType), errors.Is(err, service.ErrUploadUnsafeName):
		response.BadRequest(c, "image type not allowed")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, "validation failed")
	default:
		response.Internal(c, "internal error")
	}
}
