package public

import (
	"strconv"

	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, categories)
}

// ListProducts handles GET /api/products with optional category, featured
// and search filters. Only active products are visible here.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		OnlyActive: true,
		CategoryID: uint(queryInt(c, "category_id", "categoryId")),
		Search:     queryValue(c, "search", "search"),
		Page:       queryInt(c, "page", "page"),
		PageSize:   queryInt(c, "page_size", "pageSize"),
	}
	if raw := queryValue(c, "featured", "featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "featured must be a boolean")
			return
		}
		filter.Featured = &featured
	}

	products, total, err := h.productService.List(filter)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"items": products,
		"total": total,
	})
}

// GetProduct handles GET /api/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.productService.GetByID(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, product)
}
