package admin

import (
	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/service"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategory handles POST /api/categories.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category, err := h.categoryService.Create(service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Created(c, category)
}

// UpdateCategory handles PUT /api/categories/:id.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category, err := h.categoryService.Update(id, service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory handles DELETE /api/categories/:id. Refused while any
// product still references the category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.categoryService.Delete(id); err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
