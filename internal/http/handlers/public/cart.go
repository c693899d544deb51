package public

import (
	"github.com/banarasikart/bsk-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/cart. The body carries the joined entries plus
// the running total and item count.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	if sessionID == "" {
		response.BadRequest(c, "missing session id")
		return
	}

	items, err := h.cartService.List(sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	total, err := h.cartService.Total(sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	response.Success(c, gin.H{
		"items":      items,
		"total":      total,
		"item_count": count,
	})
}

// AddToCart handles POST /api/cart. Re-adding a product merges quantities.
func (h *Handler) AddToCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	if sessionID == "" {
		response.BadRequest(c, "missing session id")
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.cartService.Add(sessionID, req.ProductID, req.Quantity)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateCartItem handles PUT /api/cart/:id.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid cart item id")
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, removed, err := h.cartService.SetQuantity(id, req.Quantity)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if removed {
		response.Success(c, gin.H{"removed": true})
		return
	}
	response.Success(c, item)
}

// RemoveCartItem handles DELETE /api/cart/:id.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.cartService.Remove(id); err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart handles DELETE /api/cart for the header session.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	if sessionID == "" {
		response.BadRequest(c, "missing session id")
		return
	}
	if err := h.cartService.Clear(sessionID); err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
