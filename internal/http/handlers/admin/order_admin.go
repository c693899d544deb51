package admin

import (
	"strconv"

	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders handles GET /api/orders, newest-first with an optional status
// filter.
func (h *Handler) ListOrders(c *gin.Context) {
	filter := repository.OrderListFilter{
		Status: c.Query("status"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.PageSize, _ = strconv.Atoi(c.Query("page_size"))

	orders, total, err := h.orderService.List(filter)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"items": orders,
		"total": total,
	})
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, order)
}
