package public

import (
	"errors"
	"net/http"

	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrder handles POST /api/orders. A mid-sequence item failure still
// leaves the order committed; the response names it so the client or an
// operator can reconcile.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(req, h.sessionID(c))
	if err != nil {
		var partial *service.PartialOrderError
		if errors.As(err, &partial) {
			response.ErrorData(c, http.StatusInternalServerError, response.CodeInternal, "order partially created", gin.H{
				"order_id":      partial.OrderID,
				"items_created": partial.ItemsCreated,
			})
			return
		}
		mapServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// GetOrder handles GET /api/orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.orderService.GetByID(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, order)
}
