package admin

import (
	"github.com/banarasikart/bsk-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStats handles GET /api/stats.
func (h *Handler) GetStats(c *gin.Context) {
	force := c.Query("refresh") == "true"
	overview, err := h.statsService.GetOverview(c.Request.Context(), force)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, overview)
}
