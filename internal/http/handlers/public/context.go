package public

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// sessionID reads the visitor session from the configured header, falling
// back to a :sessionId path param when present.
func (h *Handler) sessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(h.sessionHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(c.Param("sessionId"))
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryValue reads a query parameter accepting both snake_case and
// camelCase spellings.
func queryValue(c *gin.Context, snake, camel string) string {
	if v := c.Query(snake); v != "" {
		return v
	}
	return c.Query(camel)
}

func queryInt(c *gin.Context, snake, camel string) int {
	v := queryValue(c, snake, camel)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
