package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryInt reads a positive int, falling back to def when absent or invalid
// and clamping to limit.
func queryInt(c *gin.Context, key string, def, limit int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	if v > limit {
		return limit
	}
	return v
}
