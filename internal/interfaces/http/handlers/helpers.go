// internal/interfaces/http/handlers/helpers.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
)

// respondUpstreamError converts an upstream API failure into the
// user-facing notice taxonomy: 422 means the input needs correcting,
// anything else is a transient upstream problem worth retrying.
func respondUpstreamError(c *gin.Context, err error) {
	if upstream.IsValidation(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid input",
			"message": "Please check your input and try again",
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"error":   "Upstream service error",
		"message": "Please try again",
	})
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}
