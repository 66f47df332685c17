// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cafe-gateway/internal/domain/checkout"
	"github.com/your-org/cafe-gateway/internal/interfaces/http/middleware"
)

// CheckoutHandler handles order submission
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Submit handles POST /orders. On success the cart is already cleared;
// on any failure the cart and its persisted record are untouched and
// the user sees a retryable notice.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req checkout.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid input",
			"message": "Please check your input and try again",
			"details": err.Error(),
		})
		return
	}

	created, err := h.checkoutService.Submit(c.Request.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Cart is empty",
				"message": "Add a menu to the cart before ordering",
			})
			return
		}
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    created,
	})
}
