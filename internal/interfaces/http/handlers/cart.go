// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/domain/cart"
	"github.com/your-org/cafe-gateway/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	view, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    view,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.cartService.Add(c.Request.Context(), sessionID, req.MenuID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrAlreadyInCart):
			// Soft failure: the cart is unchanged, tell the user why
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Menu is already in the cart",
				"message": "This menu has already been added",
			})
		case errors.Is(err, cart.ErrMenuNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to add item to cart",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    view,
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	menuID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.cartService.SetQuantity(c.Request.Context(), sessionID, menuID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    view,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	menuID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.cartService.Remove(c.Request.Context(), sessionID, menuID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item from cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    view,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	count, err := h.cartService.Count(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get cart count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// StageOption handles PUT /cart/items/:id/option
func (h *CartHandler) StageOption(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	menuID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req cart.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cartService.StageOption(sessionID, menuID, req.Option)

	c.JSON(http.StatusOK, gin.H{
		"message": "Option staged successfully",
	})
}

// CommitOption handles POST /cart/items/:id/option
func (h *CartHandler) CommitOption(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	menuID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.cartService.CommitOption(c.Request.Context(), sessionID, menuID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save option",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Option saved successfully",
		"data":    view,
	})
}
