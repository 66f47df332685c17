// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cafe-gateway/internal/domain/menu"
)

// MenuHandler handles menu catalog endpoints
type MenuHandler struct {
	menuService *menu.Service
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *menu.Service) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// GetMenus handles GET /menus
func (h *MenuHandler) GetMenus(c *gin.Context) {
	menus, err := h.menuService.List(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menus retrieved successfully",
		"data":    menus,
	})
}

// GetMenu handles GET /menus/:id
func (h *MenuHandler) GetMenu(c *gin.Context) {
	menuID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	m, err := h.menuService.Get(c.Request.Context(), menuID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu retrieved successfully",
		"data":    m,
	})
}

// CreateMenu handles POST /menus
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var req menu.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid input",
			"message": "Please check your input and try again",
			"details": err.Error(),
		})
		return
	}

	created, err := h.menuService.Create(c.Request.Context(), &req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu created successfully",
		"data":    created,
	})
}
