// internal/domain/menu/entity.go
package menu

// Menu represents a drink menu entry owned by the upstream catalog.
// The gateway never stores menus; it mirrors the last successful fetch.
type Menu struct {
	ID          int     `json:"menu_id"`
	Name        string  `json:"menu_name"`
	Description string  `json:"menu_description"`
	Price       float64 `json:"menu_price"`
	Image       string  `json:"menu_image"`
}

// CreateMenuRequest represents a menu create request
type CreateMenuRequest struct {
	Name        string   `json:"menu_name" binding:"required"`
	Description string   `json:"menu_description"`
	Price       *float64 `json:"menu_price" binding:"required"`
	Image       string   `json:"menu_image"`
}
