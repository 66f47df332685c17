// internal/domain/cart/entity.go
package cart

import "github.com/your-org/cafe-gateway/internal/domain/menu"

// Item represents one cart line. A cart holds at most one Item per
// menu id, and a persisted quantity is always >= 1.
type Item struct {
	MenuID   int    `json:"menu_id"`
	Quantity int    `json:"quantity"`
	Option   string `json:"menu_option,omitempty"`
}

// ItemView is a cart line joined with resolved menu display data.
// Menu is nil when the id cannot be resolved against the current
// catalog snapshot; the line then contributes 0 to the total.
type ItemView struct {
	Item
	Menu      *menu.Menu `json:"menu,omitempty"`
	LineTotal float64    `json:"line_total"`
}

// View represents a shopping cart with resolved items and totals
type View struct {
	SessionID     string     `json:"session_id"`
	Items         []ItemView `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	TotalPrice    float64    `json:"total_price"`
}

// AddItemRequest represents an add to cart request
type AddItemRequest struct {
	MenuID int `json:"menu_id" binding:"required"`
}

// UpdateItemRequest represents a quantity update request. A missing
// quantity removes the item, same as zero or negative.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity"`
}

// OptionRequest carries a staged per-item note
type OptionRequest struct {
	Option string `json:"menu_option"`
}
