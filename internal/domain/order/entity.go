// internal/domain/order/entity.go
package order

import "encoding/json"

// Order represents an order as the upstream API stores it. The line
// items travel as a JSON-encoded string inside order_item, so reading
// an order takes a second decode step.
type Order struct {
	ID         int     `json:"order_id,omitempty"`
	Name       string  `json:"order_name"`
	Tel        string  `json:"order_tel"`
	Items      string  `json:"order_item"`
	TotalPrice float64 `json:"total_price"`
	OrderedOn  string  `json:"order_on,omitempty"`
}

// Line is one denormalized order line. Menu name and option are copied
// in at submission time so later catalog edits cannot rewrite order
// history.
type Line struct {
	MenuID   int    `json:"menu_id"`
	MenuName string `json:"menu_name"`
	Quantity int    `json:"quantity"`
	Option   string `json:"menu_option"`
}

// View is an order with its line items decoded for API responses
type View struct {
	ID         int     `json:"order_id"`
	Name       string  `json:"order_name"`
	Tel        string  `json:"order_tel"`
	Lines      []Line  `json:"order_items"`
	TotalPrice float64 `json:"total_price"`
	OrderedOn  string  `json:"order_on,omitempty"`
}

// DecodeLines parses the order_item payload of an upstream order
func (o *Order) DecodeLines() ([]Line, error) {
	var lines []Line
	if err := json.Unmarshal([]byte(o.Items), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// EncodeLines serializes order lines into the order_item wire format
func EncodeLines(lines []Line) (string, error) {
	data, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
