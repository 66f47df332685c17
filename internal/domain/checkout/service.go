// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/cafe-gateway/internal/domain/cart"
	"github.com/your-org/cafe-gateway/internal/domain/menu"
	"github.com/your-org/cafe-gateway/internal/domain/order"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
)

// ErrEmptyCart is returned when checking out with no cart lines
var ErrEmptyCart = errors.New("cart is empty")

// Service turns a session's cart into an order. The submission carries
// a denormalized snapshot of menu names and the total priced with the
// same lookup the cart display used, so the recorded order matches what
// the user saw. No idempotency key is attached; a retry after an
// ambiguous network failure can double-submit.
type Service struct {
	api         *upstream.Client
	cartService *cart.Service
	lookup      *menu.Lookup
	logger      *logrus.Logger
}

// NewService creates a new checkout service
func NewService(api *upstream.Client, cartService *cart.Service, lookup *menu.Lookup, logger *logrus.Logger) *Service {
	return &Service{
		api:         api,
		cartService: cartService,
		lookup:      lookup,
		logger:      logger,
	}
}

// SubmitRequest carries the order contact fields
type SubmitRequest struct {
	Name string `json:"order_name" binding:"required"`
	Tel  string `json:"order_tel" binding:"required"`
}

// Submit posts the current cart as an order. The cart is cleared only
// after the upstream accepts the order; any failure leaves the cart and
// its persisted record untouched.
func (s *Service) Submit(ctx context.Context, sessionID string, req *SubmitRequest) (*order.Order, error) {
	items, err := s.cartService.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]order.Line, len(items))
	var total float64
	for i, item := range items {
		line := order.Line{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
			Option:   item.Option,
		}
		if m, ok := s.lookup.Resolve(item.MenuID); ok {
			line.MenuName = m.Name
			total += m.Price * float64(item.Quantity)
		}
		lines[i] = line
	}

	encoded, err := order.EncodeLines(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	payload := order.Order{
		Name:       req.Name,
		Tel:        req.Tel,
		Items:      encoded,
		TotalPrice: total,
	}

	var created order.Order
	if err := s.api.Post(ctx, "/orders", payload, &created); err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	// The upstream owns the order now; drop the local cart state
	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Order submitted but cart clear failed")
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":    created.ID,
		"total_price": total,
		"line_count":  len(lines),
	}).Info("Order submitted")

	return &created, nil
}
