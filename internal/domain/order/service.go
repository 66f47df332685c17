// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
)

// ErrNotFound is returned when an order id is absent from the listing
var ErrNotFound = errors.New("order not found")

// Service handles order history business logic
type Service struct {
	api    *upstream.Client
	logger *logrus.Logger
}

// NewService creates a new order service
func NewService(api *upstream.Client, logger *logrus.Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// List retrieves all orders with their line items decoded
func (s *Service) List(ctx context.Context) ([]View, error) {
	var orders []Order
	if err := s.api.Get(ctx, "/orders", &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	views := make([]View, len(orders))
	for i, o := range orders {
		lines, err := o.DecodeLines()
		if err != nil {
			// A malformed order_item hides the lines but not the order
			s.logger.WithFields(logrus.Fields{
				"order_id": o.ID,
				"error":    err.Error(),
			}).Warn("Failed to decode order items")
			lines = nil
		}

		views[i] = View{
			ID:         o.ID,
			Name:       o.Name,
			Tel:        o.Tel,
			Lines:      lines,
			TotalPrice: o.TotalPrice,
			OrderedOn:  o.OrderedOn,
		}
	}

	return views, nil
}

// Find returns a single order by id. The upstream API only exposes the
// full listing, so this scans the list.
func (s *Service) Find(ctx context.Context, orderID int) (*View, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range views {
		if views[i].ID == orderID {
			return &views[i], nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
}

// Delete removes an order from the upstream API
func (s *Service) Delete(ctx context.Context, orderID int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/orders/%d", orderID)); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", orderID, err)
	}

	s.logger.WithField("order_id", orderID).Info("Order deleted")
	return nil
}
