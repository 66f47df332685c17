// internal/domain/menu/service.go
package menu

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
)

// Service handles menu catalog business logic
type Service struct {
	api    *upstream.Client
	lookup *Lookup
	logger *logrus.Logger
}

// NewService creates a new menu service
func NewService(api *upstream.Client, lookup *Lookup, logger *logrus.Logger) *Service {
	return &Service{
		api:    api,
		lookup: lookup,
		logger: logger,
	}
}

// List retrieves all menus and refreshes the lookup snapshot
func (s *Service) List(ctx context.Context) ([]Menu, error) {
	var menus []Menu
	if err := s.api.Get(ctx, "/menus", &menus); err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	s.lookup.Replace(menus)
	return menus, nil
}

// Get retrieves a single menu by id
func (s *Service) Get(ctx context.Context, menuID int) (*Menu, error) {
	var m Menu
	if err := s.api.Get(ctx, fmt.Sprintf("/menus/%d", menuID), &m); err != nil {
		return nil, fmt.Errorf("failed to get menu %d: %w", menuID, err)
	}
	return &m, nil
}

// Create creates a new menu in the upstream catalog
func (s *Service) Create(ctx context.Context, req *CreateMenuRequest) (*Menu, error) {
	var created Menu
	if err := s.api.Post(ctx, "/menus", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"menu_id":   created.ID,
		"menu_name": created.Name,
	}).Info("Menu created")

	return &created, nil
}

// Refresh re-fetches the catalog to prime or update the lookup snapshot
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.List(ctx)
	return err
}
