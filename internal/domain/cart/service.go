// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/cafe-gateway/internal/domain/menu"
)

// ErrAlreadyInCart is returned when adding a menu that the cart already
// holds. Callers surface it as a notice, not a failure.
var ErrAlreadyInCart = errors.New("menu is already in the cart")

// ErrMenuNotFound is returned when adding a menu id the catalog
// snapshot cannot resolve
var ErrMenuNotFound = errors.New("menu not found")

// Service owns all cart state transitions. The persisted store is kept
// consistent with every mutation before the call returns. Pending
// option drafts live in a side map and touch the cart only on commit.
type Service struct {
	store  Store
	lookup *menu.Lookup
	logger *logrus.Logger

	mu     sync.Mutex
	drafts map[string]map[int]string // session id -> menu id -> staged note
}

// NewService creates a new cart service
func NewService(store Store, lookup *menu.Lookup, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		lookup: lookup,
		logger: logger,
		drafts: make(map[string]map[int]string),
	}
}

// Get returns the cart with menu details resolved against the current
// catalog snapshot
func (s *Service) Get(ctx context.Context, sessionID string) (*View, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(sessionID, items), nil
}

// Add appends a new line with quantity 1. Adding a menu id that is
// already in the cart changes nothing and reports ErrAlreadyInCart.
func (s *Service) Add(ctx context.Context, sessionID string, menuID int) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.MenuID == menuID {
			return nil, ErrAlreadyInCart
		}
	}

	if _, ok := s.lookup.Resolve(menuID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrMenuNotFound, menuID)
	}

	items = append(items, Item{MenuID: menuID, Quantity: 1})
	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}

	return s.buildView(sessionID, items), nil
}

// SetQuantity overwrites a line's quantity in place. A nil or
// non-positive quantity removes the line instead; an unknown menu id is
// a no-op.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, menuID int, quantity *int) (*View, error) {
	if quantity == nil || *quantity <= 0 {
		return s.Remove(ctx, sessionID, menuID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].MenuID == menuID {
			items[i].Quantity = *quantity
			if err := s.store.Save(ctx, sessionID, items); err != nil {
				return nil, err
			}
			break
		}
	}

	return s.buildView(sessionID, items), nil
}

// Remove deletes the line for menuID and discards any pending option
// draft for it. Removing an absent id is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID string, menuID int) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.MenuID != menuID {
			kept = append(kept, item)
		}
	}

	if len(kept) != len(items) {
		if err := s.store.Save(ctx, sessionID, kept); err != nil {
			return nil, err
		}
	}
	s.discardDraft(sessionID, menuID)

	return s.buildView(sessionID, kept), nil
}

// StageOption stages a draft note for menuID without touching the
// committed cart line
func (s *Service) StageOption(sessionID string, menuID int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drafts[sessionID] == nil {
		s.drafts[sessionID] = make(map[int]string)
	}
	s.drafts[sessionID][menuID] = text
}

// CommitOption writes the staged draft into the cart line. A non-empty
// draft becomes the line's menu_option; an empty draft removes any
// existing option. Without a staged draft the commit is a no-op. The
// draft is cleared either way.
func (s *Service) CommitOption(ctx context.Context, sessionID string, menuID int) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	draft, staged := s.drafts[sessionID][menuID]
	if !staged {
		return s.buildView(sessionID, items), nil
	}

	for i := range items {
		if items[i].MenuID == menuID {
			items[i].Option = draft
			if err := s.store.Save(ctx, sessionID, items); err != nil {
				return nil, err
			}
			break
		}
	}
	s.discardDraft(sessionID, menuID)

	return s.buildView(sessionID, items), nil
}

// Items returns the raw persisted cart lines
func (s *Service) Items(ctx context.Context, sessionID string) ([]Item, error) {
	return s.store.Load(ctx, sessionID)
}

// Total returns the cart total priced against the current snapshot
func (s *Service) Total(ctx context.Context, sessionID string) (float64, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		total += s.lookup.Price(item.MenuID) * float64(item.Quantity)
	}
	return total, nil
}

// Count returns the total quantity across all cart lines
func (s *Service) Count(ctx context.Context, sessionID string) (int, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// Clear removes all cart lines and pending drafts for the session
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	delete(s.drafts, sessionID)

	s.logger.WithField("session_id", sessionID).Debug("Cart cleared")
	return nil
}

func (s *Service) discardDraft(sessionID string, menuID int) {
	if pending, ok := s.drafts[sessionID]; ok {
		delete(pending, menuID)
		if len(pending) == 0 {
			delete(s.drafts, sessionID)
		}
	}
}

func (s *Service) buildView(sessionID string, items []Item) *View {
	view := &View{
		SessionID: sessionID,
		Items:     make([]ItemView, len(items)),
	}

	for i, item := range items {
		iv := ItemView{Item: item}
		if m, ok := s.lookup.Resolve(item.MenuID); ok {
			iv.Menu = &m
			iv.LineTotal = m.Price * float64(item.Quantity)
		}
		view.Items[i] = iv
		view.TotalQuantity += item.Quantity
		view.TotalPrice += iv.LineTotal
	}

	return view
}
