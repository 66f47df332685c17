// internal/domain/menu/lookup.go
package menu

import "sync"

// Lookup is a read-only cross-reference from menu id to display data,
// backed by the most recently fetched catalog snapshot. The snapshot is
// replaced wholesale on every successful fetch; staleness is acceptable.
type Lookup struct {
	mu    sync.RWMutex
	menus map[int]Menu
}

// NewLookup creates an empty lookup table
func NewLookup() *Lookup {
	return &Lookup{
		menus: make(map[int]Menu),
	}
}

// Replace swaps the snapshot for a freshly fetched catalog
func (l *Lookup) Replace(menus []Menu) {
	next := make(map[int]Menu, len(menus))
	for _, m := range menus {
		next[m.ID] = m
	}

	l.mu.Lock()
	l.menus = next
	l.mu.Unlock()
}

// Resolve returns the menu for the given id from the current snapshot
func (l *Lookup) Resolve(menuID int) (Menu, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	m, ok := l.menus[menuID]
	return m, ok
}

// Price returns the unit price for a menu id. An unresolvable id prices
// at 0 so cart totals stay defined before the catalog has loaded.
func (l *Lookup) Price(menuID int) float64 {
	m, ok := l.Resolve(menuID)
	if !ok {
		return 0
	}
	return m.Price
}

// Len returns the number of menus in the current snapshot
func (l *Lookup) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.menus)
}
