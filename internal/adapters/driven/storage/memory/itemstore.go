package memory

import (
	"context"
	"sync"
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// Ensure ItemStore implements the interface.
var _ driven.ItemStore = (*ItemStore)(nil)

// ItemStore is an in-memory implementation of driven.ItemStore.
// Items live in a slice so List preserves insertion order, with
// replacements keeping their original position. Lookups scan linearly,
// which holds up fine at the hundreds-to-low-thousands of items the
// engine is sized for.
type ItemStore struct {
	mu    sync.RWMutex
	items []domain.SearchableItem
}

// NewItemStore creates a new in-memory item store.
func NewItemStore() *ItemStore {
	return &ItemStore{}
}

// Save stores or updates an item keyed by its ID.
func (s *ItemStore) Save(_ context.Context, item domain.SearchableItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := item.Clone()
	for n := range s.items {
		if s.items[n].ID == stored.ID {
			s.items[n] = stored
			return nil
		}
	}
	s.items = append(s.items, stored)
	return nil
}

// Get retrieves an item by ID.
func (s *ItemStore) Get(_ context.Context, id string) (*domain.SearchableItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for n := range s.items {
		if s.items[n].ID == id {
			item := s.items[n].Clone()
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes an item by ID.
func (s *ItemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := range s.items {
		if s.items[n].ID == id {
			s.items = append(s.items[:n], s.items[n+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteByDomain removes every item in a logical grouping.
func (s *ItemStore) DeleteByDomain(_ context.Context, domainName string) ([]domain.SearchableItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteWhere(func(item domain.SearchableItem) bool {
		return item.Domain == domainName
	}), nil
}

// DeleteExpired removes every item expired at the given instant.
func (s *ItemStore) DeleteExpired(_ context.Context, now time.Time) ([]domain.SearchableItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteWhere(func(item domain.SearchableItem) bool {
		return item.IsExpired(now)
	}), nil
}

// List returns all items in insertion order.
func (s *ItemStore) List(_ context.Context) ([]domain.SearchableItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.SearchableItem, len(s.items))
	for n := range s.items {
		items[n] = s.items[n].Clone()
	}
	return items, nil
}

// Count returns the number of stored items.
func (s *ItemStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

// Clear removes all items.
func (s *ItemStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

// deleteWhere removes every item matching the predicate and returns
// copies of the removed items. Callers must hold the write lock.
func (s *ItemStore) deleteWhere(match func(domain.SearchableItem) bool) []domain.SearchableItem {
	var removed []domain.SearchableItem
	kept := make([]domain.SearchableItem, 0, len(s.items))
	for _, item := range s.items {
		if match(item) {
			removed = append(removed, item.Clone())
		} else {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return removed
}
