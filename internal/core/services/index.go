package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
	"github.com/portico-apps/searchkit/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.Index = (*IndexService)(nil)

// IndexService is the search index engine. It owns the item collection
// and its statistics; every mutation adjusts the counters in the same
// critical section, so they never drift from the stored items.
//
// All public methods serialise on an internal mutex, giving the index a
// single logical writer no matter which goroutine calls in.
type IndexService struct {
	store  driven.ItemStore
	native driven.NativeIndex

	mu       sync.Mutex
	enabled  bool
	stats    domain.IndexStats
	platform domain.Platform
}

// NewIndexService creates the engine over its backing store. The native
// index is optional (can be nil); without one, items are only searchable
// through the engine itself. The store is expected to start empty; after
// seeding a store out of band, call ReconcileStats.
func NewIndexService(store driven.ItemStore, native driven.NativeIndex) *IndexService {
	svc := &IndexService{
		store:    store,
		native:   native,
		enabled:  true,
		platform: DetectPlatform(),
	}
	logger.Debug("Index initialised, platform: %s", svc.platform)
	return svc
}

// IndexItem adds or replaces one item, keyed by its ID. Replacing moves
// the per-type statistics counter from the old type to the new one in
// the same transaction as the item swap.
func (s *IndexService) IndexItem(ctx context.Context, item domain.SearchableItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return domain.ErrIndexingDisabled
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("index item: %w", err)
	}
	if item.ContentType == "" {
		item.ContentType = domain.ContentTypeGeneric
	}

	now := time.Now().UTC()
	item.LastModified = now
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}

	previous, err := s.store.Get(ctx, item.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("look up item %s: %w", item.ID, err)
	}

	if err := s.store.Save(ctx, item); err != nil {
		return fmt.Errorf("save item %s: %w", item.ID, err)
	}

	if previous != nil {
		s.stats.Subtract(previous.ContentType, now)
		logger.Debug("Replaced item %s (%s -> %s)", item.ID, previous.ContentType, item.ContentType)
	} else {
		logger.Debug("Indexed item %s (%s)", item.ID, item.ContentType)
	}
	s.stats.Add(item.ContentType, now)

	s.mirrorAdd(ctx, item)
	return nil
}

// RemoveItem removes the item with the given ID and reports whether
// anything was removed. A missing ID is a normal outcome, not an error.
func (s *IndexService) RemoveItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("look up item %s: %w", id, err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete item %s: %w", id, err)
	}

	s.stats.Subtract(previous.ContentType, time.Now().UTC())
	logger.Debug("Removed item %s", id)

	s.mirrorRemove(ctx, id)
	return true, nil
}

// RemoveItemsInDomain removes every item in a logical grouping and
// returns how many were removed. Statistics are decremented per removed
// item's own content type.
func (s *IndexService) RemoveItemsInDomain(ctx context.Context, domainName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.DeleteByDomain(ctx, domainName)
	if err != nil {
		return 0, fmt.Errorf("delete domain %s: %w", domainName, err)
	}

	now := time.Now().UTC()
	for _, item := range removed {
		s.stats.Subtract(item.ContentType, now)
	}
	logger.Debug("Removed %d items in domain %s", len(removed), domainName)

	if len(removed) > 0 {
		s.mirrorRemoveDomain(ctx, domainName)
	}
	return len(removed), nil
}

// RemoveExpiredItems sweeps out every item whose expiration date has
// passed and returns how many were removed. Items without an expiration
// date are never touched.
func (s *IndexService) RemoveExpiredItems(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	removed, err := s.store.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired items: %w", err)
	}

	for _, item := range removed {
		s.stats.Subtract(item.ContentType, now)
		s.mirrorRemove(ctx, item.ID)
	}
	if len(removed) > 0 {
		logger.Info("Expiry sweep removed %d items", len(removed))
	}
	return len(removed), nil
}

// ClearIndex drops all items and resets statistics.
func (s *IndexService) ClearIndex(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	s.stats.Reset(time.Now().UTC())
	logger.Info("Index cleared")

	s.mirrorClear(ctx)
	return nil
}

// GetItem retrieves a copy of an item by ID.
func (s *IndexService) GetItem(ctx context.Context, id string) (*domain.SearchableItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(ctx, id)
}

// Stats returns a copy of the current index statistics.
func (s *IndexService) Stats() domain.IndexStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ItemCount returns the number of items currently indexed.
func (s *IndexService) ItemCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Count(ctx)
}

// ReconcileStats recomputes statistics from the backing store and
// replaces the running counters if they have drifted. Reports whether a
// repair was needed.
func (s *IndexService) ReconcileStats(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list items: %w", err)
	}

	var recomputed domain.IndexStats
	for _, item := range items {
		recomputed.Add(item.ContentType, s.stats.LastUpdated)
	}
	recomputed.LastUpdated = s.stats.LastUpdated

	if recomputed == s.stats {
		return false, nil
	}

	logger.Warn("Index statistics drifted (total %d, recomputed %d), repairing",
		s.stats.TotalItems, recomputed.TotalItems)
	s.stats = recomputed
	return true, nil
}

// SetEnabled switches indexing on or off. While off, IndexItem fails and
// Search reports no results; stored items are kept so re-enabling brings
// them straight back.
func (s *IndexService) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enabled != enabled {
		logger.Info("Indexing enabled: %t", enabled)
	}
	s.enabled = enabled
}

// Enabled reports whether indexing is switched on.
func (s *IndexService) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Platform reports the native search service detected on this host.
func (s *IndexService) Platform() domain.Platform {
	return s.platform
}

// mirrorAdd pushes an item into the native index. Native registration is
// best effort; failures are logged and never roll back engine state.
func (s *IndexService) mirrorAdd(ctx context.Context, item domain.SearchableItem) {
	if s.native == nil || !s.native.Available() {
		return
	}
	if err := s.native.Add(ctx, item); err != nil {
		logger.Warn("Native index add failed for %s: %v", item.ID, err)
	}
}

func (s *IndexService) mirrorRemove(ctx context.Context, id string) {
	if s.native == nil || !s.native.Available() {
		return
	}
	if err := s.native.Remove(ctx, id); err != nil {
		logger.Warn("Native index remove failed for %s: %v", id, err)
	}
}

func (s *IndexService) mirrorRemoveDomain(ctx context.Context, domainName string) {
	if s.native == nil || !s.native.Available() {
		return
	}
	if err := s.native.RemoveDomain(ctx, domainName); err != nil {
		logger.Warn("Native index domain remove failed for %s: %v", domainName, err)
	}
}

func (s *IndexService) mirrorClear(ctx context.Context) {
	if s.native == nil || !s.native.Available() {
		return
	}
	if err := s.native.Clear(ctx); err != nil {
		logger.Warn("Native index clear failed: %v", err)
	}
}
