package mcp

import (
	"context"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// mockIndex is a mock implementation of driving.Index. Return values are
// configured through fields; the last search query and indexed item are
// captured for assertions.
type mockIndex struct {
	results  []domain.SearchResult
	item     *domain.SearchableItem
	stats    domain.IndexStats
	count    int
	removed  bool
	enabled  bool
	platform domain.Platform
	err      error

	gotQuery domain.SearchQuery
	gotItem  domain.SearchableItem
}

func (m *mockIndex) IndexItem(_ context.Context, item domain.SearchableItem) error {
	m.gotItem = item
	return m.err
}

func (m *mockIndex) RemoveItem(_ context.Context, _ string) (bool, error) {
	return m.removed, m.err
}

func (m *mockIndex) RemoveItemsInDomain(_ context.Context, _ string) (int, error) {
	return m.count, m.err
}

func (m *mockIndex) RemoveExpiredItems(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockIndex) ClearIndex(_ context.Context) error {
	return m.err
}

func (m *mockIndex) GetItem(_ context.Context, _ string) (*domain.SearchableItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.item == nil {
		return nil, domain.ErrNotFound
	}
	return m.item, nil
}

func (m *mockIndex) Search(_ context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	m.gotQuery = query
	return m.results, m.err
}

func (m *mockIndex) Stats() domain.IndexStats {
	return m.stats
}

func (m *mockIndex) ItemCount(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockIndex) ReconcileStats(_ context.Context) (bool, error) {
	return false, m.err
}

func (m *mockIndex) SetEnabled(enabled bool) {
	m.enabled = enabled
}

func (m *mockIndex) Enabled() bool {
	return m.enabled
}

func (m *mockIndex) Platform() domain.Platform {
	return m.platform
}

// mockImporter is a mock implementation of driving.Importer.
type mockImporter struct {
	result domain.BatchResult

	gotItems []domain.SearchableItem
}

func (m *mockImporter) Import(_ context.Context, items []domain.SearchableItem) domain.BatchResult {
	m.gotItems = items
	return m.result
}
