package cli

import (
	"context"
	"errors"

	"github.com/portico-apps/searchkit/internal/adapters/driven/storage/memory"
	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
	"github.com/portico-apps/searchkit/internal/core/services"
)

// setupTestServices wires the command package to an in-memory engine
// seeded with a few items. The returned cleanup restores the previous
// services.
func setupTestServices() func() {
	oldIndex := indexService
	oldImporter := importerService
	oldMaintenance := maintenanceService
	oldConfig := configStore

	index := services.NewIndexService(memory.NewItemStore(), nil)
	ctx := context.Background()

	seed := []domain.SearchableItem{
		domain.NewSearchableItem("doc-001").
			WithDomain("documents").
			WithTitle("Important Report").
			WithDescription("Quarterly figures").
			WithContentType(domain.ContentTypeDocument).
			AddKeyword("finance"),
		domain.NewSearchableItem("note-001").
			WithDomain("notes").
			WithTitle("Meeting Notes").
			WithContentType(domain.ContentTypeNote),
	}
	for _, item := range seed {
		if err := index.IndexItem(ctx, item); err != nil {
			panic(err)
		}
	}

	indexService = index
	importerService = services.NewImportService(index)
	maintenanceService = services.NewMaintenance(domain.DefaultMaintenanceConfig(), memory.NewMaintenanceStore(), index)
	configStore = memory.NewConfigStore()

	return func() {
		indexService = oldIndex
		importerService = oldImporter
		maintenanceService = oldMaintenance
		configStore = oldConfig
	}
}

// errMockIndex is returned by every failing mock operation.
var errMockIndex = errors.New("store offline")

// mockIndexError fails every index operation, for error path tests.
type mockIndexError struct{}

var _ driving.Index = (*mockIndexError)(nil)

func (m *mockIndexError) IndexItem(context.Context, domain.SearchableItem) error {
	return errMockIndex
}

func (m *mockIndexError) RemoveItem(context.Context, string) (bool, error) {
	return false, errMockIndex
}

func (m *mockIndexError) RemoveItemsInDomain(context.Context, string) (int, error) {
	return 0, errMockIndex
}

func (m *mockIndexError) RemoveExpiredItems(context.Context) (int, error) {
	return 0, errMockIndex
}

func (m *mockIndexError) ClearIndex(context.Context) error {
	return errMockIndex
}

func (m *mockIndexError) GetItem(context.Context, string) (*domain.SearchableItem, error) {
	return nil, errMockIndex
}

func (m *mockIndexError) Search(context.Context, domain.SearchQuery) ([]domain.SearchResult, error) {
	return nil, errMockIndex
}

func (m *mockIndexError) Stats() domain.IndexStats {
	return domain.IndexStats{}
}

func (m *mockIndexError) ItemCount(context.Context) (int, error) {
	return 0, errMockIndex
}

func (m *mockIndexError) ReconcileStats(context.Context) (bool, error) {
	return false, errMockIndex
}

func (m *mockIndexError) SetEnabled(bool) {}

func (m *mockIndexError) Enabled() bool {
	return true
}

func (m *mockIndexError) Platform() domain.Platform {
	return domain.PlatformUnknown
}
