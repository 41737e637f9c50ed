package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portico-apps/searchkit/internal/adapters/driven/storage/memory"
	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockNativeIndex implements driven.NativeIndex for testing.
type mockNativeIndex struct {
	mu        sync.Mutex
	available bool
	added     []string
	removed   []string
	domains   []string
	clears    int
	addErr    error
	removeErr error
	clearErr  error
}

func newMockNativeIndex() *mockNativeIndex {
	return &mockNativeIndex{available: true}
}

func (m *mockNativeIndex) Platform() domain.Platform {
	return domain.PlatformUnknown
}

func (m *mockNativeIndex) Available() bool {
	return m.available
}

func (m *mockNativeIndex) Add(_ context.Context, item domain.SearchableItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, item.ID)
	return nil
}

func (m *mockNativeIndex) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, id)
	return nil
}

func (m *mockNativeIndex) RemoveDomain(_ context.Context, domainName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domains = append(m.domains, domainName)
	return nil
}

func (m *mockNativeIndex) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.clears++
	return nil
}

// failingItemStore implements driven.ItemStore and fails every call.
type failingItemStore struct {
	err error
}

func (f *failingItemStore) Save(_ context.Context, _ domain.SearchableItem) error { return f.err }
func (f *failingItemStore) Get(_ context.Context, _ string) (*domain.SearchableItem, error) {
	return nil, f.err
}
func (f *failingItemStore) Delete(_ context.Context, _ string) error { return f.err }
func (f *failingItemStore) DeleteByDomain(_ context.Context, _ string) ([]domain.SearchableItem, error) {
	return nil, f.err
}
func (f *failingItemStore) DeleteExpired(_ context.Context, _ time.Time) ([]domain.SearchableItem, error) {
	return nil, f.err
}
func (f *failingItemStore) List(_ context.Context) ([]domain.SearchableItem, error) {
	return nil, f.err
}
func (f *failingItemStore) Count(_ context.Context) (int, error) { return 0, f.err }
func (f *failingItemStore) Clear(_ context.Context) error        { return f.err }

// Ensure mocks implement interfaces
var _ driven.NativeIndex = (*mockNativeIndex)(nil)
var _ driven.ItemStore = (*failingItemStore)(nil)

// newTestIndex builds an engine over a fresh memory store.
func newTestIndex(t *testing.T) (*IndexService, *mockNativeIndex) {
	t.Helper()
	native := newMockNativeIndex()
	return NewIndexService(memory.NewItemStore(), native), native
}

// ==================== IndexService Tests ====================

func TestNewIndexService(t *testing.T) {
	svc, _ := newTestIndex(t)

	require.NotNil(t, svc)
	assert.True(t, svc.Enabled())
	assert.True(t, svc.Platform().IsValid())
	assert.Zero(t, svc.Stats().TotalItems)
}

func TestIndexService_IndexItem_Success(t *testing.T) {
	svc, native := newTestIndex(t)
	ctx := context.Background()

	item := domain.NewSearchableItem("doc-001").
		WithDomain("documents").
		WithTitle("Important Report").
		WithContentType(domain.ContentTypeDocument)

	err := svc.IndexItem(ctx, item)
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.DocumentCount)
	assert.False(t, stats.LastUpdated.IsZero())

	count, err := svc.ItemCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, []string{"doc-001"}, native.added)
}

func TestIndexService_IndexItem_Upsert(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	first := domain.NewSearchableItem("doc-001").WithContentType(domain.ContentTypeDocument)
	second := domain.NewSearchableItem("doc-001").WithContentType(domain.ContentTypeImage)

	require.NoError(t, svc.IndexItem(ctx, first))
	require.NoError(t, svc.IndexItem(ctx, second))

	// Re-indexing the same ID replaces, never duplicates
	count, err := svc.ItemCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The counter moves from the old type to the new one
	stats := svc.Stats()
	assert.Equal(t, 1, stats.TotalItems)
	assert.Zero(t, stats.DocumentCount)
	assert.Equal(t, 1, stats.ImageCount)

	saved, err := svc.GetItem(ctx, "doc-001")
	require.NoError(t, err)
	assert.Equal(t, domain.ContentTypeImage, saved.ContentType)
}

func TestIndexService_IndexItem_Disabled(t *testing.T) {
	svc, native := newTestIndex(t)
	ctx := context.Background()

	svc.SetEnabled(false)

	err := svc.IndexItem(ctx, domain.NewSearchableItem("doc-001"))
	assert.ErrorIs(t, err, domain.ErrIndexingDisabled)

	count, err := svc.ItemCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, native.added)
}

func TestIndexService_IndexItem_EmptyID(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	err := svc.IndexItem(ctx, domain.SearchableItem{ID: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, svc.Stats().TotalItems)
}

func TestIndexService_IndexItem_NormalisesEmptyContentType(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	err := svc.IndexItem(ctx, domain.SearchableItem{ID: "raw"})
	require.NoError(t, err)

	saved, err := svc.GetItem(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, domain.ContentTypeGeneric, saved.ContentType)
	assert.Equal(t, 1, svc.Stats().OtherCount)
}

func TestIndexService_IndexItem_StoreError(t *testing.T) {
	storeErr := errors.New("disk on fire")
	svc := NewIndexService(&failingItemStore{err: storeErr}, nil)
	ctx := context.Background()

	err := svc.IndexItem(ctx, domain.NewSearchableItem("doc-001"))
	assert.ErrorIs(t, err, storeErr)
}

func TestIndexService_RemoveItem(t *testing.T) {
	svc, native := newTestIndex(t)
	ctx := context.Background()

	item := domain.NewSearchableItem("doc-001").WithContentType(domain.ContentTypeAudio)
	require.NoError(t, svc.IndexItem(ctx, item))

	removed, err := svc.RemoveItem(ctx, "doc-001")
	require.NoError(t, err)
	assert.True(t, removed)

	stats := svc.Stats()
	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.AudioCount)
	assert.Equal(t, []string{"doc-001"}, native.removed)

	_, err = svc.GetItem(ctx, "doc-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIndexService_RemoveItem_Missing(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	removed, err := svc.RemoveItem(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestIndexService_RemoveItem_WhileDisabled(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("doc-001")))
	svc.SetEnabled(false)

	// Disabling gates writes and searches, not removals
	removed, err := svc.RemoveItem(ctx, "doc-001")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestIndexService_RemoveItemsInDomain(t *testing.T) {
	svc, native := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("w-1").
		WithDomain("work").WithContentType(domain.ContentTypeDocument)))
	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("w-2").
		WithDomain("work").WithContentType(domain.ContentTypeImage)))
	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("p-1").
		WithDomain("personal").WithContentType(domain.ContentTypeDocument)))

	count, err := svc.RemoveItemsInDomain(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Counters decrement per removed item's own type
	stats := svc.Stats()
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.DocumentCount)
	assert.Zero(t, stats.ImageCount)

	remaining, err := svc.GetItem(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "personal", remaining.Domain)

	assert.Equal(t, []string{"work"}, native.domains)
}

func TestIndexService_RemoveItemsInDomain_NoMatches(t *testing.T) {
	svc, native := newTestIndex(t)
	ctx := context.Background()

	count, err := svc.RemoveItemsInDomain(ctx, "empty")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, native.domains)
}

func TestIndexService_RemoveExpiredItems(t *testing.T) {
	svc, native := newTestIndex(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("stale").
		WithContentType(domain.ContentTypeVideo).
		WithExpiration(now.Add(-time.Hour))))
	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("fresh").
		WithExpiration(now.Add(time.Hour))))
	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("eternal")))

	count, err := svc.RemoveExpiredItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.TotalItems)
	assert.Zero(t, stats.VideoCount)
	assert.Equal(t, []string{"stale"}, native.removed)

	// Items without an expiration date survive every sweep
	_, err = svc.GetItem(ctx, "eternal")
	assert.NoError(t, err)
}

func TestIndexService_RemoveExpiredItems_NothingDue(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("eternal")))

	count, err := svc.RemoveExpiredItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, svc.Stats().TotalItems)
}

func TestIndexService_ClearIndex(t *testing.T) {
	svc, native := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("a").
		WithContentType(domain.ContentTypeDocument)))
	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("b").
		WithContentType(domain.ContentTypeImage)))

	err := svc.ClearIndex(ctx)
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.TypeTotal())

	count, err := svc.ItemCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, native.clears)
}

func TestIndexService_GetItem_ReturnsCopy(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("doc-001").AddKeyword("alpha")))

	got, err := svc.GetItem(ctx, "doc-001")
	require.NoError(t, err)
	got.Keywords[0] = "mutated"

	again, err := svc.GetItem(ctx, "doc-001")
	require.NoError(t, err)
	assert.Equal(t, "alpha", again.Keywords[0])
}

func TestIndexService_StatConsistency(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()
	now := time.Now()

	// A mixed sequence of adds, replacements, removals and sweeps must
	// leave the counters agreeing with the stored items at every step.
	steps := []func(){
		func() {
			_ = svc.IndexItem(ctx, domain.NewSearchableItem("a").
				WithDomain("work").WithContentType(domain.ContentTypeDocument))
		},
		func() {
			_ = svc.IndexItem(ctx, domain.NewSearchableItem("b").
				WithDomain("work").WithContentType(domain.ContentTypeImage))
		},
		func() {
			_ = svc.IndexItem(ctx, domain.NewSearchableItem("c").
				WithDomain("personal").WithContentType(domain.ContentTypeAudio).
				WithExpiration(now.Add(-time.Minute)))
		},
		func() {
			// Replace a with a different type
			_ = svc.IndexItem(ctx, domain.NewSearchableItem("a").
				WithDomain("work").WithContentType(domain.ContentTypeVideo))
		},
		func() { _, _ = svc.RemoveItem(ctx, "b") },
		func() { _, _ = svc.RemoveExpiredItems(ctx) },
		func() {
			_ = svc.IndexItem(ctx, domain.NewSearchableItem("d").
				WithDomain("personal").WithContentType(domain.ContentTypeNote))
		},
		func() { _, _ = svc.RemoveItemsInDomain(ctx, "work") },
	}

	for n, step := range steps {
		step()

		stats := svc.Stats()
		count, err := svc.ItemCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats.TotalItems, stats.TypeTotal(), "step %d: type counters drifted", n)
		assert.Equal(t, stats.TotalItems, count, "step %d: total drifted from store", n)
	}
}

func TestIndexService_ReconcileStats_NoDrift(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("a").
		WithContentType(domain.ContentTypeDocument)))

	repaired, err := svc.ReconcileStats(ctx)
	require.NoError(t, err)
	assert.False(t, repaired)
}

func TestIndexService_ReconcileStats_RepairsDrift(t *testing.T) {
	svc, _ := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("a").
		WithContentType(domain.ContentTypeDocument)))

	// Force a drift the way a bug would
	svc.mu.Lock()
	svc.stats.TotalItems = 99
	svc.stats.OtherCount = 42
	svc.mu.Unlock()

	repaired, err := svc.ReconcileStats(ctx)
	require.NoError(t, err)
	assert.True(t, repaired)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.DocumentCount)
	assert.Zero(t, stats.OtherCount)
}

func TestIndexService_NativeFailureDoesNotFailEngine(t *testing.T) {
	native := newMockNativeIndex()
	native.addErr = errors.New("spotlight unavailable")
	native.removeErr = errors.New("spotlight unavailable")
	svc := NewIndexService(memory.NewItemStore(), native)
	ctx := context.Background()

	// Engine state advances even when the native mirror fails
	err := svc.IndexItem(ctx, domain.NewSearchableItem("doc-001"))
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Stats().TotalItems)

	removed, err := svc.RemoveItem(ctx, "doc-001")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestIndexService_NativeUnavailableIsSkipped(t *testing.T) {
	native := newMockNativeIndex()
	native.available = false
	svc := NewIndexService(memory.NewItemStore(), native)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("doc-001")))
	assert.Empty(t, native.added)
}

func TestIndexService_NilNativeIndex(t *testing.T) {
	svc := NewIndexService(memory.NewItemStore(), nil)
	ctx := context.Background()

	require.NoError(t, svc.IndexItem(ctx, domain.NewSearchableItem("doc-001")))
	require.NoError(t, svc.ClearIndex(ctx))
}

func TestIndexService_SetEnabled_Roundtrip(t *testing.T) {
	svc, _ := newTestIndex(t)

	assert.True(t, svc.Enabled())
	svc.SetEnabled(false)
	assert.False(t, svc.Enabled())
	svc.SetEnabled(true)
	assert.True(t, svc.Enabled())
}

func TestPlatformForOS_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		expected domain.Platform
	}{
		{name: "macos", goos: "darwin", expected: domain.PlatformSpotlight},
		{name: "ios", goos: "ios", expected: domain.PlatformSpotlight},
		{name: "android", goos: "android", expected: domain.PlatformAppSearch},
		{name: "windows", goos: "windows", expected: domain.PlatformWindowsSearch},
		{name: "linux", goos: "linux", expected: domain.PlatformUnknown},
		{name: "freebsd", goos: "freebsd", expected: domain.PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, platformForOS(tt.goos))
		})
	}
}
