package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// ==================== Importer Tests ====================

func TestImportService_AllSucceed(t *testing.T) {
	index, _ := newTestIndex(t)
	importer := NewImportService(index)

	items := []domain.SearchableItem{
		domain.NewSearchableItem("a").WithContentType(domain.ContentTypeDocument),
		domain.NewSearchableItem("b").WithContentType(domain.ContentTypeImage),
		domain.NewSearchableItem("c"),
	}

	result := importer.Import(context.Background(), items)

	assert.Equal(t, domain.BatchStatusCompleted, result.Status)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Empty(t, result.ErrorMessage)
	assert.InDelta(t, 1.0, result.SuccessRate(), 1e-9)

	count, err := index.ItemCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestImportService_PartialFailure(t *testing.T) {
	index, _ := newTestIndex(t)
	importer := NewImportService(index)

	items := []domain.SearchableItem{
		domain.NewSearchableItem("a"),
		{ID: "   "}, // fails validation
		domain.NewSearchableItem("c"),
	}

	result := importer.Import(context.Background(), items)

	assert.Equal(t, domain.BatchStatusCompleted, result.Status)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Contains(t, result.ErrorMessage, "invalid input")

	// The failures do not block the items after them
	count, err := index.ItemCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportService_FirstErrorIsKept(t *testing.T) {
	index, _ := newTestIndex(t)
	importer := NewImportService(index)

	items := []domain.SearchableItem{
		{ID: ""},
		{ID: " "},
	}

	result := importer.Import(context.Background(), items)

	assert.Equal(t, 2, result.FailureCount)
	assert.Contains(t, result.ErrorMessage, "item :")
}

func TestImportService_AllFail(t *testing.T) {
	index, _ := newTestIndex(t)
	index.SetEnabled(false)
	importer := NewImportService(index)

	items := []domain.SearchableItem{
		domain.NewSearchableItem("a"),
		domain.NewSearchableItem("b"),
	}

	result := importer.Import(context.Background(), items)

	assert.Equal(t, domain.BatchStatusFailed, result.Status)
	assert.Zero(t, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	assert.Contains(t, result.ErrorMessage, "indexing is disabled")
	assert.Zero(t, result.SuccessRate())
}

func TestImportService_EmptyBatch(t *testing.T) {
	index, _ := newTestIndex(t)
	importer := NewImportService(index)

	result := importer.Import(context.Background(), nil)

	assert.Equal(t, domain.BatchStatusCompleted, result.Status)
	assert.Zero(t, result.TotalCount())
	assert.Zero(t, result.SuccessRate())
}

func TestImportService_RecordsDuration(t *testing.T) {
	index, _ := newTestIndex(t)
	importer := NewImportService(index)

	result := importer.Import(context.Background(), []domain.SearchableItem{
		domain.NewSearchableItem("a"),
	})

	assert.GreaterOrEqual(t, result.Duration.Nanoseconds(), int64(0))
}

func TestImportService_UpsertsWithinBatch(t *testing.T) {
	index, _ := newTestIndex(t)
	importer := NewImportService(index)

	items := []domain.SearchableItem{
		domain.NewSearchableItem("a").WithTitle("First"),
		domain.NewSearchableItem("a").WithTitle("Second"),
	}

	result := importer.Import(context.Background(), items)
	assert.Equal(t, 2, result.SuccessCount)

	// Both writes count as successes but only one item remains
	count, err := index.ItemCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	saved, err := index.GetItem(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Second", saved.Title)
}
