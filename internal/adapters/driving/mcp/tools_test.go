package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mock := &mockIndex{
			results: []domain.SearchResult{
				{
					Item: domain.NewSearchableItem("doc-1").
						WithTitle("Quarterly Report").
						WithDomain("documents").
						WithContentType(domain.ContentTypeDocument),
					Relevance:      0.8,
					TitleSnippet:   "Quarterly Report",
					ContentSnippet: "Figures for the quarter",
				},
			},
		}

		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "report", Limit: 10}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "doc-1", output.Results[0].ItemID)
		assert.Equal(t, "Quarterly Report", output.Results[0].Title)
		assert.Equal(t, "documents", output.Results[0].Domain)
		assert.Equal(t, "document", output.Results[0].ContentType)
		assert.Equal(t, 0.8, output.Results[0].Relevance)
		assert.Equal(t, "Figures for the quarter", output.Results[0].ContentSnippet)
	})

	t.Run("applies filters to the query", func(t *testing.T) {
		mock := &mockIndex{}
		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{
			Query:        "minutes",
			Domain:       "notes",
			ContentType:  "note",
			Limit:        5,
			MinRelevance: 0.4,
		}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "minutes", mock.gotQuery.Query)
		assert.Equal(t, "notes", mock.gotQuery.Domain)
		assert.Equal(t, domain.ContentTypeNote, mock.gotQuery.ContentType)
		assert.Equal(t, 5, mock.gotQuery.MaxResults)
		assert.Equal(t, 0.4, mock.gotQuery.MinRelevance)
	})

	t.Run("default limit is applied", func(t *testing.T) {
		mock := &mockIndex{}
		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "test", Limit: 0}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, domain.DefaultMaxResults, mock.gotQuery.MaxResults)
	})

	t.Run("rejects unknown content type", func(t *testing.T) {
		ports := &Ports{Index: &mockIndex{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "test", ContentType: "hologram"}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown content type "hologram"`)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mock := &mockIndex{
			err: errors.New("search failed"),
		}

		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "test"}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleIndexItem(t *testing.T) {
	ctx := context.Background()

	t.Run("indexes the item", func(t *testing.T) {
		mock := &mockIndex{}
		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ItemInput{
			ID:          "doc-100",
			Title:       "Launch Plan",
			Description: "Rollout schedule",
			Domain:      "documents",
			ContentType: "document",
			Keywords:    []string{"launch", "rollout"},
			Attributes:  map[string]string{"author": "Dana"},
		}
		_, output, err := server.handleIndexItem(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "doc-100", output.ID)
		assert.True(t, output.Indexed)

		assert.Equal(t, "Launch Plan", mock.gotItem.Title)
		assert.Equal(t, "documents", mock.gotItem.Domain)
		assert.Equal(t, domain.ContentTypeDocument, mock.gotItem.ContentType)
		assert.Equal(t, []string{"launch", "rollout"}, mock.gotItem.Keywords)
		require.Len(t, mock.gotItem.Attributes, 1)
		assert.Equal(t, "author", mock.gotItem.Attributes[0].Key)
		assert.True(t, mock.gotItem.Attributes[0].Searchable)
	})

	t.Run("applies ttl as an expiration date", func(t *testing.T) {
		mock := &mockIndex{}
		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ItemInput{ID: "doc-101", TTLSeconds: 3600}
		_, _, err = server.handleIndexItem(ctx, nil, input)

		require.NoError(t, err)
		assert.WithinDuration(t,
			time.Now().UTC().Add(time.Hour), mock.gotItem.ExpirationDate, time.Minute)
	})

	t.Run("no ttl means no expiry", func(t *testing.T) {
		mock := &mockIndex{}
		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ItemInput{ID: "doc-102"}
		_, _, err = server.handleIndexItem(ctx, nil, input)

		require.NoError(t, err)
		assert.True(t, mock.gotItem.ExpirationDate.IsZero())
	})

	t.Run("rejects unknown content type", func(t *testing.T) {
		ports := &Ports{Index: &mockIndex{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ItemInput{ID: "doc-103", ContentType: "hologram"}
		_, _, err = server.handleIndexItem(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown content type "hologram"`)
	})

	t.Run("returns error when indexing is disabled", func(t *testing.T) {
		mock := &mockIndex{
			err: domain.ErrIndexingDisabled,
		}

		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ItemInput{ID: "doc-104"}
		_, _, err = server.handleIndexItem(ctx, nil, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrIndexingDisabled)
	})
}

func TestServer_handleRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("reports removal", func(t *testing.T) {
		mock := &mockIndex{removed: true}
		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := RemoveItemInput{ID: "doc-1"}
		_, output, err := server.handleRemoveItem(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "doc-1", output.ID)
		assert.True(t, output.Removed)
	})

	t.Run("reports missing item", func(t *testing.T) {
		mock := &mockIndex{removed: false}
		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := RemoveItemInput{ID: "missing"}
		_, output, err := server.handleRemoveItem(ctx, nil, input)

		require.NoError(t, err)
		assert.False(t, output.Removed)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockIndex{
			err: errors.New("storage error"),
		}

		ports := &Ports{Index: mock}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := RemoveItemInput{ID: "doc-1"}
		_, _, err = server.handleRemoveItem(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage error")
	})
}

func TestServer_handleStats(t *testing.T) {
	ctx := context.Background()

	mock := &mockIndex{
		stats: domain.IndexStats{
			TotalItems:    5,
			DocumentCount: 2,
			ImageCount:    1,
			OtherCount:    2,
		},
		enabled:  true,
		platform: domain.PlatformSpotlight,
	}

	ports := &Ports{Index: mock}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleStats(ctx, nil, StatsInput{})

	require.NoError(t, err)
	assert.Equal(t, 5, output.TotalItems)
	assert.Equal(t, 2, output.DocumentCount)
	assert.Equal(t, 1, output.ImageCount)
	assert.Equal(t, 2, output.OtherCount)
	assert.True(t, output.IndexingEnabled)
	assert.Equal(t, "spotlight", output.Platform)
}

func TestServer_handleImport(t *testing.T) {
	ctx := context.Background()

	t.Run("imports a batch", func(t *testing.T) {
		importer := &mockImporter{
			result: domain.BatchResult{
				SuccessCount: 2,
				FailureCount: 0,
				Status:       domain.BatchStatusCompleted,
				Duration:     1500 * time.Millisecond,
			},
		}

		ports := &Ports{Index: &mockIndex{}, Importer: importer}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ImportInput{
			Items: []ItemInput{
				{ID: "doc-1", Title: "First"},
				{ID: "doc-2", Title: "Second"},
			},
		}
		_, output, err := server.handleImport(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.SuccessCount)
		assert.Equal(t, 0, output.FailureCount)
		assert.Equal(t, "completed", output.Status)
		assert.Equal(t, int64(1500), output.DurationMs)
		require.Len(t, importer.gotItems, 2)
		assert.Equal(t, "doc-1", importer.gotItems[0].ID)
	})

	t.Run("reports batch failures", func(t *testing.T) {
		importer := &mockImporter{
			result: domain.BatchResult{
				SuccessCount: 1,
				FailureCount: 1,
				Status:       domain.BatchStatusCompleted,
				ErrorMessage: "item doc-2: item id is required",
			},
		}

		ports := &Ports{Index: &mockIndex{}, Importer: importer}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ImportInput{
			Items: []ItemInput{{ID: "doc-1"}, {ID: "doc-2"}},
		}
		_, output, err := server.handleImport(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.FailureCount)
		assert.Contains(t, output.ErrorMessage, "doc-2")
	})

	t.Run("nil importer returns error", func(t *testing.T) {
		ports := &Ports{Index: &mockIndex{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ImportInput{Items: []ItemInput{{ID: "doc-1"}}}
		_, _, err = server.handleImport(ctx, nil, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrImporterUnavailable)
	})

	t.Run("rejects bad item in batch", func(t *testing.T) {
		ports := &Ports{Index: &mockIndex{}, Importer: &mockImporter{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ImportInput{
			Items: []ItemInput{
				{ID: "doc-1"},
				{ID: "doc-2", ContentType: "hologram"},
			},
		}
		_, _, err = server.handleImport(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 1:")
	})
}
