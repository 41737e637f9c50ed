package mcp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query        string  `json:"query" jsonschema:"the search query; an empty query matches every item"`
	Domain       string  `json:"domain,omitempty" jsonschema:"restrict results to one logical grouping"`
	ContentType  string  `json:"content_type,omitempty" jsonschema:"restrict results to one content type such as document or image"`
	Limit        int     `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	MinRelevance float64 `json:"min_relevance,omitempty" jsonschema:"drop results scoring below this relevance"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ItemID         string  `json:"item_id"`
	Title          string  `json:"title"`
	Domain         string  `json:"domain,omitempty"`
	ContentType    string  `json:"content_type"`
	Relevance      float64 `json:"relevance"`
	TitleSnippet   string  `json:"title_snippet,omitempty"`
	ContentSnippet string  `json:"content_snippet,omitempty"`
}

// ItemInput describes one item to index. It is shared by the index_item
// and import_items tools.
type ItemInput struct {
	ID          string            `json:"id" jsonschema:"unique identifier of the item; re-indexing the same id replaces the item"`
	Title       string            `json:"title,omitempty" jsonschema:"display title"`
	Description string            `json:"description,omitempty" jsonschema:"short summary shown under the title"`
	Content     string            `json:"content,omitempty" jsonschema:"full-text body searched alongside the metadata"`
	Domain      string            `json:"domain,omitempty" jsonschema:"logical grouping such as messages or documents"`
	ContentType string            `json:"content_type,omitempty" jsonschema:"content classification such as document or image (default generic)"`
	Keywords    []string          `json:"keywords,omitempty" jsonschema:"additional search terms"`
	Attributes  map[string]string `json:"attributes,omitempty" jsonschema:"custom key-value attributes"`
	URL         string            `json:"url,omitempty" jsonschema:"app-internal deep link opened on activation"`
	TTLSeconds  int               `json:"ttl_seconds,omitempty" jsonschema:"seconds until the item expires; omit for no expiry"`
}

// IndexItemOutput is the output schema for the index_item tool.
type IndexItemOutput struct {
	ID      string `json:"id"`
	Indexed bool   `json:"indexed"`
}

// RemoveItemInput is the input schema for the remove_item tool.
type RemoveItemInput struct {
	ID string `json:"id" jsonschema:"identifier of the item to remove"`
}

// RemoveItemOutput is the output schema for the remove_item tool.
type RemoveItemOutput struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// StatsInput is the input schema for the get_stats tool. It carries no
// parameters.
type StatsInput struct{}

// StatsOutput is the output schema for the get_stats tool.
type StatsOutput struct {
	TotalItems      int    `json:"total_items"`
	DocumentCount   int    `json:"document_count"`
	ImageCount      int    `json:"image_count"`
	AudioCount      int    `json:"audio_count"`
	VideoCount      int    `json:"video_count"`
	OtherCount      int    `json:"other_count"`
	IndexingEnabled bool   `json:"indexing_enabled"`
	Platform        string `json:"platform"`
}

// ImportInput is the input schema for the import_items tool.
type ImportInput struct {
	Items []ItemInput `json:"items" jsonschema:"the items to index as one batch"`
}

// ImportOutput is the output schema for the import_items tool.
type ImportOutput struct {
	SuccessCount int    `json:"success_count"`
	FailureCount int    `json:"failure_count"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	DurationMs   int64  `json:"duration_ms"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search across all indexed items",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index_item",
		Description: "Add or replace one item in the content index",
	}, s.handleIndexItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_item",
		Description: "Remove one item from the content index",
	}, s.handleRemoveItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_stats",
		Description: "Report index statistics and per-type item counts",
	}, s.handleStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "import_items",
		Description: "Index a batch of items in one operation",
	}, s.handleImport)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	query := domain.NewSearchQuery(input.Query)
	if input.Domain != "" {
		query = query.WithDomain(input.Domain)
	}
	if input.ContentType != "" {
		contentType := domain.ContentType(input.ContentType)
		if !contentType.IsValid() {
			return nil, SearchOutput{}, fmt.Errorf("unknown content type %q", input.ContentType)
		}
		query = query.WithContentType(contentType)
	}
	if input.Limit > 0 {
		query = query.WithMaxResults(input.Limit)
	}
	if input.MinRelevance > 0 {
		query = query.WithMinRelevance(input.MinRelevance)
	}

	results, err := s.ports.Index.Search(ctx, query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			ItemID:         results[i].Item.ID,
			Title:          results[i].Item.Title,
			Domain:         results[i].Item.Domain,
			ContentType:    results[i].Item.ContentType.String(),
			Relevance:      results[i].Relevance,
			TitleSnippet:   results[i].TitleSnippet,
			ContentSnippet: results[i].ContentSnippet,
		}
	}

	return nil, output, nil
}

// handleIndexItem handles the index_item tool invocation.
func (s *Server) handleIndexItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ItemInput,
) (*mcp.CallToolResult, IndexItemOutput, error) {
	item, err := itemFromInput(input)
	if err != nil {
		return nil, IndexItemOutput{}, err
	}

	if err := s.ports.Index.IndexItem(ctx, item); err != nil {
		return nil, IndexItemOutput{}, err
	}

	return nil, IndexItemOutput{ID: item.ID, Indexed: true}, nil
}

// handleRemoveItem handles the remove_item tool invocation.
func (s *Server) handleRemoveItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveItemInput,
) (*mcp.CallToolResult, RemoveItemOutput, error) {
	removed, err := s.ports.Index.RemoveItem(ctx, input.ID)
	if err != nil {
		return nil, RemoveItemOutput{}, err
	}

	return nil, RemoveItemOutput{ID: input.ID, Removed: removed}, nil
}

// handleStats handles the get_stats tool invocation.
func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	stats := s.ports.Index.Stats()

	output := StatsOutput{
		TotalItems:      stats.TotalItems,
		DocumentCount:   stats.DocumentCount,
		ImageCount:      stats.ImageCount,
		AudioCount:      stats.AudioCount,
		VideoCount:      stats.VideoCount,
		OtherCount:      stats.OtherCount,
		IndexingEnabled: s.ports.Index.Enabled(),
		Platform:        s.ports.Index.Platform().String(),
	}

	return nil, output, nil
}

// handleImport handles the import_items tool invocation.
func (s *Server) handleImport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ImportInput,
) (*mcp.CallToolResult, ImportOutput, error) {
	if s.ports.Importer == nil {
		return nil, ImportOutput{}, ErrImporterUnavailable
	}

	items := make([]domain.SearchableItem, 0, len(input.Items))
	for i := range input.Items {
		item, err := itemFromInput(input.Items[i])
		if err != nil {
			return nil, ImportOutput{}, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	result := s.ports.Importer.Import(ctx, items)

	output := ImportOutput{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		Status:       result.Status.String(),
		ErrorMessage: result.ErrorMessage,
		DurationMs:   result.Duration.Milliseconds(),
	}

	return nil, output, nil
}

// itemFromInput builds a searchable item from the tool input.
func itemFromInput(input ItemInput) (domain.SearchableItem, error) {
	item := domain.NewSearchableItem(input.ID).
		WithTitle(input.Title).
		WithDescription(input.Description).
		WithContent(input.Content).
		WithDomain(input.Domain).
		WithURL(input.URL).
		WithKeywords(input.Keywords...)

	if input.ContentType != "" {
		contentType := domain.ContentType(input.ContentType)
		if !contentType.IsValid() {
			return domain.SearchableItem{}, fmt.Errorf("unknown content type %q", input.ContentType)
		}
		item = item.WithContentType(contentType)
	}

	// Sort attribute keys so repeated imports build identical items
	keys := make([]string, 0, len(input.Attributes))
	for key := range input.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		item = item.AddAttribute(domain.NewSearchAttribute(key, input.Attributes[key]))
	}

	if input.TTLSeconds > 0 {
		expiry := time.Now().UTC().Add(time.Duration(input.TTLSeconds) * time.Second)
		item = item.WithExpiration(expiry)
	}

	return item, nil
}
