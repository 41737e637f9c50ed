package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for SearchKit resources.
	uriScheme = "searchkit://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for index statistics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Index statistics and per-type item counts",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// Static resource listing every indexed item.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "items",
		Name:        "items",
		Description: "List of all indexed items",
		MIMEType:    "application/json",
	}, s.handleItemsResource)

	// Template for a single item.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{itemId}",
		Name:        "item",
		Description: "Full record of a specific indexed item",
		MIMEType:    "application/json",
	}, s.handleItemResource)

	// Template for the items of one domain.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "domains/{domainName}/items",
		Name:        "domain-items",
		Description: "Items indexed in a specific domain",
		MIMEType:    "application/json",
	}, s.handleDomainItemsResource)
}

// handleStatsResource returns the current index statistics.
func (s *Server) handleStatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Index.Stats()

	type statsInfo struct {
		TotalItems      int    `json:"total_items"`
		DocumentCount   int    `json:"document_count"`
		ImageCount      int    `json:"image_count"`
		AudioCount      int    `json:"audio_count"`
		VideoCount      int    `json:"video_count"`
		OtherCount      int    `json:"other_count"`
		LastUpdated     string `json:"last_updated,omitempty"`
		IndexingEnabled bool   `json:"indexing_enabled"`
		Platform        string `json:"platform"`
	}

	info := statsInfo{
		TotalItems:      stats.TotalItems,
		DocumentCount:   stats.DocumentCount,
		ImageCount:      stats.ImageCount,
		AudioCount:      stats.AudioCount,
		VideoCount:      stats.VideoCount,
		OtherCount:      stats.OtherCount,
		IndexingEnabled: s.ports.Index.Enabled(),
		Platform:        s.ports.Index.Platform().String(),
	}
	if !stats.LastUpdated.IsZero() {
		info.LastUpdated = stats.LastUpdated.Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleItemsResource returns a list of every indexed item.
func (s *Server) handleItemsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return s.listItems(ctx, req, "")
}

// handleDomainItemsResource returns the items of one domain.
func (s *Server) handleDomainItemsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract domainName from URI: searchkit://domains/{domainName}/items
	domainName := extractDomainName(req.Params.URI)
	if domainName == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return s.listItems(ctx, req, domainName)
}

// listItems renders an item listing, optionally filtered to one domain.
// An empty query matches every item, so listing is a search with the cap
// raised to the full item count.
func (s *Server) listItems(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
	domainName string,
) (*mcp.ReadResourceResult, error) {
	count, err := s.ports.Index.ItemCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting items: %w", err)
	}

	var results []domain.SearchResult
	if count > 0 {
		query := domain.NewSearchQuery("").WithMaxResults(count)
		if domainName != "" {
			query = query.WithDomain(domainName)
		}
		results, err = s.ports.Index.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("listing items: %w", err)
		}
	}

	// Build simplified item list.
	type itemInfo struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Domain      string `json:"domain"`
		ContentType string `json:"content_type"`
	}

	infos := make([]itemInfo, len(results))
	for i := range results {
		infos[i] = itemInfo{
			ID:          results[i].Item.ID,
			Title:       results[i].Item.Title,
			Domain:      results[i].Item.Domain,
			ContentType: results[i].Item.ContentType.String(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling items: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleItemResource returns the full record of a specific item.
func (s *Server) handleItemResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract itemId from URI: searchkit://items/{itemId}
	itemID := extractItemID(req.Params.URI)
	if itemID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	item, err := s.ports.Index.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}

	type itemDetail struct {
		ID          string   `json:"id"`
		Title       string   `json:"title,omitempty"`
		Description string   `json:"description,omitempty"`
		Content     string   `json:"content,omitempty"`
		Domain      string   `json:"domain,omitempty"`
		ContentType string   `json:"content_type"`
		Keywords    []string `json:"keywords,omitempty"`
		URL         string   `json:"url,omitempty"`
		ExpiresAt   string   `json:"expires_at,omitempty"`
	}

	detail := itemDetail{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Content,
		Domain:      item.Domain,
		ContentType: item.ContentType.String(),
		Keywords:    item.Keywords,
		URL:         item.URL,
	}
	if !item.ExpirationDate.IsZero() {
		detail.ExpiresAt = item.ExpirationDate.Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling item: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractItemID extracts the item ID from a URI like searchkit://items/{itemId}.
func extractItemID(uri string) string {
	const prefix = uriScheme + "items/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

// extractDomainName extracts the domain name from a URI like
// searchkit://domains/{domainName}/items.
func extractDomainName(uri string) string {
	const prefix = uriScheme + "domains/"
	const suffix = "/items"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
