package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/logger"
)

// Relevance contributions per matching field. The additive maximum is
// 1.0. Keywords contribute at most once no matter how many match, and
// attributes, rating and featured flags contribute nothing; richer
// ranking would change scores hosts already depend on.
const (
	titleWeight       = 0.5
	descriptionWeight = 0.3
	keywordWeight     = 0.1
	contentWeight     = 0.1
)

// Search scans live items in insertion order, applies the hard domain
// and content-type filters, scores what remains and returns up to the
// query's limit of results. No matches is a normal outcome, never an
// error, and a disabled index reports no results at all.
//
// The requested sort order is carried on the query but results keep scan
// order; consumers that need a presentation order apply it themselves.
func (s *IndexService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Search")
	logger.Debug("Query: %q", query.Query)

	if !s.enabled {
		logger.Info("Index disabled, returning no results")
		return []domain.SearchResult{}, nil
	}

	needle := strings.ToLower(query.Query)
	limit := query.Limit()
	logger.Debug("Limit: %d, MinRelevance: %.2f", limit, query.MinRelevance)
	if query.Domain != "" {
		logger.Debug("Domain filter: %s", query.Domain)
	}
	if query.ContentType != "" {
		logger.Debug("Content type filter: %s", query.ContentType)
	}

	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	logger.Debug("Scanning %d items", len(items))

	results := make([]domain.SearchResult, 0, limit)
	for _, item := range items {
		// Hard filters are applied before any scoring work
		if query.Domain != "" && item.Domain != query.Domain {
			continue
		}
		if query.ContentType != "" && item.ContentType != query.ContentType {
			continue
		}

		relevance := scoreItem(item, needle)
		if relevance <= 0 || relevance < query.MinRelevance {
			continue
		}

		results = append(results, domain.SearchResult{
			Item:           item,
			Relevance:      relevance,
			TitleSnippet:   item.Title,
			ContentSnippet: item.Description,
		})
		if len(results) >= limit {
			break
		}
	}

	logger.Info("Final results: %d", len(results))
	logger.Timing("search", start)
	return results, nil
}

// scoreItem computes the additive relevance of one item against an
// already-lowercased query using substring containment.
func scoreItem(item domain.SearchableItem, needle string) float64 {
	var score float64

	if strings.Contains(strings.ToLower(item.Title), needle) {
		score += titleWeight
	}
	if strings.Contains(strings.ToLower(item.Description), needle) {
		score += descriptionWeight
	}
	for _, keyword := range item.Keywords {
		if strings.Contains(strings.ToLower(keyword), needle) {
			score += keywordWeight
			break
		}
	}
	if strings.Contains(strings.ToLower(item.Content), needle) {
		score += contentWeight
	}

	return score
}
