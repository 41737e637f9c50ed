package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/adapters/driving/bridge"
	"github.com/portico-apps/searchkit/internal/core/domain"
)

var (
	searchLimit        int
	searchDomain       string
	searchType         string
	searchMinRelevance float64
	searchSort         string
	searchJSON         bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed items",
	Long: `Searches the index with case-insensitive substring matching across
title, description, keywords and content. Results are scored by which
fields matched; an empty query matches every item.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultMaxResults, "maximum number of results")
	searchCmd.Flags().StringVarP(&searchDomain, "domain", "d", "", "restrict results to one domain")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "restrict results to one content type")
	searchCmd.Flags().Float64Var(&searchMinRelevance, "min-relevance", 0, "drop results scoring below this threshold")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "requested sort order, e.g. relevance or title_asc")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	query := domain.NewSearchQuery(args[0]).
		WithDomain(searchDomain).
		WithMaxResults(searchLimit).
		WithMinRelevance(searchMinRelevance)

	if searchType != "" {
		contentType := domain.ContentType(searchType)
		if !contentType.IsValid() {
			return fmt.Errorf("unknown content type %q", searchType)
		}
		query = query.WithContentType(contentType)
	}
	if searchSort != "" {
		order := domain.SortOrder(searchSort)
		if !order.IsValid() {
			return fmt.Errorf("unknown sort order %q", searchSort)
		}
		query = query.WithSortBy(order)
	}

	ctx := context.Background()
	results, err := indexService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(bridge.SearchResponseFrom(results), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].TitleSnippet
		if title == "" {
			title = results[i].Item.ID
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].Relevance)
		if results[i].Item.Domain != "" {
			cmd.Printf("      Domain: %s\n", results[i].Item.Domain)
		}
		if results[i].ContentSnippet != "" {
			cmd.Printf("      %s\n", results[i].ContentSnippet)
		}
		cmd.Println()
	}

	return nil
}
