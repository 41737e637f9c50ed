package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/adapters/driving/bridge"
	"github.com/portico-apps/searchkit/internal/core/domain"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage indexed items",
	Long:  `Index, inspect, list, and remove searchable items.`,
}

var itemIndexCmd = &cobra.Command{
	Use:   "index [id]",
	Short: "Add or replace an item in the index",
	Long: `Adds an item to the index, or replaces the existing item with the
same ID. Text fields beyond their length limits are truncated rather
than rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runItemIndex,
}

var itemGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show an indexed item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemGet,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an item from the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemRemove,
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all indexed items",
	Args:  cobra.NoArgs,
	RunE:  runItemList,
}

var itemClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every item from the index",
	RunE:  runItemClear,
}

// Flags for the index subcommand.
var (
	itemDomain      string
	itemTitle       string
	itemDescription string
	itemContent     string
	itemKeywords    []string
	itemType        string
	itemAttributes  []string
	itemURL         string
	itemRating      float64
	itemExpires     time.Duration
	itemFeatured    bool
)

// itemJSON switches the get subcommand to JSON output.
var itemJSON bool

func init() {
	itemIndexCmd.Flags().StringVarP(&itemDomain, "domain", "d", "", "logical domain the item belongs to")
	itemIndexCmd.Flags().StringVarP(&itemTitle, "title", "t", "", "display title")
	itemIndexCmd.Flags().StringVar(&itemDescription, "description", "", "short summary shown under the title")
	itemIndexCmd.Flags().StringVar(&itemContent, "content", "", "full-text body to search")
	itemIndexCmd.Flags().StringSliceVarP(&itemKeywords, "keyword", "k", nil, "keyword (repeatable)")
	itemIndexCmd.Flags().StringVar(&itemType, "type", "", "content type, e.g. document or image")
	itemIndexCmd.Flags().StringSliceVar(&itemAttributes, "attr", nil, "custom attribute as key=value (repeatable)")
	itemIndexCmd.Flags().StringVar(&itemURL, "url", "", "deep link opened when the item is activated")
	itemIndexCmd.Flags().Float64Var(&itemRating, "rating", 0, "quality rating between 0 and 5")
	itemIndexCmd.Flags().DurationVar(&itemExpires, "expires", 0, "drop the item from the index after this long, e.g. 24h")
	itemIndexCmd.Flags().BoolVar(&itemFeatured, "featured", false, "mark the item for prominent native display")

	itemGetCmd.Flags().BoolVar(&itemJSON, "json", false, "output the item as JSON")

	itemCmd.AddCommand(itemIndexCmd)
	itemCmd.AddCommand(itemGetCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemClearCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemIndex(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	item := domain.NewSearchableItem(args[0]).
		WithDomain(itemDomain).
		WithTitle(itemTitle).
		WithDescription(itemDescription).
		WithContent(itemContent).
		WithURL(itemURL).
		WithRating(itemRating).
		WithFeatured(itemFeatured)

	if len(itemKeywords) > 0 {
		item = item.WithKeywords(itemKeywords...)
	}
	if itemType != "" {
		contentType := domain.ContentType(itemType)
		if !contentType.IsValid() {
			return fmt.Errorf("unknown content type %q", itemType)
		}
		item = item.WithContentType(contentType)
	}
	if itemExpires > 0 {
		item = item.WithExpiration(time.Now().Add(itemExpires))
	}
	for _, raw := range itemAttributes {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid attribute %q, expected key=value", raw)
		}
		item = item.AddAttribute(domain.NewSearchAttribute(key, value))
	}

	ctx := context.Background()
	if err := indexService.IndexItem(ctx, item); err != nil {
		return fmt.Errorf("failed to index item: %w", err)
	}

	cmd.Printf("Indexed item %s.\n", item.ID)
	return nil
}

func runItemGet(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()
	item, err := indexService.GetItem(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	if itemJSON {
		data, err := json.MarshalIndent(bridge.ItemPayloadFrom(*item), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Item: %s\n\n", item.ID)
	cmd.Printf("  Title:       %s\n", item.Title)
	if item.Domain != "" {
		cmd.Printf("  Domain:      %s\n", item.Domain)
	}
	cmd.Printf("  Type:        %s\n", item.ContentType)
	if item.Description != "" {
		cmd.Printf("  Description: %s\n", item.Description)
	}
	if len(item.Keywords) > 0 {
		cmd.Printf("  Keywords:    %s\n", strings.Join(item.Keywords, ", "))
	}
	if item.URL != "" {
		cmd.Printf("  URL:         %s\n", item.URL)
	}
	if item.Rating > 0 {
		cmd.Printf("  Rating:      %.1f\n", item.Rating)
	}
	if item.Featured {
		cmd.Printf("  Featured:    yes\n")
	}
	cmd.Printf("  Created:     %s\n", item.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Modified:    %s\n", item.LastModified.Format("2006-01-02 15:04:05"))
	if !item.ExpirationDate.IsZero() {
		cmd.Printf("  Expires:     %s\n", item.ExpirationDate.Format("2006-01-02 15:04:05"))
	}

	if len(item.Attributes) > 0 {
		cmd.Println("\n  Attributes:")
		for _, attribute := range item.Attributes {
			cmd.Printf("    %s: %s\n", attribute.Key, attribute.Value)
		}
	}

	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()
	removed, err := indexService.RemoveItem(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	if !removed {
		cmd.Printf("Item %s was not indexed.\n", args[0])
		return nil
	}

	cmd.Printf("Removed item %s.\n", args[0])
	return nil
}

func runItemList(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()
	count, err := indexService.ItemCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}

	if count == 0 {
		cmd.Println("Index is empty.")
		return nil
	}
	if !indexService.Enabled() {
		cmd.Printf("Indexing is disabled; %d stored items are hidden from search.\n", count)
		return nil
	}

	// An empty query matches every item, so listing is a search with the
	// cap raised to the full item count.
	results, err := indexService.Search(ctx, domain.NewSearchQuery("").WithMaxResults(count))
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	cmd.Println("Indexed items:")
	cmd.Println()
	for i := range results {
		item := results[i].Item
		title := item.Title
		if title == "" {
			title = "(untitled)"
		}
		cmd.Printf("  %s\n", item.ID)
		cmd.Printf("    Title: %s\n", title)
		if item.Domain != "" {
			cmd.Printf("    Domain: %s\n", item.Domain)
		}
		cmd.Printf("    Type: %s\n", item.ContentType)
		cmd.Println()
	}

	cmd.Printf("Total: %d items\n", len(results))
	return nil
}

func runItemClear(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()
	count, err := indexService.ItemCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}

	if err := indexService.ClearIndex(ctx); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	cmd.Printf("Cleared %d items from the index.\n", count)
	return nil
}
