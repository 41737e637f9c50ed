package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Manage item domains",
	Long: `Inspect and purge logical item domains. A domain groups related
items, such as "messages" or "documents", and can be removed as a unit
when the host data behind it goes away.`,
}

var domainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List domains and their item counts",
	Args:  cobra.NoArgs,
	RunE:  runDomainList,
}

var domainPurgeCmd = &cobra.Command{
	Use:   "purge [domain]",
	Short: "Remove every item in a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainPurge,
}

func init() {
	domainCmd.AddCommand(domainListCmd)
	domainCmd.AddCommand(domainPurgeCmd)
	rootCmd.AddCommand(domainCmd)
}

func runDomainList(cmd *cobra.Command, _ []string) error {
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

	results, err := indexService.Search(ctx, domain.NewSearchQuery("").WithMaxResults(count))
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	counts := make(map[string]int)
	for i := range results {
		name := results[i].Item.Domain
		if name == "" {
			name = "(none)"
		}
		counts[name]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Println("Domains:")
	cmd.Println()
	for _, name := range names {
		cmd.Printf("  %-24s %d items\n", name, counts[name])
	}

	return nil
}

func runDomainPurge(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()
	removed, err := indexService.RemoveItemsInDomain(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to purge domain: %w", err)
	}

	if removed == 0 {
		cmd.Printf("No items found in domain %s.\n", args[0])
		return nil
	}

	cmd.Printf("Removed %d items from domain %s.\n", removed, args[0])
	return nil
}
