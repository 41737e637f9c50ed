package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/adapters/driving/bridge"
)

var (
	statsVerify bool
	statsJSON   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Long: `Shows the item counters the index maintains alongside every
mutation. With --verify the counters are recomputed from the stored
items and repaired if they have drifted.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsVerify, "verify", false, "recompute counters from stored items and repair drift")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()

	if statsVerify {
		repaired, err := indexService.ReconcileStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to verify statistics: %w", err)
		}
		if repaired {
			cmd.Println("Statistics repaired: counters had drifted from the stored items.")
		} else {
			cmd.Println("Statistics verified: no drift.")
		}
		cmd.Println()
	}

	stats := indexService.Stats()

	if statsJSON {
		data, err := json.MarshalIndent(bridge.StatsPayloadFrom(stats), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	enabled := "yes"
	if !indexService.Enabled() {
		enabled = "no"
	}

	cmd.Println("Index Statistics")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Total items: %d\n", stats.TotalItems)
	cmd.Printf("  Documents:   %d\n", stats.DocumentCount)
	cmd.Printf("  Images:      %d\n", stats.ImageCount)
	cmd.Printf("  Audio:       %d\n", stats.AudioCount)
	cmd.Printf("  Video:       %d\n", stats.VideoCount)
	cmd.Printf("  Other:       %d\n", stats.OtherCount)
	cmd.Println()
	if !stats.LastUpdated.IsZero() {
		cmd.Printf("  Last updated: %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	cmd.Printf("  Indexing enabled: %s\n", enabled)
	cmd.Printf("  Platform: %s\n", indexService.Platform())

	return nil
}
