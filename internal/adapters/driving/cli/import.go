package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/adapters/driving/bridge"
	"github.com/portico-apps/searchkit/internal/core/domain"
)

var importJSON bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Bulk index items from a JSON manifest",
	Long: `Indexes every item in a JSON manifest. The manifest carries the same
item JSON the embedding bridge accepts:

  {
    "items": [
      {"id": "doc-001", "domain": "documents", "title": "Quarterly Report"}
    ]
  }

Items that fail are counted in the report; one bad record never aborts
the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importJSON, "json", false, "output the batch report as JSON")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importerService == nil {
		return errors.New("importer service not configured")
	}

	ctx := context.Background()
	result, err := importManifest(ctx, args[0])
	if err != nil {
		return err
	}

	if importJSON {
		data, err := json.MarshalIndent(bridge.BatchPayloadFrom(result), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batch report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printBatchResult(cmd, result)
	return nil
}

// importManifest reads a manifest file and feeds its items through the
// importer. Shared by the import and watch commands.
func importManifest(ctx context.Context, path string) (domain.BatchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.BatchResult{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest struct {
		Items []bridge.ItemPayload `json:"items"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return domain.BatchResult{}, fmt.Errorf("failed to parse manifest: %w", err)
	}

	items := make([]domain.SearchableItem, len(manifest.Items))
	for n := range manifest.Items {
		items[n] = manifest.Items[n].ToDomain()
	}

	return importerService.Import(ctx, items), nil
}

func printBatchResult(cmd *cobra.Command, result domain.BatchResult) {
	cmd.Printf("Batch %s: %d indexed, %d failed (took %s)\n",
		result.Status, result.SuccessCount, result.FailureCount,
		result.Duration.Round(time.Millisecond))
	if result.ErrorMessage != "" {
		cmd.Printf("First error: %s\n", result.ErrorMessage)
	}
}
