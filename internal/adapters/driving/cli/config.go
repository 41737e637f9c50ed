package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/portico-apps/searchkit/internal/adapters/driven/config/file"
	"github.com/portico-apps/searchkit/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage engine configuration",
	Long: `View and change the engine settings stored in the searchkit config
file. Settings are read when the engine starts, so changes apply to the
next invocation.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Switch indexing on",
	RunE:  runConfigEnable,
}

var configDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Switch indexing off",
	Long: `Switches indexing off. While disabled, new items are rejected and
searches report no results; items already stored are kept.`,
	RunE: runConfigDisable,
}

var configWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive configuration wizard",
	Long:  `Walk through the engine settings step by step.`,
	RunE:  runConfigWizard,
}

// configKeys are the settings the set subcommand accepts.
var configKeys = []string{
	file.KeyIndexEnabled,
	file.KeySearchMaxResults,
	file.KeySearchMinRelevance,
	file.KeyMirrorEnabled,
	file.KeyMaintenanceEnabled,
	file.KeySweepMinutes,
	file.KeyStatsCheckMinutes,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEnableCmd)
	configCmd.AddCommand(configDisableCmd)
	configCmd.AddCommand(configWizardCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings := file.LoadSettings(configStore)

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Index]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.IndexEnabled))
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Max results: %d\n", settings.MaxResults)
	cmd.Printf("  Min relevance: %.2f\n", settings.MinRelevance)
	cmd.Println()

	cmd.Println("[Mirror]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.MirrorEnabled))
	cmd.Println()

	cmd.Println("[Maintenance]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Maintenance.Enabled))
	sweep := settings.Maintenance.GetTaskConfig(domain.TaskIDExpirySweep)
	check := settings.Maintenance.GetTaskConfig(domain.TaskIDStatsCheck)
	cmd.Printf("  Expiry sweep interval: %s\n", sweep.Interval)
	cmd.Printf("  Stats check interval: %s\n", check.Interval)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	known := false
	for _, k := range configKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown setting key %q, valid keys: %s", key, strings.Join(configKeys, ", "))
	}

	value := parseConfigValue(args[1])
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func runConfigEnable(cmd *cobra.Command, _ []string) error {
	return setIndexingEnabled(cmd, true)
}

func runConfigDisable(cmd *cobra.Command, _ []string) error {
	return setIndexingEnabled(cmd, false)
}

func setIndexingEnabled(cmd *cobra.Command, enabled bool) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(file.KeyIndexEnabled, enabled); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	if indexService != nil {
		indexService.SetEnabled(enabled)
	}

	if enabled {
		cmd.Println("Indexing enabled.")
	} else {
		cmd.Println("Indexing disabled. Stored items are kept but hidden from search.")
	}
	return nil
}

func runConfigWizard(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("SearchKit Configuration Wizard")
	cmd.Println("==============================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)
	settings := file.LoadSettings(configStore)

	// Step 1: Indexing
	cmd.Println("Step 1: Indexing")
	cmd.Println("----------------")
	cmd.Printf("Enable indexing? (y/n) [%s]: ", yesNo(settings.IndexEnabled))
	indexEnabled := parseBoolInput(readLine(reader), settings.IndexEnabled)
	if err := configStore.Set(file.KeyIndexEnabled, indexEnabled); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	cmd.Println()

	// Step 2: Search defaults
	cmd.Println("Step 2: Search Defaults")
	cmd.Println("-----------------------")
	cmd.Printf("Maximum results per search [%d]: ", settings.MaxResults)
	maxResults := parsePositiveInt(readLine(reader), settings.MaxResults)
	if err := configStore.Set(file.KeySearchMaxResults, int64(maxResults)); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	cmd.Printf("Minimum relevance threshold [%.2f]: ", settings.MinRelevance)
	minRelevance := parseNonNegativeFloat(readLine(reader), settings.MinRelevance)
	if err := configStore.Set(file.KeySearchMinRelevance, minRelevance); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	cmd.Println()

	// Step 3: Platform mirror
	cmd.Println("Step 3: Platform Mirror")
	cmd.Println("-----------------------")
	cmd.Printf("Mirror items to the platform search service? (y/n) [%s]: ", yesNo(settings.MirrorEnabled))
	mirrorEnabled := parseBoolInput(readLine(reader), settings.MirrorEnabled)
	if err := configStore.Set(file.KeyMirrorEnabled, mirrorEnabled); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	cmd.Println()

	// Step 4: Maintenance
	cmd.Println("Step 4: Maintenance")
	cmd.Println("-------------------")
	cmd.Printf("Enable background maintenance? (y/n) [%s]: ", yesNo(settings.Maintenance.Enabled))
	maintenanceEnabled := parseBoolInput(readLine(reader), settings.Maintenance.Enabled)
	if err := configStore.Set(file.KeyMaintenanceEnabled, maintenanceEnabled); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	if maintenanceEnabled {
		sweep := settings.Maintenance.GetTaskConfig(domain.TaskIDExpirySweep)
		minutes := int(sweep.Interval.Minutes())
		cmd.Printf("Expiry sweep interval in minutes [%d]: ", minutes)
		minutes = parsePositiveInt(readLine(reader), minutes)
		if err := configStore.Set(file.KeySweepMinutes, int64(minutes)); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
	}
	cmd.Println()

	cmd.Println("Configuration saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseConfigValue keeps native TOML types in the store: booleans and
// numbers are stored as such, everything else as a string.
func parseConfigValue(raw string) any {
	if val, err := strconv.ParseBool(raw); err == nil {
		return val
	}
	if val, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return val
	}
	if val, err := strconv.ParseFloat(raw, 64); err == nil {
		return val
	}
	return raw
}

func parseBoolInput(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "":
		return defaultVal
	case "y", "yes", "true", "1":
		return true
	case "n", "no", "false", "0":
		return false
	default:
		return defaultVal
	}
}

func parsePositiveInt(input string, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 {
		return defaultVal
	}
	return val
}

func parseNonNegativeFloat(input string, defaultVal float64) float64 {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.ParseFloat(input, 64)
	if err != nil || val < 0 {
		return defaultVal
	}
	return val
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
