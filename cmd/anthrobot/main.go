// Command anthrobot serves the anthrobot morphology engine over MCP stdio
// and exposes the same tools for one-shot use from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"anthrobot/internal/config"
	"anthrobot/internal/logging"
	"anthrobot/internal/taxonomy"
	"anthrobot/internal/tools"
	"anthrobot/internal/tools/morpho"
)

var (
	// Global flags
	configPath string
	verbose    bool
	logJSON    bool

	// Loaded in PersistentPreRunE, shared by all subcommands.
	cfg      *config.Config
	registry *tools.Registry
)

var rootCmd = &cobra.Command{
	Use:   "anthrobot",
	Short: "Anthrobot morphology to visual parameter engine",
	Long: `anthrobot translates anthrobot morphology descriptions into
deterministic visual parameters: morphotype taxonomies, shape-to-movement
derivations, single-bot parameter bundles, and multi-entity scenes.

Run 'anthrobot serve' to expose the engine as an MCP stdio server, or use
the subcommands directly for one-shot queries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		if err := logging.Initialize(logging.Config{
			Level:      level,
			JSONFormat: logJSON || cfg.Logging.JSONFormat,
			Disabled:   cfg.Logging.DisabledSet(),
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		store, err := taxonomy.Load()
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
		logging.Get(logging.CategoryBoot).Debugf("taxonomy loaded: %d morphotypes, %d stages",
			len(store.Morphotypes()), len(store.Stages()))

		registry = tools.NewRegistry()
		morpho.NewSet(store).Register(registry)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "anthrobot.yaml", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
