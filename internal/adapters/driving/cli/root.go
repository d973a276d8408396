// Package cli is the cobra command surface of semcore. Services are
// wired lazily per command, so metadata commands work without oracle
// credentials or a writable data directory.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driven"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driving"
	"github.com/clearpath-labs/semcore-cli/internal/core/services"
	"github.com/clearpath-labs/semcore-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by ensureBudgetService/ensureCoreService, or by
// tests directly.
var (
	coreService   driving.SemanticCoreService
	budgetService driving.BudgetService
	budgetGuard   *services.BudgetGuard
	runStore      driven.RunStore
)

var (
	verbose   bool
	configDir string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "semcore",
	Short: "Build semantic keyword cores from seed phrases",
	Long: `Semcore expands seed phrases into a deduplicated, budget-bounded
keyword set via the DataForSEO oracle, classifies search intent, and
groups the result into semantic clusters.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.semcore)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.semcore/data)")
}

// Execute runs the root command and releases wired resources.
func Execute() error {
	defer closeStore()
	return rootCmd.Execute()
}
