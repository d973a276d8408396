package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearpath-labs/semcore-cli/internal/core/services"
)

var (
	estimateSeeds  int
	estimateTarget int
	estimateSERP   bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a build without spending",
	Long: `Predicts the oracle cost of a semantic-core build and checks it
against the configured budget. Nothing is called and nothing is
recorded; the verdict is advisory.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().IntVar(&estimateSeeds, "seeds", 1, "number of seed phrases")
	estimateCmd.Flags().IntVarP(&estimateTarget, "target", "t", 0, "target keyword count (0 = default)")
	estimateCmd.Flags().BoolVar(&estimateSERP, "serp", true, "include SERP-based intent enrichment")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	if err := ensureBudgetService(cmd.Context()); err != nil {
		return err
	}
	if budgetGuard == nil {
		return errors.New("budget service not configured")
	}

	est := services.EstimateCore(estimateSeeds, estimateTarget, estimateSERP)
	decision := budgetGuard.CanProceed(est.Total, estimateTarget)

	cmd.Println("Estimated build cost:")
	cmd.Printf("  Expansion: %s\n", services.FormatCost(est.Expansion))
	cmd.Printf("  Metrics:   %s\n", services.FormatCost(est.Metrics))
	if estimateSERP {
		cmd.Printf("  SERP:      %s\n", services.FormatCost(est.SERP))
	}
	cmd.Printf("  Total:     %s\n", services.FormatCost(est.Total))
	cmd.Println()

	switch {
	case decision.Allowed && decision.Warning != "":
		cmd.Printf("Within budget. Warning: %s\n", decision.Warning)
	case decision.Allowed:
		cmd.Println("Within budget.")
	default:
		return fmt.Errorf("over budget: %s", decision.Reason)
	}

	return nil
}
