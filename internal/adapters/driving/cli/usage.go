package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/services"
)

var (
	usageResetDaily   bool
	usageResetMonthly bool
	usageJSON         bool
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show oracle spend against the configured budget",
	Long: `Shows today's and this month's recorded spend against the budget
limits.

The ledger never resets itself: --reset-daily and --reset-monthly
stand in for the external scheduler that would normally trigger the
resets at midnight and on the first of the month.`,
	RunE: runUsage,
}

func init() {
	usageCmd.Flags().BoolVar(&usageResetDaily, "reset-daily", false, "zero the daily counter")
	usageCmd.Flags().BoolVar(&usageResetMonthly, "reset-monthly", false, "zero the monthly counter and request count")
	usageCmd.Flags().BoolVar(&usageJSON, "json", false, "output the snapshot as JSON")
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := ensureBudgetService(ctx); err != nil {
		return err
	}
	if budgetService == nil {
		return errors.New("budget service not configured")
	}

	if usageResetDaily {
		if err := budgetService.ResetDaily(ctx); err != nil {
			return fmt.Errorf("daily reset failed: %w", err)
		}
		cmd.Println("Daily counter reset.")
	}
	if usageResetMonthly {
		if err := budgetService.ResetMonthly(ctx); err != nil {
			return fmt.Errorf("monthly reset failed: %w", err)
		}
		cmd.Println("Monthly counter reset.")
	}

	stats := budgetService.Usage()

	if usageJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal usage: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Oracle usage:")
	printWindow(cmd, "Today", stats.Today)
	printWindow(cmd, "Month", stats.Month)
	cmd.Printf("  Requests: %d\n", stats.TotalRequests)
	return nil
}

func printWindow(cmd *cobra.Command, label string, w domain.WindowUsage) {
	cmd.Printf("  %-6s %s of %s (%.1f%%), %s remaining\n",
		label+":", services.FormatCost(w.Used), services.FormatCost(w.Limit),
		w.Percent, services.FormatCost(w.Remaining))
}
