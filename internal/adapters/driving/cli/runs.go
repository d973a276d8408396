package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent build runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "maximum number of runs to show")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := ensureBudgetService(ctx); err != nil {
		return err
	}
	if runStore == nil {
		return errors.New("run store not configured")
	}

	runs, err := runStore.ListRuns(ctx, runsLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, r := range runs {
		cmd.Printf("%s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.ID)
		cmd.Printf("  seeds: %s\n", strings.Join(r.Seeds, ", "))
		cmd.Printf("  %d keywords in %d clusters (%d found), %s\n",
			r.KeywordCount, r.ClusterCount, r.TotalFound, r.Elapsed)
	}

	return nil
}
