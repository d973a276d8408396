package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/services"
	"github.com/clearpath-labs/semcore-cli/internal/export"
	"github.com/clearpath-labs/semcore-cli/internal/logger"
)

// clusterPreviewSize caps the members printed per cluster in table
// output. Full membership goes to --json or --csv.
const clusterPreviewSize = 5

var (
	buildLanguage      string
	buildLocation      int
	buildLocationName  string
	buildTarget        int
	buildCompetitor    string
	buildMinVolume     int
	buildMaxDifficulty int
	buildJSON          bool
	buildCSV           string
)

var buildCmd = &cobra.Command{
	Use:   "build <seed>...",
	Short: "Build a semantic core from seed phrases",
	Long: `Expands 1-5 seed phrases into a keyword set, tops it up with related
and competitor keywords when below target, classifies search intent
for the highest-volume candidates, and clusters the result.

Every oracle call is checked against the configured budget first and
recorded with its actual billed cost afterwards.`,
	Args: cobra.RangeArgs(domain.MinSeeds, domain.MaxSeeds),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildLanguage, "language", "l", "en", "language code for all lookups")
	buildCmd.Flags().IntVar(&buildLocation, "location", 2840, "numeric location code (2840 = United States)")
	buildCmd.Flags().StringVar(&buildLocationName, "location-name", "", `named location (e.g. "United States"), overrides --location`)
	buildCmd.Flags().IntVarP(&buildTarget, "target", "t", domain.DefaultTargetSize, "target keyword count")
	buildCmd.Flags().StringVar(&buildCompetitor, "competitor", "", "competitor domain to mine when below target")
	buildCmd.Flags().IntVar(&buildMinVolume, "min-volume", 10, "drop keywords below this monthly search volume")
	buildCmd.Flags().IntVar(&buildMaxDifficulty, "max-difficulty", 50, "drop keywords above this difficulty (0 disables)")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "output the result as JSON")
	buildCmd.Flags().StringVar(&buildCSV, "csv", "", "also write clusters to this CSV file")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := ensureCoreService(ctx); err != nil {
		return err
	}

	language := buildLanguage
	location := buildLocation
	if buildLocationName != "" {
		loc, ok := domain.LocationByName(buildLocationName)
		if !ok {
			return fmt.Errorf("%w: unknown location %q", domain.ErrInvalidInput, buildLocationName)
		}
		location = loc.Code
		// The named location carries its default language unless the
		// user picked one explicitly.
		if !cmd.Flags().Changed("language") {
			language = loc.Language
		}
	}

	req := domain.CoreRequest{
		Seeds: args,
		Locale: domain.Locale{
			LanguageCode: language,
			LocationCode: location,
		},
		TargetSize:       buildTarget,
		CompetitorDomain: buildCompetitor,
		Filters: &domain.QualityFilters{
			MinSearchVolume: buildMinVolume,
			MaxDifficulty:   buildMaxDifficulty,
		},
	}

	result, err := coreService.BuildCore(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrBudgetExceeded) {
			return fmt.Errorf("build blocked by budget: %w", err)
		}
		return fmt.Errorf("build failed: %w", err)
	}

	saveRunRecord(cmd, req, result)

	if buildCSV != "" {
		if err := writeClusterCSV(buildCSV, result.Clusters); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		cmd.Printf("Clusters written to %s\n", buildCSV)
	}

	if buildJSON {
		return outputBuildJSON(cmd, result)
	}
	return outputBuildTable(cmd, result)
}

// saveRunRecord persists run accounting. Best effort: a store failure
// must not discard a result the user already paid for.
func saveRunRecord(cmd *cobra.Command, req domain.CoreRequest, result *domain.CoreResult) {
	if runStore == nil {
		return
	}

	record := domain.RunRecord{
		ID:           result.RunID,
		Seeds:        req.Seeds,
		LanguageCode: req.Locale.LanguageCode,
		LocationCode: req.Locale.LocationCode,
		TargetSize:   req.TargetSize,
		TotalFound:   result.TotalFound,
		KeywordCount: len(result.Keywords),
		ClusterCount: len(result.Clusters),
		Elapsed:      result.ProcessingTime,
	}
	if err := runStore.SaveRun(cmd.Context(), record); err != nil {
		logger.Warn("Failed to save run record: %v", err)
	}
}

func writeClusterCSV(path string, clusters []domain.Cluster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteClusters(f, clusters); err != nil {
		f.Close() //nolint:errcheck // Write error takes precedence
		return err
	}
	return f.Close()
}

func outputBuildJSON(cmd *cobra.Command, result *domain.CoreResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputBuildTable(cmd *cobra.Command, result *domain.CoreResult) error {
	cmd.Printf("Semantic core %s\n", result.RunID)
	cmd.Printf("  Keywords: %d (of %d found)\n", len(result.Keywords), result.TotalFound)
	cmd.Printf("  Clusters: %d\n", len(result.Clusters))
	cmd.Printf("  Elapsed:  %s\n", result.ProcessingTime.Round(time.Millisecond))
	cmd.Println()

	if len(result.SourceCounts) > 0 {
		cmd.Println("Sources:")
		for _, source := range []domain.Source{
			domain.SourceSeed, domain.SourceExpansion, domain.SourceRelated, domain.SourceCompetitor,
		} {
			if n := result.SourceCounts[source]; n > 0 {
				cmd.Printf("  %-10s %d\n", source, n)
			}
		}
		cmd.Println()
	}

	if len(result.Clusters) == 0 {
		cmd.Println("No clusters formed.")
		return nil
	}

	for _, c := range result.Clusters {
		cmd.Printf("[%d] %s\n", c.ID, c.Name)
		cmd.Printf("    %d keywords, %d total volume, difficulty %d, intent %s\n",
			len(c.Members), c.TotalSearchVolume, c.AvgDifficulty, c.DominantIntent)
		for i, k := range c.Members {
			if i == clusterPreviewSize {
				cmd.Printf("    ... and %d more\n", len(c.Members)-clusterPreviewSize)
				break
			}
			cmd.Printf("    - %s (%d/mo, %s)\n", k.Keyword, k.SearchVolume, services.FormatCost(k.CPC))
		}
		cmd.Println()
	}

	return nil
}
