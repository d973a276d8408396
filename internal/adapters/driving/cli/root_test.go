package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/services"
)

// fakeCoreService records the last request and returns a canned result.
type fakeCoreService struct {
	result  *domain.CoreResult
	err     error
	lastReq domain.CoreRequest
	calls   int
}

func (f *fakeCoreService) BuildCore(_ context.Context, req domain.CoreRequest) (*domain.CoreResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeCoreService) CheckAndEstimate(kind domain.OperationKind, unitCount, _ int) (domain.Decision, float64) {
	return domain.Decision{Allowed: true}, services.EstimateCost(kind, unitCount)
}

// fakeRunStore keeps run records in memory.
type fakeRunStore struct {
	runs    []domain.RunRecord
	saveErr error
	listErr error
}

func (f *fakeRunStore) SaveRun(_ context.Context, run domain.RunRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRunStore) ListRuns(_ context.Context, limit int) ([]domain.RunRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > 0 && limit < len(f.runs) {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

// setupTestServices wires fakes into the package-level services and
// returns a cleanup that restores the unwired state and flag defaults.
func setupTestServices(t *testing.T) (*fakeCoreService, *fakeRunStore, func()) {
	t.Helper()
	return setupTestServicesWithLimits(t, domain.DefaultLimits())
}

func setupTestServicesWithLimits(t *testing.T, limits domain.BudgetLimits) (*fakeCoreService, *fakeRunStore, func()) {
	t.Helper()

	guard, err := services.NewBudgetGuard(context.Background(), limits, nil)
	require.NoError(t, err)

	core := &fakeCoreService{result: testCoreResult()}
	runs := &fakeRunStore{}

	coreService = core
	budgetService = guard
	budgetGuard = guard
	runStore = runs

	cleanup := func() {
		coreService = nil
		budgetService = nil
		budgetGuard = nil
		runStore = nil
		resetFlags()
	}
	return core, runs, cleanup
}

// resetFlags restores flag-bound variables mutated by Execute so tests
// stay independent.
func resetFlags() {
	if f := buildCmd.Flags().Lookup("language"); f != nil {
		f.Changed = false
	}
	verbose = false
	buildLanguage = "en"
	buildLocation = 2840
	buildLocationName = ""
	buildTarget = domain.DefaultTargetSize
	buildCompetitor = ""
	buildMinVolume = 10
	buildMaxDifficulty = 50
	buildJSON = false
	buildCSV = ""
	estimateSeeds = 1
	estimateTarget = 0
	estimateSERP = true
	usageResetDaily = false
	usageResetMonthly = false
	usageJSON = false
	runsLimit = 10
}

func testCoreResult() *domain.CoreResult {
	keywords := []domain.Keyword{
		{Keyword: "running shoes sale", SearchVolume: 5000, CPC: 1.25, Difficulty: 40, Intent: domain.IntentTransactional, Source: domain.SourceSeed},
		{Keyword: "sale running shoes", SearchVolume: 3000, CPC: 0.9, Difficulty: 35, Intent: domain.IntentCommercial, Source: domain.SourceExpansion},
		{Keyword: "trail running shoes", SearchVolume: 1200, CPC: 0.6, Difficulty: 30, Intent: domain.IntentInformational, Source: domain.SourceRelated},
	}
	return &domain.CoreResult{
		RunID:    "run-test-1",
		Keywords: keywords,
		Clusters: []domain.Cluster{
			{
				ID:                0,
				Name:              "running shoes sale",
				Members:           keywords[:2],
				TotalSearchVolume: 8000,
				AvgDifficulty:     38,
				DominantIntent:    domain.IntentTransactional,
			},
		},
		TotalFound: 17,
		SourceCounts: map[domain.Source]int{
			domain.SourceSeed:      1,
			domain.SourceExpansion: 1,
			domain.SourceRelated:   1,
		},
		Summary: domain.Summary{
			TotalKeywords:     3,
			TotalSearchVolume: 9200,
			ClusterCount:      1,
		},
	}
}

// execute runs the root command with args and captures its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "semcore", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"build", "estimate", "usage", "runs", "version"} {
		assert.True(t, names[want], "expected %s command", want)
	}
}
