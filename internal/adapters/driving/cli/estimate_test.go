package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

func TestEstimateCmd_Use(t *testing.T) {
	assert.Equal(t, "estimate", estimateCmd.Use)
}

func TestEstimateCmd_Short(t *testing.T) {
	assert.Equal(t, "Estimate the cost of a build without spending", estimateCmd.Short)
}

func TestEstimateCmd_WithinBudget(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("estimate")

	require.NoError(t, err)
	assert.Contains(t, out, "Expansion: $0.01")
	assert.Contains(t, out, "Metrics:   $0.01")
	assert.Contains(t, out, "SERP:      $0.18")
	assert.Contains(t, out, "Total:     $0.20")
	assert.Contains(t, out, "Within budget.")
}

func TestEstimateCmd_SkipsSERPWhenDisabled(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("estimate", "--serp=false")

	require.NoError(t, err)
	assert.NotContains(t, out, "SERP:")
	assert.Contains(t, out, "Total:     $0.02")
}

func TestEstimateCmd_OverBudget(t *testing.T) {
	limits := domain.BudgetLimits{
		MaxCostPerRequest:     0.01,
		MaxDailyCost:          0.05,
		MaxMonthlyCost:        0.10,
		MaxKeywordsPerBatch:   100,
		AlertThresholdPercent: 80,
	}
	_, _, cleanup := setupTestServicesWithLimits(t, limits)
	defer cleanup()

	_, err := execute("estimate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "over budget")
	assert.Contains(t, err.Error(), "per-request limit")
}

func TestEstimateCmd_RecordsNoSpend(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("estimate")
	require.NoError(t, err)

	stats := budgetService.Usage()
	assert.Zero(t, stats.Today.Used)
	assert.Zero(t, stats.TotalRequests)
}
