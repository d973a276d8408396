package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.OperationKind
		units    int
		expected float64
	}{
		{"expansion 1000 units", domain.OpExpansion, 1000, 0.10},
		{"metrics 1000 units", domain.OpMetrics, 1000, 0.05},
		{"serp 1000 units", domain.OpSERP, 1000, 0.60},
		{"suggestions 1000 units", domain.OpSuggestions, 1000, 0.10},
		{"metrics 100 units", domain.OpMetrics, 100, 0.005},
		{"serp single unit hits floor", domain.OpSERP, 1, 0.001},
		{"zero units hits floor", domain.OpExpansion, 0, 0.001},
		{"unknown kind hits floor", domain.OperationKind("bogus"), 5000, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateCost(tt.kind, tt.units), 1e-9)
		})
	}
}

func TestEstimateCost_NeverZero(t *testing.T) {
	for _, kind := range []domain.OperationKind{domain.OpExpansion, domain.OpMetrics, domain.OpSERP, domain.OpSuggestions} {
		assert.GreaterOrEqual(t, EstimateCost(kind, 0), 0.001)
	}
}

func TestEstimateSERPCost_DepthMultipliers(t *testing.T) {
	base := EstimateSERPCost(1000, DepthTop10)
	assert.InDelta(t, 0.60, base, 1e-9)
	assert.InDelta(t, 0.90, EstimateSERPCost(1000, DepthTop20), 1e-9)
	assert.InDelta(t, 3.00, EstimateSERPCost(1000, DepthTop100), 1e-9)
}

func TestEstimateCore(t *testing.T) {
	est := EstimateCore(2, 100, true)

	assert.InDelta(t, EstimateCost(domain.OpExpansion, 100), est.Expansion, 1e-9)
	assert.InDelta(t, EstimateCost(domain.OpMetrics, 200), est.Metrics, 1e-9)
	assert.InDelta(t, EstimateSERPCost(200, DepthTop20), est.SERP, 1e-9)
	assert.InDelta(t, est.Expansion+est.Metrics+est.SERP, est.Total, 0.001)
}

func TestEstimateCore_WithoutSERP(t *testing.T) {
	est := EstimateCore(1, 50, false)
	assert.Zero(t, est.SERP)
	assert.InDelta(t, est.Expansion+est.Metrics, est.Total, 0.001)
}

func TestEstimateCore_DefaultsZeroInputs(t *testing.T) {
	est := EstimateCore(0, 0, false)
	assert.Greater(t, est.Total, 0.0)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0010", FormatCost(0.001))
	assert.Equal(t, "$0.05", FormatCost(0.05))
	assert.Equal(t, "$2.50", FormatCost(2.5))
}
