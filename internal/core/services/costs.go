package services

import (
	"fmt"
	"math"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// Oracle rates in USD per 1000 units.
const (
	rateExpansion   = 0.10
	rateMetrics     = 0.05
	rateSERP        = 0.60
	rateSuggestions = 0.10

	// floorCost is the minimum estimate for any call, so zero-count
	// calls never estimate to exactly zero and slip past the guard.
	floorCost = 0.001
)

// SERPDepth selects how many organic positions a SERP lookup fetches.
type SERPDepth string

const (
	// DepthTop10 fetches the top 10 positions.
	DepthTop10 SERPDepth = "top-10"
	// DepthTop20 fetches the top 20 positions at 1.5x the base rate.
	DepthTop20 SERPDepth = "top-20"
	// DepthTop100 fetches the top 100 positions at 5x the base rate.
	DepthTop100 SERPDepth = "top-100"
)

func (d SERPDepth) multiplier() float64 {
	switch d {
	case DepthTop20:
		return 1.5
	case DepthTop100:
		return 5
	default:
		return 1
	}
}

// EstimateCost predicts the cost of an oracle operation over unitCount
// units. Pure and total: unknown kinds and non-positive counts estimate
// to the floor cost.
func EstimateCost(kind domain.OperationKind, unitCount int) float64 {
	var rate float64
	switch kind {
	case domain.OpExpansion:
		rate = rateExpansion
	case domain.OpMetrics:
		rate = rateMetrics
	case domain.OpSERP:
		rate = rateSERP
	case domain.OpSuggestions:
		rate = rateSuggestions
	}
	return math.Max(floorCost, float64(unitCount)/1000*rate)
}

// EstimateSERPCost predicts the cost of SERP lookups at a given depth.
func EstimateSERPCost(unitCount int, depth SERPDepth) float64 {
	cost := float64(unitCount) / 1000 * rateSERP * depth.multiplier()
	return math.Max(floorCost, cost)
}

// CoreEstimate is a full-run cost prediction with a per-stage
// breakdown.
type CoreEstimate struct {
	// Total is the predicted run cost, rounded to a tenth of a cent.
	Total float64 `json:"total"`

	// Expansion, Metrics and SERP are the per-stage components.
	Expansion float64 `json:"expansion"`
	Metrics   float64 `json:"metrics"`
	SERP      float64 `json:"serp"`
}

// EstimateCore predicts the cost of a complete semantic-core build.
// The metrics and SERP components assume the candidate set roughly
// doubles the target size before truncation.
func EstimateCore(seedCount, targetSize int, includeSERP bool) CoreEstimate {
	if seedCount <= 0 {
		seedCount = 1
	}
	if targetSize <= 0 {
		targetSize = domain.DefaultTargetSize
	}

	est := CoreEstimate{
		Expansion: EstimateCost(domain.OpExpansion, targetSize),
		Metrics:   EstimateCost(domain.OpMetrics, targetSize*2),
	}
	if includeSERP {
		est.SERP = EstimateSERPCost(targetSize*2, DepthTop20)
	}

	total := est.Expansion + est.Metrics + est.SERP
	est.Total = math.Round(total*1000) / 1000
	return est
}

// FormatCost renders a cost for display, keeping sub-cent precision
// visible.
func FormatCost(cost float64) string {
	if cost < 0.01 {
		return fmt.Sprintf("$%.4f", cost)
	}
	return fmt.Sprintf("$%.2f", cost)
}
