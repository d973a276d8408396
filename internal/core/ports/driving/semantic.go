package driving

import (
	"context"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// SemanticCoreService builds budget-bounded, deduplicated, clustered
// keyword sets from seed phrases.
type SemanticCoreService interface {
	// BuildCore runs the full acquisition and clustering pipeline for
	// one request. Optional stages degrade gracefully; the mandatory
	// seed-expansion stage propagates its failure.
	BuildCore(ctx context.Context, req domain.CoreRequest) (*domain.CoreResult, error)

	// CheckAndEstimate prices a prospective operation and asks the
	// budget guard whether it may proceed. The decision is advisory;
	// no spend is recorded.
	CheckAndEstimate(kind domain.OperationKind, unitCount, keywordCount int) (domain.Decision, float64)
}

// BudgetService exposes ledger state and the externally triggered
// reset operations.
type BudgetService interface {
	// Usage returns a snapshot of spend against the configured limits.
	Usage() domain.UsageStats

	// ResetDaily zeroes the daily counter. Invoked by an external
	// scheduler (or its CLI stand-in), never by the guard itself.
	ResetDaily(ctx context.Context) error

	// ResetMonthly zeroes the monthly counter and the request count.
	ResetMonthly(ctx context.Context) error
}
