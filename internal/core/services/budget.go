package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driven"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driving"
	"github.com/clearpath-labs/semcore-cli/internal/logger"
)

// Ensure BudgetGuard implements the interface.
var _ driving.BudgetService = (*BudgetGuard)(nil)

// BudgetGuard gates oracle spend against configured limits and owns
// the usage ledger. It is advisory: CanProceed never blocks or throws,
// and it is the caller's responsibility to skip the external call when
// the decision is not allowed.
//
// The guard is an explicitly constructed, injectable object (one per
// process or per tenant). All ledger access is lock-guarded, so one
// guard may be shared by concurrent runs.
type BudgetGuard struct {
	mu     sync.Mutex
	limits domain.BudgetLimits
	ledger domain.UsageLedger
	store  driven.UsageStore // optional persistence hook
}

// NewBudgetGuard creates a guard with the given limits. The store is
// optional; when present, the persisted ledger is loaded now and saved
// after every mutation. Malformed limits fail fast.
func NewBudgetGuard(ctx context.Context, limits domain.BudgetLimits, store driven.UsageStore) (*BudgetGuard, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	g := &BudgetGuard{limits: limits, store: store}

	if store != nil {
		ledger, err := store.LoadUsage(ctx)
		switch {
		case err == nil:
			g.ledger = ledger
		case errors.Is(err, domain.ErrNotFound):
			// First run, start from a zero ledger.
		default:
			return nil, fmt.Errorf("load usage ledger: %w", err)
		}
	}

	return g, nil
}

// Limits returns the guard's configuration.
func (g *BudgetGuard) Limits() domain.BudgetLimits {
	return g.limits
}

// CanProceed decides whether an operation with the given estimated
// cost and keyword batch size may run. Checks, in order: per-request
// cost, batch size, daily ceiling, monthly ceiling. An allowed
// operation that pushes either window past the alert threshold carries
// a non-blocking warning.
func (g *BudgetGuard) CanProceed(estimatedCost float64, keywordCount int) domain.Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if estimatedCost > g.limits.MaxCostPerRequest {
		return domain.Decision{
			Reason: fmt.Sprintf("request cost (%s) exceeds per-request limit (%s)",
				FormatCost(estimatedCost), FormatCost(g.limits.MaxCostPerRequest)),
		}
	}

	if keywordCount > g.limits.MaxKeywordsPerBatch {
		return domain.Decision{
			Reason: fmt.Sprintf("keyword count (%d) exceeds per-batch limit (%d)",
				keywordCount, g.limits.MaxKeywordsPerBatch),
		}
	}

	newDaily := g.ledger.TodayCost + estimatedCost
	if newDaily > g.limits.MaxDailyCost {
		return domain.Decision{
			Reason: fmt.Sprintf("daily budget exhausted: %s of %s used",
				FormatCost(g.ledger.TodayCost), FormatCost(g.limits.MaxDailyCost)),
		}
	}

	newMonthly := g.ledger.MonthCost + estimatedCost
	if newMonthly > g.limits.MaxMonthlyCost {
		return domain.Decision{
			Reason: fmt.Sprintf("monthly budget exhausted: %s of %s used",
				FormatCost(g.ledger.MonthCost), FormatCost(g.limits.MaxMonthlyCost)),
		}
	}

	decision := domain.Decision{Allowed: true}

	dailyPercent := newDaily / g.limits.MaxDailyCost * 100
	if dailyPercent >= g.limits.AlertThresholdPercent {
		decision.Warning = fmt.Sprintf("%.0f%% of daily budget used", dailyPercent)
	}
	monthlyPercent := newMonthly / g.limits.MaxMonthlyCost * 100
	if monthlyPercent >= g.limits.AlertThresholdPercent {
		decision.Warning = fmt.Sprintf("%.0f%% of monthly budget used", monthlyPercent)
	}

	return decision
}

// RecordUsage unconditionally adds the actual billed cost to both
// windows and increments the request count. Call exactly once per
// completed oracle call, with the cost the oracle reported - actuals
// are authoritative over estimates.
func (g *BudgetGuard) RecordUsage(ctx context.Context, actualCost float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ledger.TodayCost += actualCost
	g.ledger.MonthCost += actualCost
	g.ledger.TotalRequests++

	return g.persist(ctx)
}

// Usage returns a snapshot of spend against the configured limits.
func (g *BudgetGuard) Usage() domain.UsageStats {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.UsageStats{
		Today: domain.WindowUsage{
			Used:      g.ledger.TodayCost,
			Limit:     g.limits.MaxDailyCost,
			Remaining: g.limits.MaxDailyCost - g.ledger.TodayCost,
			Percent:   g.ledger.TodayCost / g.limits.MaxDailyCost * 100,
		},
		Month: domain.WindowUsage{
			Used:      g.ledger.MonthCost,
			Limit:     g.limits.MaxMonthlyCost,
			Remaining: g.limits.MaxMonthlyCost - g.ledger.MonthCost,
			Percent:   g.ledger.MonthCost / g.limits.MaxMonthlyCost * 100,
		},
		TotalRequests: g.ledger.TotalRequests,
	}
}

// ResetDaily zeroes the daily counter. Triggered externally at
// midnight, never by the guard itself.
func (g *BudgetGuard) ResetDaily(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ledger.TodayCost = 0
	return g.persist(ctx)
}

// ResetMonthly zeroes the monthly counter and the request count.
// Triggered externally on the first of the month.
func (g *BudgetGuard) ResetMonthly(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ledger.MonthCost = 0
	g.ledger.TotalRequests = 0
	return g.persist(ctx)
}

// persist saves the ledger through the store hook (caller must hold
// the lock). The in-memory ledger is already updated; a store failure
// does not roll it back.
func (g *BudgetGuard) persist(ctx context.Context) error {
	if g.store == nil {
		return nil
	}
	if err := g.store.SaveUsage(ctx, g.ledger); err != nil {
		logger.Warn("Failed to persist usage ledger: %v", err)
		return fmt.Errorf("save usage ledger: %w", err)
	}
	return nil
}
