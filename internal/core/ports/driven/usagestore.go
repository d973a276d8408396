package driven

import (
	"context"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// UsageStore persists the usage ledger so spend survives process
// restarts. The budget guard loads once at construction and saves
// after every mutation.
type UsageStore interface {
	// LoadUsage returns the persisted ledger.
	// Returns domain.ErrNotFound if no ledger has been saved yet.
	LoadUsage(ctx context.Context) (domain.UsageLedger, error)

	// SaveUsage overwrites the persisted ledger.
	SaveUsage(ctx context.Context, ledger domain.UsageLedger) error
}

// RunStore persists build-run accounting. The engine hands results to
// the caller; the caller owns persistence.
type RunStore interface {
	// SaveRun stores one completed run record.
	SaveRun(ctx context.Context, run domain.RunRecord) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
}
