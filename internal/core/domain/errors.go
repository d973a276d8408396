package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidLimits indicates malformed budget limits.
	// Configuration errors are fatal before any external call.
	ErrInvalidLimits = errors.New("invalid budget limits")

	// ErrMissingCredentials indicates the oracle credentials are not
	// configured. Fatal before any external call.
	ErrMissingCredentials = errors.New("oracle credentials not configured")

	// ErrBudgetExceeded indicates the budget guard rejected the only
	// mandatory stage of a run, so there is nothing to return.
	ErrBudgetExceeded = errors.New("budget exceeded")

	// ErrNoSeedData indicates seed expansion failed for every seed.
	// The first stage is mandatory; this aborts the run.
	ErrNoSeedData = errors.New("seed expansion returned no data")

	// ErrRateLimited indicates the oracle rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
