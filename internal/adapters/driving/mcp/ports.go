package mcp

import (
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driven"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Core builds semantic cores and prices operations.
	Core driving.SemanticCoreService

	// Budget exposes the usage ledger.
	Budget driving.BudgetService

	// Runs lists past build runs.
	Runs driven.RunStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Core == nil {
		return ErrMissingCoreService
	}
	// Budget and Runs are optional
	return nil
}
