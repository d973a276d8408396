// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KeywordOracle: the metered metrics/SERP data provider
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - UsageStore: persists the usage ledger between processes
//   - RunStore: persists build-run history
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
