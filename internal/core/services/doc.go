// Package services implements the driving port interfaces.
// Services contain the core business logic - cost estimation, budget
// gating, intent classification and the staged acquisition pipeline -
// and orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no CGO dependencies.
package services
