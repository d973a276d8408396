// Package domain contains the core business entities for the semantic
// keyword clustering engine: keyword candidates, clusters, budget limits,
// SERP signals and the errors shared across services and adapters.
// It has no dependencies on other packages in this module.
package domain
