// Package sqlite provides SQLite-backed persistence for the usage
// ledger and run history. A single Store owns the database connection
// and exposes the driven store interfaces through wrapper types.
package sqlite
