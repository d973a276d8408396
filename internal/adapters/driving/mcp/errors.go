// Package mcp provides an MCP (Model Context Protocol) server adapter for semcore.
// It lets AI assistants build semantic cores, price operations and inspect spend.
package mcp

import "errors"

// ErrMissingCoreService is returned when the semantic core service is not provided.
var ErrMissingCoreService = errors.New("mcp: semantic core service is required")
