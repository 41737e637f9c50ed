package mcp

import (
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Index provides search and index maintenance capabilities.
	Index driving.Index

	// Importer performs bulk index operations.
	Importer driving.Importer
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Index == nil {
		return ErrMissingIndexService
	}
	// Importer is optional; the import tool reports it missing at call time
	return nil
}
