// Package tui provides an interactive terminal user interface for searchkit.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Index provides search and statistics over the content index.
	Index driving.Index
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(index driving.Index) *Ports {
	return &Ports{
		Index: index,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Index == nil {
		return ErrMissingIndexService
	}
	return nil
}
