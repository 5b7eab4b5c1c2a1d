// Package tui provides an interactive terminal user interface for satya.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Analysis runs the sentiment pipeline.
	Analysis driving.AnalysisService

	// History exposes stored runs. Optional; the History menu entry is hidden without it.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	return nil
}
