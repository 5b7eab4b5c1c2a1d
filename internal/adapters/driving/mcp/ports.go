package mcp

import (
	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Analysis runs the sentiment pipeline.
	Analysis driving.AnalysisService

	// History exposes stored runs. Optional; without it every tool call analyses afresh.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	return nil
}
