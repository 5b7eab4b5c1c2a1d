// Package mcp provides an MCP (Model Context Protocol) server adapter for satya.
// It lets AI assistants analyse the comment sentiment of YouTube videos.
package mcp

import (
	"errors"
	"fmt"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// toolError prefixes err with its failure kind so clients can branch on it.
func toolError(err error) error {
	return fmt.Errorf("%s: %s: %w", domain.FailureOf(err), domain.UserMessage(err), err)
}
