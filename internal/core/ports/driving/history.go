package driving

import (
	"context"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// HistoryService exposes previously completed analysis runs.
type HistoryService interface {
	// List returns run summaries, newest first.
	List(ctx context.Context, limit int) ([]domain.RunSummary, error)

	// Get returns a run with its records.
	Get(ctx context.Context, id string) (*domain.AnalysisRun, error)

	// Latest returns the newest run for a video.
	Latest(ctx context.Context, videoRef string) (*domain.AnalysisRun, error)

	// Delete removes a run.
	Delete(ctx context.Context, id string) error
}
