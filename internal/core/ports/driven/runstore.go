package driven

import (
	"context"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// AnalysisRunStore persists completed analysis runs.
type AnalysisRunStore interface {
	// Save stores a run and its records.
	Save(ctx context.Context, run *domain.AnalysisRun) error

	// Get retrieves a run by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.AnalysisRun, error)

	// List returns run summaries, newest first. A limit of 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.RunSummary, error)

	// LatestForVideo returns the newest run for a video, or domain.ErrNotFound.
	LatestForVideo(ctx context.Context, videoID string) (*domain.AnalysisRun, error)

	// Delete removes a run. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
