package services

import (
	"context"
	"errors"
	"strings"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// errHistoryDisabled is returned when no run store is configured.
var errHistoryDisabled = errors.New("analysis history is disabled")

// HistoryService reads and deletes stored analysis runs.
type HistoryService struct {
	store  driven.AnalysisRunStore
	parser driven.VideoIDParser
}

// NewHistoryService creates a new history service.
// The parser is optional; without it video references are used as given.
func NewHistoryService(store driven.AnalysisRunStore, parser driven.VideoIDParser) *HistoryService {
	return &HistoryService{store: store, parser: parser}
}

// List returns run summaries, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if s.store == nil {
		return nil, errHistoryDisabled
	}
	if limit < 0 {
		limit = 0
	}
	return s.store.List(ctx, limit)
}

// Get returns a run with its records.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.AnalysisRun, error) {
	if s.store == nil {
		return nil, errHistoryDisabled
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Latest returns the newest run for a video.
func (s *HistoryService) Latest(ctx context.Context, videoRef string) (*domain.AnalysisRun, error) {
	if s.store == nil {
		return nil, errHistoryDisabled
	}
	videoID := strings.TrimSpace(videoRef)
	if s.parser != nil {
		var err error
		if videoID, err = s.parser.ParseVideoID(videoRef); err != nil {
			return nil, err
		}
	}
	if videoID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.LatestForVideo(ctx, videoID)
}

// Delete removes a run.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return errHistoryDisabled
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}
