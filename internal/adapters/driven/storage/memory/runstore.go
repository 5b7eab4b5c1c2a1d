package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.AnalysisRunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.AnalysisRunStore.
// It backs the process when history persistence is disabled.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.AnalysisRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.AnalysisRun),
	}
}

// Save stores or replaces a run. Records are copied.
func (s *RunStore) Save(_ context.Context, run *domain.AnalysisRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = copyRun(*run)
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.AnalysisRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	run = copyRun(run)
	return &run, nil
}

// List returns run summaries, newest first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.RunSummary, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run.Summary())
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// LatestForVideo returns the newest run for a video.
func (s *RunStore) LatestForVideo(_ context.Context, videoID string) (*domain.AnalysisRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.AnalysisRun
	for _, run := range s.runs {
		if run.VideoID != videoID {
			continue
		}
		if latest == nil || run.CreatedAt.After(latest.CreatedAt) {
			r := run
			latest = &r
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	run := copyRun(*latest)
	return &run, nil
}

// Delete removes a run.
func (s *RunStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.runs, id)
	return nil
}

func copyRun(run domain.AnalysisRun) domain.AnalysisRun {
	run.Records = append([]domain.AnalysisRecord(nil), run.Records...)
	return run
}
