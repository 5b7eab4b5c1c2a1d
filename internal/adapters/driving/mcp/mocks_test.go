package mcp

import (
	"context"
	"time"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	run      *domain.AnalysisRun
	err      error
	trendErr error
	analyzed int
}

func (m *mockAnalysisService) Analyze(_ context.Context, _ string) (*domain.AnalysisRun, error) {
	m.analyzed++
	return m.run, m.err
}

func (m *mockAnalysisService) Trend(points []domain.SentimentPoint) ([]domain.TrendBucket, error) {
	if m.trendErr != nil {
		return nil, m.trendErr
	}
	return []domain.TrendBucket{{Total: len(points)}}, nil
}

func (m *mockAnalysisService) Ready() error { return nil }

func (m *mockAnalysisService) Summarise(records []domain.AnalysisRecord) domain.Summary {
	return domain.Summary{TotalComments: len(records)}
}

func (m *mockAnalysisService) TermFrequency(comments []string, limit int) []domain.TermCount {
	terms := make([]domain.TermCount, 0, limit)
	for i := 0; i < limit && i < len(comments); i++ {
		terms = append(terms, domain.TermCount{Term: comments[i], Count: 1})
	}
	return terms
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs    []domain.RunSummary
	run     *domain.AnalysisRun
	err     error
	latest  *domain.AnalysisRun
	latestE error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.RunSummary, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.AnalysisRun, error) {
	return m.run, m.err
}

func (m *mockHistoryService) Latest(_ context.Context, _ string) (*domain.AnalysisRun, error) {
	return m.latest, m.latestE
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

func testRun(id string, n int) *domain.AnalysisRun {
	run := &domain.AnalysisRun{
		ID:        id,
		VideoID:   "dQw4w9WgXcQ",
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for i := 0; i < n; i++ {
		run.Records = append(run.Records, domain.AnalysisRecord{
			OriginalComment:  "comment",
			ProcessedComment: "comment",
			Confidence:       1,
			Sentiment:        domain.Positive,
			Timestamp:        "2024-05-01T00:00:00Z",
			AuthorID:         "UC1",
		})
	}
	return run
}
