package driving

import (
	"context"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// AnalysisService runs the sentiment pipeline and its aggregations.
type AnalysisService interface {
	// Analyze fetches, normalises, vectorises and classifies the comments of a video.
	// videoRef may be a bare video ID or a watch URL.
	Analyze(ctx context.Context, videoRef string) (*domain.AnalysisRun, error)

	// Ready loads the vectorizer and classifier, failing with
	// domain.ErrModelLoad when either artifact is unusable.
	Ready() error

	// Trend buckets sentiment points by calendar month.
	Trend(points []domain.SentimentPoint) ([]domain.TrendBucket, error)

	// Summarise computes dashboard metrics for a set of records.
	Summarise(records []domain.AnalysisRecord) domain.Summary

	// TermFrequency returns the most frequent normalised terms across comments.
	TermFrequency(comments []string, limit int) []domain.TermCount
}
