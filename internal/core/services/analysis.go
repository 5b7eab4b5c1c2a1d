package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
	"github.com/satya-labs/satya-cli/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the comment sentiment pipeline:
// fetch, normalise, vectorise, classify, join.
type AnalysisService struct {
	source       driven.CommentSource
	normaliser   driven.TextNormaliser
	models       driven.ModelProvider
	runStore     driven.AnalysisRunStore
	fetchTimeout time.Duration
	now          func() time.Time
}

// NewAnalysisService creates a new analysis service.
// The runStore parameter is optional (can be nil); without it runs are
// not kept.
func NewAnalysisService(
	source driven.CommentSource,
	normaliser driven.TextNormaliser,
	models driven.ModelProvider,
	runStore driven.AnalysisRunStore,
) *AnalysisService {
	return &AnalysisService{
		source:       source,
		normaliser:   normaliser,
		models:       models,
		runStore:     runStore,
		fetchTimeout: domain.DefaultFetchTimeout,
		now:          time.Now,
	}
}

// SetFetchTimeout bounds the comment fetch. Zero disables the bound.
func (s *AnalysisService) SetFetchTimeout(d time.Duration) {
	s.fetchTimeout = d
}

// Ready loads the models so servers can fail at startup.
func (s *AnalysisService) Ready() error {
	if s.models == nil {
		return errors.New("analysis service not configured")
	}
	_, err := s.models.Models()
	return err
}

// Analyze fetches and classifies the comments of a video.
// A video without comments fails with domain.ErrEmptyResult.
func (s *AnalysisService) Analyze(ctx context.Context, videoRef string) (*domain.AnalysisRun, error) {
	logger.Section("Analyze")
	if s.source == nil || s.normaliser == nil || s.models == nil {
		return nil, errors.New("analysis service not configured")
	}

	videoID, err := s.source.ParseVideoID(videoRef)
	if err != nil {
		return nil, err
	}
	logger.Debug("Video: %s", videoID)

	// Models load before any API request is made.
	models, err := s.models.Models()
	if err != nil {
		return nil, err
	}

	comments, err := s.fetch(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", videoID, err)
	}
	if len(comments) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyResult, videoID)
	}

	normalised := s.normalise(comments)

	preds, err := classify(models, normalised)
	if err != nil {
		return nil, err
	}

	records, err := JoinRecords(comments, normalised, preds)
	if err != nil {
		return nil, err
	}

	run := &domain.AnalysisRun{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		CreatedAt: s.now().UTC(),
		Records:   records,
	}
	s.save(ctx, run)

	logger.Info("analysed %d comments for %s", len(records), videoID)
	return run, nil
}

func (s *AnalysisService) fetch(ctx context.Context, videoID string) ([]domain.RawComment, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}
	return s.source.Fetch(ctx, videoID)
}

func (s *AnalysisService) normalise(comments []domain.RawComment) []string {
	defer logger.Timed("normalise")()

	out := make([]string, len(comments))
	for i, c := range comments {
		out[i] = s.normaliser.Normalise(c.Text)
	}
	return out
}

// save persists run. Failure is logged and never fails the analysis.
func (s *AnalysisService) save(ctx context.Context, run *domain.AnalysisRun) {
	if s.runStore == nil {
		return
	}
	if err := s.runStore.Save(ctx, run); err != nil {
		logger.Error("saving analysis run %s: %v", run.ID, err)
		return
	}
	logger.Debug("saved run %s", run.ID)
}

// classify vectorises texts and predicts one label and confidence per text.
// Confidence is the highest class probability, or domain.DefaultConfidence
// when the classifier cannot estimate probabilities.
func classify(m *driven.Models, texts []string) ([]domain.Prediction, error) {
	defer logger.Timed("classify")()

	x := m.Vectorizer.Transform(texts)
	if x.Rows() != len(texts) {
		return nil, fmt.Errorf("%w: %d texts vectorised into %d rows", domain.ErrAlignment, len(texts), x.Rows())
	}

	labels, err := m.Classifier.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(labels) != len(texts) {
		return nil, fmt.Errorf("%w: %d rows produced %d labels", domain.ErrAlignment, len(texts), len(labels))
	}

	var proba [][]float64
	if m.Probabilities != nil {
		proba, err = m.Probabilities.PredictProba(x)
		if err != nil {
			return nil, fmt.Errorf("predict probabilities: %w", err)
		}
		if len(proba) != len(labels) {
			return nil, fmt.Errorf("%w: %d rows produced %d probability rows", domain.ErrAlignment, len(labels), len(proba))
		}
	}

	preds := make([]domain.Prediction, len(labels))
	for i, l := range labels {
		conf := domain.DefaultConfidence
		if proba != nil {
			conf = maxProbability(proba[i])
		}
		preds[i] = domain.Prediction{Label: l, Confidence: conf}
	}
	return preds, nil
}

func maxProbability(row []float64) float64 {
	var best float64
	for _, p := range row {
		if p > best {
			best = p
		}
	}
	return best
}

// Trend buckets sentiment points by calendar month.
func (s *AnalysisService) Trend(points []domain.SentimentPoint) ([]domain.TrendBucket, error) {
	return BucketByMonth(points)
}

// Summarise computes dashboard metrics for records.
func (s *AnalysisService) Summarise(records []domain.AnalysisRecord) domain.Summary {
	return Summarise(records)
}

// TermFrequency returns the most frequent normalised terms across comments.
func (s *AnalysisService) TermFrequency(comments []string, limit int) []domain.TermCount {
	if s.normaliser == nil {
		return []domain.TermCount{}
	}
	return TermFrequency(s.normaliser, comments, limit)
}
