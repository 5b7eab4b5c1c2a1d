package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockSource implements driven.CommentSource for testing.
type mockSource struct {
	comments    []domain.RawComment
	fetchErr    error
	fetched     []string
	hasDeadline bool
}

func (m *mockSource) ParseVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if id, ok := strings.CutPrefix(ref, "https://youtu.be/"); ok {
		ref = id
	}
	if len(ref) != 11 {
		return "", domain.ErrInvalidInput
	}
	return ref, nil
}

func (m *mockSource) Fetch(ctx context.Context, videoID string) ([]domain.RawComment, error) {
	m.fetched = append(m.fetched, videoID)
	_, m.hasDeadline = ctx.Deadline()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.comments, nil
}

// mockNormaliser implements driven.TextNormaliser by lowercasing.
type mockNormaliser struct{}

func (mockNormaliser) Normalise(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func (mockNormaliser) IsStopWord(word string) bool {
	return word == "the" || word == "is"
}

// keywordVectorizer scores each text on the presence of fixed keywords.
type keywordVectorizer struct {
	terms []string
	// dropRows simulates a stage that loses rows.
	dropRows bool
}

func (v *keywordVectorizer) Transform(texts []string) domain.FeatureMatrix {
	rows := len(texts)
	if v.dropRows && rows > 0 {
		rows--
	}
	m := domain.NewFeatureMatrix(rows, len(v.terms))
	for i := 0; i < rows; i++ {
		for j, term := range v.terms {
			if strings.Contains(texts[i], term) {
				m.Set(i, j, 1)
			}
		}
	}
	return m
}

func (v *keywordVectorizer) Width() int             { return len(v.terms) }
func (v *keywordVectorizer) FeatureNames() []string { return v.terms }

// keywordClassifier labels rows by the first set column: good, bad, else neutral.
type keywordClassifier struct {
	predictErr error
}

func (c *keywordClassifier) Predict(m domain.FeatureMatrix) ([]domain.Label, error) {
	if c.predictErr != nil {
		return nil, c.predictErr
	}
	labels := make([]domain.Label, m.Rows())
	for i := range labels {
		switch {
		case m.At(i, 0) == 1:
			labels[i] = domain.Positive
		case m.At(i, 1) == 1:
			labels[i] = domain.Negative
		default:
			labels[i] = domain.Neutral
		}
	}
	return labels, nil
}

func (c *keywordClassifier) Classes() []domain.Label { return domain.Labels }
func (c *keywordClassifier) Width() int              { return 2 }

// fixedProba returns the same probability row for every input row.
type fixedProba struct {
	row []float64
}

func (p *fixedProba) PredictProba(m domain.FeatureMatrix) ([][]float64, error) {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = p.row
	}
	return out, nil
}

// mockModels implements driven.ModelProvider for testing.
type mockModels struct {
	models *driven.Models
	err    error
	calls  int
}

func (m *mockModels) Models() (*driven.Models, error) {
	m.calls++
	return m.models, m.err
}

func newModels(proba driven.ProbabilityEstimator) *mockModels {
	return &mockModels{models: &driven.Models{
		Vectorizer:    &keywordVectorizer{terms: []string{"good", "bad"}},
		Classifier:    &keywordClassifier{},
		Probabilities: proba,
	}}
}

// failingRunStore fails every call.
type failingRunStore struct {
	saves int
}

var errStoreDown = errors.New("database is locked")

func (s *failingRunStore) Save(_ context.Context, _ *domain.AnalysisRun) error {
	s.saves++
	return errStoreDown
}

func (s *failingRunStore) Get(_ context.Context, _ string) (*domain.AnalysisRun, error) {
	return nil, errStoreDown
}

func (s *failingRunStore) List(_ context.Context, _ int) ([]domain.RunSummary, error) {
	return nil, errStoreDown
}

func (s *failingRunStore) LatestForVideo(_ context.Context, _ string) (*domain.AnalysisRun, error) {
	return nil, errStoreDown
}

func (s *failingRunStore) Delete(_ context.Context, _ string) error {
	return errStoreDown
}

func sampleComments() []domain.RawComment {
	return []domain.RawComment{
		domain.NewRawComment("GOOD video", "2024-01-05T10:00:00Z", "UC1"),
		domain.NewRawComment("bad audio", "2024-01-20T10:00:00Z", "UC2"),
		domain.NewRawComment("first", "2024-02-01T00:00:00Z", ""),
	}
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
