package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satya-labs/satya-cli/internal/adapters/driven/storage/memory"
	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/logger"
	"github.com/satya-labs/satya-cli/internal/normalisers/comment"
)

func newTestService(source *mockSource, models *mockModels) (*AnalysisService, *memory.RunStore) {
	store := memory.NewRunStore()
	svc := NewAnalysisService(source, mockNormaliser{}, models, store)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestAnalyze_Success(t *testing.T) {
	source := &mockSource{comments: sampleComments()}
	svc, store := newTestService(source, newModels(&fixedProba{row: []float64{0.1, 0.2, 0.666}}))

	run, err := svc.Analyze(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, []string{"dQw4w9WgXcQ"}, source.fetched)
	assert.True(t, source.hasDeadline, "fetch must be bounded by a timeout")
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "dQw4w9WgXcQ", run.VideoID)
	assert.Equal(t, fixedNow, run.CreatedAt)

	require.Len(t, run.Records, 3)
	assert.Equal(t, domain.AnalysisRecord{
		OriginalComment:  "GOOD video",
		ProcessedComment: "good video",
		Confidence:       0.67,
		Sentiment:        domain.Positive,
		Timestamp:        "2024-01-05T10:00:00Z",
		AuthorID:         "UC1",
	}, run.Records[0])
	assert.Equal(t, domain.Negative, run.Records[1].Sentiment)
	assert.Equal(t, domain.Neutral, run.Records[2].Sentiment)
	assert.Equal(t, domain.UnknownAuthor, run.Records[2].AuthorID)

	saved, err := store.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, saved)
}

func TestAnalyze_ConfidenceFallback(t *testing.T) {
	source := &mockSource{comments: sampleComments()}
	svc, _ := newTestService(source, newModels(nil))

	run, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	for _, r := range run.Records {
		assert.Equal(t, 1.0, r.Confidence)
	}
}

func TestAnalyze_PreservesOrder(t *testing.T) {
	var comments []domain.RawComment
	for i := 0; i < 50; i++ {
		text := "meh"
		if i%3 == 0 {
			text = "good"
		}
		comments = append(comments, domain.NewRawComment(fmt.Sprintf("%s %d", text, i), "2024-01-01", ""))
	}
	source := &mockSource{comments: comments}
	svc, _ := newTestService(source, newModels(nil))

	run, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, run.Records, len(comments))
	for i, r := range run.Records {
		assert.Equal(t, comments[i].Text, r.OriginalComment)
		if i%3 == 0 {
			assert.Equal(t, domain.Positive, r.Sentiment)
		}
	}
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		source *mockSource
		models *mockModels
		want   error
	}{
		{"invalid ref", "nope", &mockSource{}, newModels(nil), domain.ErrInvalidInput},
		{"empty", "dQw4w9WgXcQ", &mockSource{}, newModels(nil), domain.ErrEmptyResult},
		{"comments disabled", "dQw4w9WgXcQ", &mockSource{fetchErr: domain.ErrCommentsDisabled}, newModels(nil), domain.ErrCommentsDisabled},
		{"quota", "dQw4w9WgXcQ", &mockSource{fetchErr: domain.ErrQuotaExceeded}, newModels(nil), domain.ErrQuotaExceeded},
		{"transport", "dQw4w9WgXcQ", &mockSource{fetchErr: domain.ErrTransport}, newModels(nil), domain.ErrTransport},
		{"model load", "dQw4w9WgXcQ", &mockSource{comments: sampleComments()}, &mockModels{err: domain.ErrModelLoad}, domain.ErrModelLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(tt.source, tt.models)
			run, err := svc.Analyze(context.Background(), tt.ref)
			assert.Nil(t, run)
			assert.ErrorIs(t, err, tt.want)

			runs, listErr := store.List(context.Background(), 0)
			require.NoError(t, listErr)
			assert.Empty(t, runs)
		})
	}
}

func TestAnalyze_ModelLoadSkipsFetch(t *testing.T) {
	source := &mockSource{comments: sampleComments()}
	svc, _ := newTestService(source, &mockModels{err: domain.ErrModelLoad})

	_, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Empty(t, source.fetched)
}

func TestAnalyze_AlignmentError(t *testing.T) {
	source := &mockSource{comments: sampleComments()}
	models := newModels(nil)
	models.models.Vectorizer = &keywordVectorizer{terms: []string{"good", "bad"}, dropRows: true}
	svc, _ := newTestService(source, models)

	_, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, domain.ErrAlignment)
	assert.Equal(t, domain.FailureAlignment, domain.FailureOf(err))
}

func TestAnalyze_SaveFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	store := &failingRunStore{}
	svc := NewAnalysisService(&mockSource{comments: sampleComments()}, mockNormaliser{}, newModels(nil), store)

	run, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Len(t, run.Records, 3)
	assert.Equal(t, 1, store.saves)
	assert.Contains(t, buf.String(), "database is locked")
}

func TestAnalyze_NoStore(t *testing.T) {
	svc := NewAnalysisService(&mockSource{comments: sampleComments()}, mockNormaliser{}, newModels(nil), nil)
	svc.SetFetchTimeout(0)

	run, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Len(t, run.Records, 3)
}

func TestAnalyze_NotConfigured(t *testing.T) {
	svc := NewAnalysisService(nil, nil, nil, nil)
	_, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
	assert.Error(t, err)
}

func TestAnalysisService_Ready(t *testing.T) {
	models := newModels(nil)
	svc, _ := newTestService(&mockSource{}, models)

	require.NoError(t, svc.Ready())
	assert.Equal(t, 1, models.calls)
}

func TestAnalysisService_ReadyModelLoadFailure(t *testing.T) {
	source := &mockSource{comments: sampleComments()}
	svc, _ := newTestService(source, &mockModels{err: domain.ErrModelLoad})

	assert.ErrorIs(t, svc.Ready(), domain.ErrModelLoad)
	assert.Empty(t, source.fetched)
}

func TestAnalysisService_ReadyNotConfigured(t *testing.T) {
	svc := NewAnalysisService(nil, nil, nil, nil)
	assert.Error(t, svc.Ready())
}

func TestAnalyze_LoadsModelsPerCall(t *testing.T) {
	models := newModels(nil)
	svc, _ := newTestService(&mockSource{comments: sampleComments()}, models)

	for i := 0; i < 3; i++ {
		_, err := svc.Analyze(context.Background(), "dQw4w9WgXcQ")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, models.calls)
}

func TestAnalysisService_Aggregations(t *testing.T) {
	svc := NewAnalysisService(nil, comment.New(nil), nil, nil)

	buckets, err := svc.Trend([]domain.SentimentPoint{
		{Timestamp: "2024-01-05", Sentiment: domain.Positive},
		{Timestamp: "2024-01-20", Sentiment: domain.Negative},
	})
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.InDelta(t, 50.0, buckets[0].Positive, 1e-9)

	summary := svc.Summarise([]domain.AnalysisRecord{{OriginalComment: "nice one", Sentiment: domain.Positive, AuthorID: "a"}})
	assert.Equal(t, 10.0, summary.Score)

	terms := svc.TermFrequency([]string{"Great video, great editing!", "the editing is great"}, 2)
	assert.Equal(t, []domain.TermCount{{Term: "great", Count: 3}, {Term: "editing", Count: 2}}, terms)
}
