package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

func TestServer_handleAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns summary and limited records", func(t *testing.T) {
		analysis := &mockAnalysisService{run: testRun("run-1", 30)}
		server, err := NewServer(&Ports{Analysis: analysis})
		require.NoError(t, err)

		_, output, err := server.handleAnalyze(ctx, nil, AnalyzeInput{Video: "dQw4w9WgXcQ"})

		require.NoError(t, err)
		assert.Equal(t, "run-1", output.RunID)
		assert.Equal(t, 30, output.Summary.TotalComments)
		assert.Len(t, output.Records, defaultRecordLimit)
	})

	t.Run("custom limit", func(t *testing.T) {
		analysis := &mockAnalysisService{run: testRun("run-1", 30)}
		server, err := NewServer(&Ports{Analysis: analysis})
		require.NoError(t, err)

		_, output, err := server.handleAnalyze(ctx, nil, AnalyzeInput{Video: "x", Limit: 3})

		require.NoError(t, err)
		assert.Len(t, output.Records, 3)
	})

	t.Run("tags errors with failure kind", func(t *testing.T) {
		analysis := &mockAnalysisService{err: fmt.Errorf("%w: reason", domain.ErrCommentsDisabled)}
		server, err := NewServer(&Ports{Analysis: analysis})
		require.NoError(t, err)

		_, _, err = server.handleAnalyze(ctx, nil, AnalyzeInput{Video: "x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCommentsDisabled)
		assert.Contains(t, err.Error(), "comments_disabled")
	})
}

func TestServer_handleTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("reuses latest stored run", func(t *testing.T) {
		analysis := &mockAnalysisService{run: testRun("fresh", 1)}
		history := &mockHistoryService{latest: testRun("stored", 4)}
		server, err := NewServer(&Ports{Analysis: analysis, History: history})
		require.NoError(t, err)

		_, output, err := server.handleTrend(ctx, nil, VideoInput{Video: "dQw4w9WgXcQ"})

		require.NoError(t, err)
		assert.Equal(t, "stored", output.RunID)
		require.Len(t, output.Buckets, 1)
		assert.Equal(t, 4, output.Buckets[0].Total)
		assert.Zero(t, analysis.analyzed)
	})

	t.Run("analyses when nothing is stored", func(t *testing.T) {
		analysis := &mockAnalysisService{run: testRun("fresh", 2)}
		history := &mockHistoryService{latestE: domain.ErrNotFound}
		server, err := NewServer(&Ports{Analysis: analysis, History: history})
		require.NoError(t, err)

		_, output, err := server.handleTrend(ctx, nil, VideoInput{Video: "x"})

		require.NoError(t, err)
		assert.Equal(t, "fresh", output.RunID)
		assert.Equal(t, 1, analysis.analyzed)
	})

	t.Run("fresh skips history", func(t *testing.T) {
		analysis := &mockAnalysisService{run: testRun("fresh", 2)}
		history := &mockHistoryService{latest: testRun("stored", 4)}
		server, err := NewServer(&Ports{Analysis: analysis, History: history})
		require.NoError(t, err)

		_, output, err := server.handleTrend(ctx, nil, VideoInput{Video: "x", Fresh: true})

		require.NoError(t, err)
		assert.Equal(t, "fresh", output.RunID)
	})

	t.Run("history failure is returned", func(t *testing.T) {
		analysis := &mockAnalysisService{run: testRun("fresh", 2)}
		history := &mockHistoryService{latestE: domain.ErrInvalidInput}
		server, err := NewServer(&Ports{Analysis: analysis, History: history})
		require.NoError(t, err)

		_, _, err = server.handleTrend(ctx, nil, VideoInput{Video: "not a video"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, analysis.analyzed)
	})

	t.Run("trend failure is returned", func(t *testing.T) {
		analysis := &mockAnalysisService{run: testRun("fresh", 1), trendErr: domain.ErrInvalidInput}
		server, err := NewServer(&Ports{Analysis: analysis})
		require.NoError(t, err)

		_, _, err = server.handleTrend(ctx, nil, VideoInput{Video: "x"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleTerms(t *testing.T) {
	ctx := context.Background()
	analysis := &mockAnalysisService{run: testRun("run-1", 40)}
	server, err := NewServer(&Ports{Analysis: analysis})
	require.NoError(t, err)

	_, output, err := server.handleTerms(ctx, nil, TermsInput{Video: "x"})
	require.NoError(t, err)
	assert.Len(t, output.Terms, defaultTermLimit)

	_, output, err = server.handleTerms(ctx, nil, TermsInput{Video: "x", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, output.Terms, 2)
}
