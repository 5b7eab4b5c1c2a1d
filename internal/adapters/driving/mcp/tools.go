package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// Default limits for tool output.
const (
	defaultRecordLimit = 20
	defaultTermLimit   = 25
)

// VideoInput selects a video. Fresh forces a new analysis even when a stored run exists.
type VideoInput struct {
	Video string `json:"video" jsonschema:"YouTube video ID or watch URL"`
	Fresh bool   `json:"fresh,omitempty" jsonschema:"analyse again instead of reusing the latest stored run"`
}

// AnalyzeInput is the input schema for the analyze_video tool.
type AnalyzeInput struct {
	Video string `json:"video" jsonschema:"YouTube video ID or watch URL"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of comment records to return (default 20)"`
}

// AnalyzeOutput is the output schema for the analyze_video tool.
type AnalyzeOutput struct {
	RunID   string                  `json:"run_id"`
	VideoID string                  `json:"video_id"`
	Summary domain.Summary          `json:"summary"`
	Records []domain.AnalysisRecord `json:"records"`
}

// TrendOutput is the output schema for the sentiment_trend tool.
type TrendOutput struct {
	RunID   string               `json:"run_id"`
	VideoID string               `json:"video_id"`
	Buckets []domain.TrendBucket `json:"buckets"`
}

// TermsInput is the input schema for the term_frequency tool.
type TermsInput struct {
	Video string `json:"video" jsonschema:"YouTube video ID or watch URL"`
	Limit int    `json:"limit,omitempty" jsonschema:"number of terms to return (default 25)"`
	Fresh bool   `json:"fresh,omitempty" jsonschema:"analyse again instead of reusing the latest stored run"`
}

// TermsOutput is the output schema for the term_frequency tool.
type TermsOutput struct {
	RunID   string             `json:"run_id"`
	VideoID string             `json:"video_id"`
	Terms   []domain.TermCount `json:"terms"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_video",
		Description: "Fetch a YouTube video's comments and classify their sentiment",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sentiment_trend",
		Description: "Monthly sentiment percentages for a video's comments",
	}, s.handleTrend)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "term_frequency",
		Description: "Most frequent terms in a video's comments, stop words removed",
	}, s.handleTerms)
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	run, err := s.ports.Analysis.Analyze(ctx, input.Video)
	if err != nil {
		return nil, AnalyzeOutput{}, toolError(err)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecordLimit
	}
	records := run.Records
	if len(records) > limit {
		records = records[:limit]
	}

	return nil, AnalyzeOutput{
		RunID:   run.ID,
		VideoID: run.VideoID,
		Summary: s.ports.Analysis.Summarise(run.Records),
		Records: records,
	}, nil
}

func (s *Server) handleTrend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VideoInput,
) (*mcp.CallToolResult, TrendOutput, error) {
	run, err := s.runFor(ctx, input.Video, input.Fresh)
	if err != nil {
		return nil, TrendOutput{}, toolError(err)
	}

	buckets, err := s.ports.Analysis.Trend(run.Points())
	if err != nil {
		return nil, TrendOutput{}, toolError(err)
	}

	return nil, TrendOutput{RunID: run.ID, VideoID: run.VideoID, Buckets: buckets}, nil
}

func (s *Server) handleTerms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TermsInput,
) (*mcp.CallToolResult, TermsOutput, error) {
	run, err := s.runFor(ctx, input.Video, input.Fresh)
	if err != nil {
		return nil, TermsOutput{}, toolError(err)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultTermLimit
	}

	return nil, TermsOutput{
		RunID:   run.ID,
		VideoID: run.VideoID,
		Terms:   s.ports.Analysis.TermFrequency(run.Comments(), limit),
	}, nil
}

// runFor returns the latest stored run for video, analysing when there is none.
func (s *Server) runFor(ctx context.Context, video string, fresh bool) (*domain.AnalysisRun, error) {
	if !fresh && s.ports.History != nil {
		run, err := s.ports.History.Latest(ctx, video)
		if err == nil {
			return run, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return s.ports.Analysis.Analyze(ctx, video)
}
