package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

type analyzeRequest struct {
	VideoID string `json:"videoId"`
}

type pointsRequest struct {
	SentimentData []domain.SentimentPoint `json:"sentiment_data"`
}

type chartRequest struct {
	SentimentCounts *domain.SentimentCounts `json:"sentiment_counts"`
}

type termsRequest struct {
	Comments []string `json:"comments"`
	Limit    int      `json:"limit"`
}

type summaryRequest struct {
	Records []domain.AnalysisRecord `json:"records"`
}

// ChartSlice is one segment of the sentiment proportion chart.
type ChartSlice struct {
	Sentiment  string  `json:"sentiment"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, invalid("%v", err))
		return
	}
	if strings.TrimSpace(req.VideoID) == "" {
		writeError(w, invalid("no video ID provided"))
		return
	}

	run, err := s.ports.Analysis.Analyze(r.Context(), req.VideoID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("X-Run-ID", run.ID)
	writeJSON(w, http.StatusOK, run.Records)
}

func (s *Server) handleCounts(w http.ResponseWriter, r *http.Request) {
	var req pointsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, invalid("%v", err))
		return
	}
	if len(req.SentimentData) == 0 {
		writeError(w, invalid("no sentiment data provided"))
		return
	}

	var counts domain.SentimentCounts
	for _, p := range req.SentimentData {
		counts.Add(p.Sentiment)
	}
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var req chartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, invalid("%v", err))
		return
	}
	if req.SentimentCounts == nil {
		writeError(w, invalid("no sentiment counts provided"))
		return
	}

	writeJSON(w, http.StatusOK, chartSlices(*req.SentimentCounts))
}

// chartSlices orders slices Positive, Neutral, Negative.
func chartSlices(c domain.SentimentCounts) []ChartSlice {
	total := c.Total()
	order := []domain.Label{domain.Positive, domain.Neutral, domain.Negative}
	slices := make([]ChartSlice, 0, len(order))
	for _, l := range order {
		n := c.Get(l)
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		slices = append(slices, ChartSlice{
			Sentiment:  l.Key(),
			Label:      l.String(),
			Count:      n,
			Percentage: pct,
		})
	}
	return slices
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	var req pointsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, invalid("%v", err))
		return
	}
	if len(req.SentimentData) == 0 {
		writeError(w, invalid("no sentiment data provided"))
		return
	}

	buckets, err := s.ports.Analysis.Trend(req.SentimentData)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleTerms(w http.ResponseWriter, r *http.Request) {
	var req termsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, invalid("%v", err))
		return
	}
	if len(req.Comments) == 0 {
		writeError(w, invalid("no comments provided"))
		return
	}
	if req.Limit <= 0 {
		req.Limit = DefaultTermLimit
	}

	writeJSON(w, http.StatusOK, s.ports.Analysis.TermFrequency(req.Comments, req.Limit))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, invalid("%v", err))
		return
	}

	writeJSON(w, http.StatusOK, s.ports.Analysis.Summarise(req.Records))
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, fmt.Errorf("%w: history is disabled", domain.ErrNotFound))
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, invalid("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	runs, err := s.ports.History.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, fmt.Errorf("%w: history is disabled", domain.ErrNotFound))
		return
	}

	run, err := s.ports.History.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, fmt.Errorf("%w: history is disabled", domain.ErrNotFound))
		return
	}

	if err := s.ports.History.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
