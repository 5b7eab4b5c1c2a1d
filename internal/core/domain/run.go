package domain

import "time"

// AnalysisRun is the result of analysing one video.
type AnalysisRun struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// VideoID is the analysed video.
	VideoID string `json:"video_id"`

	// CreatedAt is when the analysis finished.
	CreatedAt time.Time `json:"created_at"`

	// Records holds one row per fetched comment, in provider order.
	Records []AnalysisRecord `json:"records"`
}

// RunSummary is a lightweight listing entry for a stored run.
type RunSummary struct {
	ID           string          `json:"id"`
	VideoID      string          `json:"video_id"`
	CreatedAt    time.Time       `json:"created_at"`
	CommentCount int             `json:"comment_count"`
	Counts       SentimentCounts `json:"sentiment_counts"`
}

// Summary holds dashboard metrics for a set of records.
type Summary struct {
	TotalComments    int             `json:"total_comments"`
	UniqueCommenters int             `json:"unique_commenters"`
	AvgWords         float64         `json:"avg_words"`
	AvgSentiment     float64         `json:"avg_sentiment"`
	Score            float64         `json:"score"`
	Counts           SentimentCounts `json:"sentiment_counts"`
}

// TermCount is a term and its number of occurrences.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Counts tallies the run's records by sentiment.
func (r *AnalysisRun) Counts() SentimentCounts {
	var c SentimentCounts
	for _, rec := range r.Records {
		c.Add(rec.Sentiment)
	}
	return c
}

// Summary returns the run's listing entry.
func (r *AnalysisRun) Summary() RunSummary {
	return RunSummary{
		ID:           r.ID,
		VideoID:      r.VideoID,
		CreatedAt:    r.CreatedAt,
		CommentCount: len(r.Records),
		Counts:       r.Counts(),
	}
}

// Points returns the trend input of every record, in record order.
func (r *AnalysisRun) Points() []SentimentPoint {
	points := make([]SentimentPoint, len(r.Records))
	for i, rec := range r.Records {
		points[i] = rec.Point()
	}
	return points
}

// Comments returns the original text of every record, in record order.
func (r *AnalysisRun) Comments() []string {
	comments := make([]string, len(r.Records))
	for i, rec := range r.Records {
		comments[i] = rec.OriginalComment
	}
	return comments
}
