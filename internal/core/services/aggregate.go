package services

import (
	"fmt"
	"time"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// timestampLayouts are the accepted trend timestamp formats, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// JoinRecords zips comments, their normalised text and their predictions
// into output records by position. Differing lengths mean a pipeline stage
// dropped or added rows and are reported as domain.ErrAlignment.
func JoinRecords(
	comments []domain.RawComment, normalised []string, preds []domain.Prediction,
) ([]domain.AnalysisRecord, error) {
	if len(normalised) != len(comments) || len(preds) != len(comments) {
		return nil, fmt.Errorf("%w: %d comments, %d normalised, %d predictions",
			domain.ErrAlignment, len(comments), len(normalised), len(preds))
	}

	records := make([]domain.AnalysisRecord, len(comments))
	for i, c := range comments {
		records[i] = domain.AnalysisRecord{
			OriginalComment:  c.Text,
			ProcessedComment: normalised[i],
			Confidence:       domain.RoundConfidence(preds[i].Confidence),
			Sentiment:        preds[i].Label,
			Timestamp:        c.PublishedAt,
			AuthorID:         c.AuthorID,
		}
	}
	return records, nil
}

// ParseTimestamp parses a comment timestamp. RFC 3339 timestamps and bare
// YYYY-MM-DD dates are accepted; values without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised timestamp %q", domain.ErrInvalidInput, s)
}

// monthStart returns midnight UTC on the first day of t's month.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BucketByMonth groups points by calendar month (UTC) and converts the
// label counts of each month into percentages.
//
// Buckets run in ascending order from the earliest to the latest month
// with no gaps; a month without comments is present with all
// percentages at 0. Empty input yields no buckets.
func BucketByMonth(points []domain.SentimentPoint) ([]domain.TrendBucket, error) {
	if len(points) == 0 {
		return []domain.TrendBucket{}, nil
	}

	counts := make(map[time.Time]*domain.SentimentCounts)
	var first, last time.Time
	for i, p := range points {
		if !p.Sentiment.IsValid() {
			return nil, fmt.Errorf("%w: point %d has sentiment %d", domain.ErrInvalidInput, i, int(p.Sentiment))
		}
		ts, err := ParseTimestamp(p.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}

		month := monthStart(ts)
		c, ok := counts[month]
		if !ok {
			c = &domain.SentimentCounts{}
			counts[month] = c
		}
		c.Add(p.Sentiment)

		if first.IsZero() || month.Before(first) {
			first = month
		}
		if month.After(last) {
			last = month
		}
	}

	var buckets []domain.TrendBucket
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		b := domain.TrendBucket{PeriodStart: month}
		if c, ok := counts[month]; ok {
			b = newBucket(month, *c)
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}

// newBucket converts counts to percentages of their total.
func newBucket(month time.Time, c domain.SentimentCounts) domain.TrendBucket {
	b := domain.TrendBucket{PeriodStart: month, Total: c.Total()}
	if b.Total == 0 {
		return b
	}
	total := float64(b.Total)
	b.Negative = float64(c.Negative) / total * 100
	b.Neutral = float64(c.Neutral) / total * 100
	b.Positive = float64(c.Positive) / total * 100
	return b
}

// CountSentiments tallies points by label. Invalid labels are ignored.
func CountSentiments(points []domain.SentimentPoint) domain.SentimentCounts {
	var c domain.SentimentCounts
	for _, p := range points {
		c.Add(p.Sentiment)
	}
	return c
}
