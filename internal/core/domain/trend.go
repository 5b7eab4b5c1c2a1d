package domain

import "time"

// TrendBucket holds the sentiment percentages of one calendar month.
// The three percentages sum to 100 when Total > 0 and are all 0 otherwise.
type TrendBucket struct {
	// PeriodStart is midnight UTC on the first day of the month.
	PeriodStart time.Time `json:"period_start"`

	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`

	// Total is the number of comments in the month.
	Total int `json:"total"`
}

// Percentage returns the bucket's share for l.
func (b TrendBucket) Percentage(l Label) float64 {
	switch l {
	case Negative:
		return b.Negative
	case Neutral:
		return b.Neutral
	case Positive:
		return b.Positive
	default:
		return 0
	}
}

// Month formats the bucket period as YYYY-MM.
func (b TrendBucket) Month() string {
	return b.PeriodStart.Format("2006-01")
}
