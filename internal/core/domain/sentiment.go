package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Label is a discrete sentiment class.
type Label int

// The three sentiment classes.
const (
	Negative Label = -1
	Neutral  Label = 0
	Positive Label = 1
)

// Labels lists every sentiment class in the fixed reporting order.
var Labels = []Label{Negative, Neutral, Positive}

// IsValid returns true if the label is one of the three sentiment classes.
func (l Label) IsValid() bool {
	return l == Negative || l == Neutral || l == Positive
}

// String returns the human-readable class name.
func (l Label) String() string {
	switch l {
	case Negative:
		return "Negative"
	case Neutral:
		return "Neutral"
	case Positive:
		return "Positive"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Key returns the label as the string key used in count maps ("1", "0", "-1").
func (l Label) Key() string {
	return strconv.Itoa(int(l))
}

// ParseLabel converts an integer class into a Label.
func ParseLabel(v int) (Label, error) {
	l := Label(v)
	if !l.IsValid() {
		return 0, fmt.Errorf("%w: sentiment %d is not one of -1, 0, 1", ErrInvalidInput, v)
	}
	return l, nil
}

// DefaultConfidence is assigned when the classifier cannot estimate probabilities.
const DefaultConfidence = 1.0

// Prediction is the classifier output for one feature row.
type Prediction struct {
	Label      Label
	Confidence float64
}

// RoundConfidence rounds a confidence to two decimal places and clamps it to [0, 1].
func RoundConfidence(c float64) float64 {
	if math.IsNaN(c) || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return math.Round(c*100) / 100
}

// AnalysisRecord is one output row of an analysis.
// JSON field names match the dashboard contract.
type AnalysisRecord struct {
	OriginalComment  string  `json:"Original_Comment"`
	ProcessedComment string  `json:"Processed_Comment"`
	Confidence       float64 `json:"confidence"`
	Sentiment        Label   `json:"sentiment"`
	Timestamp        string  `json:"timestamp"`
	AuthorID         string  `json:"AuthorID"`
}

// SentimentPoint is the minimal input of the trend chart.
type SentimentPoint struct {
	Timestamp string `json:"timestamp"`
	Sentiment Label  `json:"sentiment"`
}

// Point returns the record's trend input.
func (r AnalysisRecord) Point() SentimentPoint {
	return SentimentPoint{Timestamp: r.Timestamp, Sentiment: r.Sentiment}
}

// SentimentCounts holds the number of comments per class.
// JSON keys match the proportion chart contract.
type SentimentCounts struct {
	Positive int `json:"1"`
	Neutral  int `json:"0"`
	Negative int `json:"-1"`
}

// Add increments the count for l. Invalid labels are ignored.
func (c *SentimentCounts) Add(l Label) {
	switch l {
	case Positive:
		c.Positive++
	case Neutral:
		c.Neutral++
	case Negative:
		c.Negative++
	}
}

// Get returns the count for l.
func (c SentimentCounts) Get(l Label) int {
	switch l {
	case Positive:
		return c.Positive
	case Neutral:
		return c.Neutral
	case Negative:
		return c.Negative
	default:
		return 0
	}
}

// Total returns the number of counted comments.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}
