package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel_IsValid(t *testing.T) {
	assert.True(t, Negative.IsValid())
	assert.True(t, Neutral.IsValid())
	assert.True(t, Positive.IsValid())
	assert.False(t, Label(2).IsValid())
	assert.False(t, Label(-2).IsValid())
}

func TestLabel_StringAndKey(t *testing.T) {
	assert.Equal(t, "Negative", Negative.String())
	assert.Equal(t, "Neutral", Neutral.String())
	assert.Equal(t, "Positive", Positive.String())
	assert.Equal(t, "Label(7)", Label(7).String())

	assert.Equal(t, "-1", Negative.Key())
	assert.Equal(t, "0", Neutral.Key())
	assert.Equal(t, "1", Positive.Key())
}

func TestLabels_Order(t *testing.T) {
	assert.Equal(t, []Label{-1, 0, 1}, Labels)
}

func TestParseLabel(t *testing.T) {
	l, err := ParseLabel(-1)
	require.NoError(t, err)
	assert.Equal(t, Negative, l)

	_, err = ParseLabel(3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoundConfidence(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.4567, 0.46},
		{0.444, 0.44},
		{1.0, 1.0},
		{0, 0},
		{1.2, 1.0},
		{-0.3, 0},
		{0.999, 1.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundConfidence(tt.in), 1e-9)
	}
}

func TestAnalysisRecord_JSONKeys(t *testing.T) {
	rec := AnalysisRecord{
		OriginalComment:  "Great video!",
		ProcessedComment: "great video!",
		Confidence:       0.87,
		Sentiment:        Positive,
		Timestamp:        "2024-01-05T10:00:00Z",
		AuthorID:         "UC123",
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Great video!", m["Original_Comment"])
	assert.Equal(t, "great video!", m["Processed_Comment"])
	assert.Equal(t, 0.87, m["confidence"])
	assert.Equal(t, float64(1), m["sentiment"])
	assert.Equal(t, "2024-01-05T10:00:00Z", m["timestamp"])
	assert.Equal(t, "UC123", m["AuthorID"])
}

func TestSentimentCounts(t *testing.T) {
	var c SentimentCounts
	c.Add(Positive)
	c.Add(Positive)
	c.Add(Negative)
	c.Add(Label(5))

	assert.Equal(t, 2, c.Get(Positive))
	assert.Equal(t, 0, c.Get(Neutral))
	assert.Equal(t, 1, c.Get(Negative))
	assert.Equal(t, 3, c.Total())

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":2,"0":0,"-1":1}`, string(data))
}

func TestNewRawComment_UnknownAuthor(t *testing.T) {
	c := NewRawComment("hi", "2024-01-01T00:00:00Z", "")
	assert.Equal(t, UnknownAuthor, c.AuthorID)

	c = NewRawComment("hi", "2024-01-01T00:00:00Z", "UCabc")
	assert.Equal(t, "UCabc", c.AuthorID)
}
