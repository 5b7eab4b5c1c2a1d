package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

func TestDefaultTheme_SentimentColoursDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{theme.Positive, theme.Neutral, theme.Negative, theme.Primary} {
		assert.NotEmpty(t, string(c))
		assert.False(t, seen[c], "duplicate colour %s", c)
		seen[c] = true
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.Theme())
}

func TestStyles_Sentiment(t *testing.T) {
	s := DefaultStyles()
	theme := s.Theme()

	tests := []struct {
		label domain.Label
		want  lipgloss.TerminalColor
	}{
		{domain.Positive, theme.Positive},
		{domain.Neutral, theme.Neutral},
		{domain.Negative, theme.Negative},
		{domain.Label(7), theme.Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.label.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sentiment(tt.label).GetForeground())
		})
	}
}
