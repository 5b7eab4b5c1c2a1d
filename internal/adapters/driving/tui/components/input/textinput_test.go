package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewVideoInput(t *testing.T) {
	in := NewVideoInput(nil)

	assert.True(t, in.Focused())
	assert.Empty(t, in.Value())
	assert.Contains(t, in.View(), "Video:")
}

func TestVideoInput_TypingAndTrim(t *testing.T) {
	in := NewVideoInput(nil)

	for _, r := range " abc " {
		in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "abc", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestVideoInput_FocusAndWidth(t *testing.T) {
	in := NewVideoInput(nil)

	in.Blur()
	assert.False(t, in.Focused())
	in.Focus()
	assert.True(t, in.Focused())

	in.SetWidth(10)
	assert.Equal(t, 10, in.Width())

	in.SetValue("dQw4w9WgXcQ")
	assert.Equal(t, "dQw4w9WgXcQ", in.Value())
}
