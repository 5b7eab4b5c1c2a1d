package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/messages"
)

func TestNewView_Items(t *testing.T) {
	assert.Len(t, NewView(nil, true).Items(), 4)

	items := NewView(nil, false).Items()
	require.Len(t, items, 3)
	for _, item := range items {
		assert.NotEqual(t, messages.ViewHistory, item.View)
	}
}

func TestView_NotReadyUntilSized(t *testing.T) {
	view := NewView(nil, true)
	assert.Equal(t, "Initialising...", view.View())

	view.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, view.View(), "satya")
	assert.Contains(t, view.View(), "History")
}

func TestView_Navigation(t *testing.T) {
	view := NewView(nil, true)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 3, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, view.Selected())
}

func TestView_SelectEmitsViewChanged(t *testing.T) {
	view := NewView(nil, true)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHistory}, cmd())
}

func TestView_QuitItem(t *testing.T) {
	view := NewView(nil, false)
	for range view.Items() {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
