// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/styles"
)

// VideoInput wraps a bubbles textinput for entering a video ID or URL.
type VideoInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewVideoInput creates a focused video input.
func NewVideoInput(s *styles.Styles) *VideoInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Video ID or https://www.youtube.com/watch?v=..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &VideoInput{textinput: ti, styles: s, width: 50}
}

// Init starts the cursor blink.
func (v *VideoInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (v *VideoInput) Update(msg tea.Msg) (*VideoInput, tea.Cmd) {
	var cmd tea.Cmd
	v.textinput, cmd = v.textinput.Update(msg)
	return v, cmd
}

// View renders the label and input box.
func (v *VideoInput) View() string {
	label := v.styles.Title.Render("Video: ")
	field := v.styles.InputField.Render(v.textinput.View())
	//nolint:misspell // lipgloss.Center is the library constant
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the trimmed input value.
func (v *VideoInput) Value() string {
	return strings.TrimSpace(v.textinput.Value())
}

// SetValue sets the input value.
func (v *VideoInput) SetValue(value string) {
	v.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (v *VideoInput) Focus() tea.Cmd {
	return v.textinput.Focus()
}

// Blur removes focus from the input.
func (v *VideoInput) Blur() {
	v.textinput.Blur()
}

// Focused reports whether the input is focused.
func (v *VideoInput) Focused() bool {
	return v.textinput.Focused()
}

// SetWidth sets the component width; the field never shrinks below 20 columns.
func (v *VideoInput) SetWidth(width int) {
	v.width = width
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	v.textinput.Width = inputWidth
}

// Width returns the current width.
func (v *VideoInput) Width() int {
	return v.width
}

// Reset clears the input.
func (v *VideoInput) Reset() {
	v.textinput.Reset()
}
