// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/styles"
	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// RunList displays stored analysis runs in a navigable list.
type RunList struct {
	runs     []domain.RunSummary
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRunList creates an empty run list.
func NewRunList(s *styles.Styles) *RunList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &RunList{styles: s, width: 80, height: 10}
}

// Update handles list navigation keys.
func (r *RunList) Update(msg tea.Msg) (*RunList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of runs around the selection.
func (r *RunList) View() string {
	if len(r.runs) == 0 {
		return r.styles.Muted.Render("No stored runs")
	}

	lines := []string{
		r.styles.Subtitle.Render(fmt.Sprintf("Runs (%d)", len(r.runs))),
		"",
	}

	visible := r.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.runs) {
		end = len(r.runs)
	}

	for i := start; i < end; i++ {
		line := r.renderRun(r.runs[i])
		if i == r.selected {
			line = r.styles.Selected.Render("> " + line)
		} else {
			line = "  " + r.styles.Normal.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (r *RunList) renderRun(run domain.RunSummary) string {
	return fmt.Sprintf("%s  %-12s %4d comments  +%d =%d -%d",
		humanize.Time(run.CreatedAt),
		run.VideoID,
		run.CommentCount,
		run.Counts.Positive,
		run.Counts.Neutral,
		run.Counts.Negative,
	)
}

// MoveUp moves the selection up.
func (r *RunList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the selection down.
func (r *RunList) MoveDown() {
	if r.selected < len(r.runs)-1 {
		r.selected++
	}
}

// SetRuns replaces the runs, clamping the selection.
func (r *RunList) SetRuns(runs []domain.RunSummary) {
	r.runs = runs
	if r.selected >= len(runs) {
		r.selected = len(runs) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
}

// Runs returns the listed runs.
func (r *RunList) Runs() []domain.RunSummary {
	return r.runs
}

// Selected returns the selected run, or nil when the list is empty.
func (r *RunList) Selected() *domain.RunSummary {
	if len(r.runs) == 0 {
		return nil
	}
	return &r.runs[r.selected]
}

// SelectedIndex returns the selection index.
func (r *RunList) SelectedIndex() int {
	return r.selected
}

// SetSize sets the list dimensions.
func (r *RunList) SetSize(width, height int) {
	r.width = width
	r.height = height
}
