// Package history provides the stored runs view for the TUI.
package history

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/components/list"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/components/status"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/keymap"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/messages"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/styles"
	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
)

// listLimit bounds the number of runs loaded.
const listLimit = 100

// View lists stored runs and opens or deletes them.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	history driving.HistoryService
	ctx     context.Context

	list   *list.RunList
	status *status.Bar
	err    error
}

// NewView creates the history view.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	return &View{
		styles:  s,
		keymap:  km,
		history: history,
		ctx:     context.Background(),
		list:    list.NewRunList(s),
		status:  status.NewBar(s, km),
	}
}

// WithContext sets the context used for store calls.
func (v *View) WithContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the run listing.
func (v *View) Init() tea.Cmd {
	history, ctx := v.history, v.ctx
	return func() tea.Msg {
		runs, err := history.List(ctx, listLimit)
		return messages.HistoryLoaded{Runs: runs, Err: err}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.list.SetRuns(msg.Runs)
		v.status.SetState(status.StateHistory)
		v.status.SetCount(len(msg.Runs))
		return v, nil

	case messages.RunDeleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		return v, v.Init()

	case messages.RunOpened:
		if msg.Err != nil {
			v.setError(msg.Err)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }

	case keymap.Matches(key, v.keymap.Select):
		selected := v.list.Selected()
		if selected == nil {
			return v, nil
		}
		id, history, ctx := selected.ID, v.history, v.ctx
		return v, func() tea.Msg {
			run, err := history.Get(ctx, id)
			return messages.RunOpened{Run: run, Err: err}
		}

	case keymap.Matches(key, v.keymap.Delete):
		selected := v.list.Selected()
		if selected == nil {
			return v, nil
		}
		id, history, ctx := selected.ID, v.history, v.ctx
		return v, func() tea.Msg {
			return messages.RunDeleted{ID: id, Err: history.Delete(ctx, id)}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *View) setError(err error) {
	v.err = err
	v.status.SetState(status.StateError)
	v.status.SetMessage(domain.UserMessage(err))
}

// View renders the view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.status.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.list.SetSize(width, height-6)
	v.status.SetWidth(width)
}

// Runs returns the listed runs.
func (v *View) Runs() []domain.RunSummary {
	return v.list.Runs()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
