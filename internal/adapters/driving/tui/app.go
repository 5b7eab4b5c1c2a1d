package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/messages"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/styles"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/views/analyze"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/views/history"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/views/menu"
)

// App is the main TUI application following the Elm architecture.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView    *menu.View
	analyzeView *analyze.View
	historyView *history.View

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s, ports.History != nil),
		analyzeView: analyze.NewView(s, ports.Analysis),
		currentView: messages.ViewMenu,
	}
	if ports.History != nil {
		a.historyView = history.NewView(s, ports.History)
	}
	return a, nil
}

// WithContext sets the context service calls run under.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.analyzeView.WithContext(ctx)
	if a.historyView != nil {
		a.historyView.WithContext(ctx)
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("satya")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.AnalysisCompleted:
		a.err = msg.Err
		a.analyzeView, cmd = a.analyzeView.Update(msg)
		return a, cmd

	case messages.RunOpened:
		if msg.Err != nil || msg.Run == nil {
			a.err = msg.Err
			if a.historyView != nil {
				a.historyView, cmd = a.historyView.Update(msg)
			}
			return a, cmd
		}
		a.analyzeView.SetRun(msg.Run)
		a.currentView = messages.ViewAnalyze
		return a, nil

	case messages.HistoryLoaded, messages.RunDeleted:
		if a.historyView != nil {
			a.historyView, cmd = a.historyView.Update(msg)
		}
		return a, cmd
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewAnalyze:
		a.analyzeView, cmd = a.analyzeView.Update(msg)
	case messages.ViewHistory:
		if a.historyView != nil {
			a.historyView, cmd = a.historyView.Update(msg)
		}
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) switchView(view messages.ViewType) tea.Cmd {
	if view == messages.ViewHistory && a.historyView == nil {
		return nil
	}
	a.currentView = view

	switch view {
	case messages.ViewAnalyze:
		if a.analyzeView.Run() == nil {
			a.analyzeView.Reset()
		}
		return a.analyzeView.Init()
	case messages.ViewHistory:
		return a.historyView.Init()
	case messages.ViewMenu, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewAnalyze:
		return a.analyzeView.View()
	case messages.ViewHistory:
		if a.historyView != nil {
			return a.historyView.View()
		}
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to menu
  ctrl+c      Quit

Analyse:
  (type)      Video ID or watch URL
  enter       Fetch and classify comments
  n           Analyse another video

History:
  j/k, ↑/↓    Navigate runs
  enter       Open run
  d           Delete run

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.analyzeView.SetDimensions(width, height)
	if a.historyView != nil {
		a.historyView.SetDimensions(width, height)
	}
}
