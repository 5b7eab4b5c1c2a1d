// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// AnalysisRequested asks for a video to be analysed.
type AnalysisRequested struct {
	VideoRef string
}

// AnalysisCompleted carries the outcome of an analysis.
type AnalysisCompleted struct {
	Run *domain.AnalysisRun
	Err error
}

// HistoryLoaded carries the stored run listing.
type HistoryLoaded struct {
	Runs []domain.RunSummary
	Err  error
}

// RunOpened carries a stored run to display.
type RunOpened struct {
	Run *domain.AnalysisRun
	Err error
}

// RunDeleted reports the deletion of a stored run.
type RunDeleted struct {
	ID  string
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewAnalyze is the video input and result view.
	ViewAnalyze
	// ViewHistory lists stored runs.
	ViewHistory
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewAnalyze:
		return "analyze"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
