// Package analyze provides the video analysis view for the TUI.
package analyze

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/components/input"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/components/status"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/keymap"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/messages"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/tui/styles"
	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
)

// Display limits.
const (
	topTerms   = 10
	barWidth   = 30
	maxRecords = 8
)

// View shows the video input and, once analysed, the run's dashboard.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	analysis driving.AnalysisService
	ctx      context.Context

	input  *input.VideoInput
	status *status.Bar

	run      *domain.AnalysisRun
	summary  domain.Summary
	trend    []domain.TrendBucket
	terms    []domain.TermCount
	trendErr error
	err      error
	loading  bool

	width  int
	height int
}

// NewView creates the analysis view.
func NewView(s *styles.Styles, analysis driving.AnalysisService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	return &View{
		styles:   s,
		keymap:   km,
		analysis: analysis,
		ctx:      context.Background(),
		input:    input.NewVideoInput(s),
		status:   status.NewBar(s, km),
		width:    80,
		height:   24,
	}
}

// WithContext sets the context analyses run under.
func (v *View) WithContext(ctx context.Context) {
	v.ctx = ctx
}

// Init focuses the input.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Focus(), v.input.Init())
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.AnalysisCompleted:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetState(status.StateError)
			v.status.SetMessage(domain.UserMessage(msg.Err))
			return v, v.input.Focus()
		}
		v.SetRun(msg.Run)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.run == nil && !v.loading {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	}
	if v.loading {
		return v, nil
	}

	if v.run != nil {
		if keymap.Matches(msg.String(), v.keymap.NewAnalysis) {
			v.Reset()
			return v, v.input.Focus()
		}
		return v, nil
	}

	if keymap.Matches(msg.String(), v.keymap.Analyze) {
		ref := v.input.Value()
		if ref == "" {
			return v, nil
		}
		v.loading = true
		v.err = nil
		v.status.SetState(status.StateAnalysing)
		v.status.SetMessage(ref)
		v.input.Blur()
		return v, v.analyzeCmd(ref)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) analyzeCmd(ref string) tea.Cmd {
	analysis, ctx := v.analysis, v.ctx
	return func() tea.Msg {
		run, err := analysis.Analyze(ctx, ref)
		return messages.AnalysisCompleted{Run: run, Err: err}
	}
}

// SetRun displays a completed run.
func (v *View) SetRun(run *domain.AnalysisRun) {
	v.run = run
	v.err = nil
	v.loading = false
	v.summary = v.analysis.Summarise(run.Records)
	v.trend, v.trendErr = v.analysis.Trend(run.Points())
	v.terms = v.analysis.TermFrequency(run.Comments(), topTerms)
	v.status.SetState(status.StateResults)
	v.status.SetMessage("")
	v.status.SetCount(len(run.Records))
}

// Reset clears the result and input.
func (v *View) Reset() {
	v.run = nil
	v.err = nil
	v.trend = nil
	v.terms = nil
	v.trendErr = nil
	v.loading = false
	v.input.Reset()
	v.status.Clear()
}

// View renders the view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Analyse a video"))
	b.WriteString("\n\n")

	if v.run == nil {
		b.WriteString(v.input.View())
		b.WriteString("\n\n")
	} else {
		b.WriteString(v.renderRun())
	}

	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderRun() string {
	var b strings.Builder
	s := v.summary

	fmt.Fprintf(&b, "%s %s\n\n", v.styles.Subtitle.Render("Video"), v.run.VideoID)
	fmt.Fprintf(&b, "Comments %d   Commenters %d   Avg words %.2f   Avg sentiment %.2f   Score %.2f/10\n\n",
		s.TotalComments, s.UniqueCommenters, s.AvgWords, s.AvgSentiment, s.Score)

	for _, l := range []domain.Label{domain.Positive, domain.Neutral, domain.Negative} {
		n := s.Counts.Get(l)
		pct := 0.0
		if s.TotalComments > 0 {
			pct = float64(n) / float64(s.TotalComments) * 100
		}
		fmt.Fprintf(&b, "%-9s %s %5.1f%% (%d)\n", l, v.styles.Sentiment(l).Render(bar(pct)), pct, n)
	}

	b.WriteString("\n" + v.styles.Subtitle.Render("Monthly trend") + "\n")
	if v.trendErr != nil {
		b.WriteString(v.styles.Error.Render(domain.UserMessage(v.trendErr)) + "\n")
	}
	for _, bucket := range v.trend {
		fmt.Fprintf(&b, "%s  %s %s %s  (%d)\n",
			bucket.Month(),
			v.styles.Positive.Render(fmt.Sprintf("+%5.1f%%", bucket.Positive)),
			v.styles.Neutral.Render(fmt.Sprintf("=%5.1f%%", bucket.Neutral)),
			v.styles.Negative.Render(fmt.Sprintf("-%5.1f%%", bucket.Negative)),
			bucket.Total,
		)
	}

	if len(v.terms) > 0 {
		b.WriteString("\n" + v.styles.Subtitle.Render("Top terms") + "\n")
		parts := make([]string, len(v.terms))
		for i, t := range v.terms {
			parts[i] = fmt.Sprintf("%s (%d)", t.Term, t.Count)
		}
		b.WriteString(strings.Join(parts, ", ") + "\n")
	}

	b.WriteString("\n" + v.styles.Subtitle.Render("Comments") + "\n")
	for i, rec := range v.run.Records {
		if i == maxRecords {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("... %d more", len(v.run.Records)-maxRecords)) + "\n")
			break
		}
		fmt.Fprintf(&b, "%s %.2f  %s\n",
			v.styles.Sentiment(rec.Sentiment).Render(fmt.Sprintf("%-8s", rec.Sentiment)),
			rec.Confidence,
			truncate(rec.OriginalComment, v.width-20),
		)
	}
	return b.String()
}

// bar renders pct as a horizontal bar of barWidth cells.
func bar(pct float64) string {
	n := int(pct / 100 * barWidth)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if n < 10 {
		n = 10
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.status.SetWidth(width)
}

// Run returns the displayed run, if any.
func (v *View) Run() *domain.AnalysisRun {
	return v.run
}

// Err returns the last analysis error.
func (v *View) Err() error {
	return v.err
}

// Loading reports whether an analysis is in flight.
func (v *View) Loading() bool {
	return v.loading
}
