package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable draws rows with rounded borders on a terminal and plain
// ASCII otherwise.
func renderTable(w io.Writer, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if isTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func countsTable(w io.Writer, counts domain.SentimentCounts) string {
	total := counts.Total()
	rows := make([][]string, 0, len(domain.Labels))
	for _, l := range []domain.Label{domain.Positive, domain.Neutral, domain.Negative} {
		n := counts.Get(l)
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		rows = append(rows, []string{l.String(), fmt.Sprintf("%d", n), fmt.Sprintf("%.1f%%", pct)})
	}
	return renderTable(w, []string{"Sentiment", "Comments", "Share"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignRight})
}

func summaryLines(s domain.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total comments:    %d\n", s.TotalComments)
	fmt.Fprintf(&b, "Unique commenters: %d\n", s.UniqueCommenters)
	fmt.Fprintf(&b, "Avg words:         %.2f\n", s.AvgWords)
	fmt.Fprintf(&b, "Avg sentiment:     %.2f\n", s.AvgSentiment)
	fmt.Fprintf(&b, "Score (0-10):      %.2f\n", s.Score)
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// describeError turns pipeline failures into a single user-facing line.
func describeError(err error) error {
	if err == nil {
		return nil
	}
	kind := domain.FailureOf(err)
	if kind == domain.FailureInternal {
		return err
	}
	return fmt.Errorf("%s (%s)", domain.UserMessage(err), kind)
}
