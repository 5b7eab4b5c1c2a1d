package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [video]",
	Short: "Classify the comments of a video",
	Long: `Fetch the comments of a YouTube video and classify each one as
positive, neutral or negative.

The video may be given as a bare 11-character ID or as a watch URL.
Completed runs are stored in the history database when it is enabled.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var trendCmd = &cobra.Command{
	Use:   "trend [video]",
	Short: "Show the monthly sentiment trend of a video",
	Long: `Show the share of positive, neutral and negative comments per calendar
month. The latest stored run for the video is used unless --fresh is set
or no run is stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrend,
}

var termsCmd = &cobra.Command{
	Use:   "terms [video]",
	Short: "Show the most frequent terms in a video's comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runTerms,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "Print records as JSON")
	analyzeCmd.Flags().IntP("limit", "n", 10, "Number of comments to list (0 = all)")

	trendCmd.Flags().Bool("fresh", false, "Analyse again instead of using a stored run")
	trendCmd.Flags().Bool("json", false, "Print buckets as JSON")

	termsCmd.Flags().Bool("fresh", false, "Analyse again instead of using a stored run")
	termsCmd.Flags().IntP("limit", "n", 20, "Number of terms to show")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(termsCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analysis, err := requireAnalysis()
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	limit, _ := cmd.Flags().GetInt("limit")

	run, err := analysis.Analyze(cmd.Context(), args[0])
	if err != nil {
		return describeError(err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, run.Records)
	}

	fmt.Fprintf(out, "Video %s: %d comments (run %s)\n\n", run.VideoID, len(run.Records), run.ID)
	fmt.Fprintln(out, countsTable(out, run.Counts()))
	fmt.Fprintln(out)
	fmt.Fprint(out, summaryLines(analysis.Summarise(run.Records)))

	records := run.Records
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	if len(records) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Sentiment.String(),
			strconv.FormatFloat(rec.Confidence, 'f', 2, 64),
			rec.Timestamp,
			truncate(rec.OriginalComment, 60),
		})
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(out, []string{"Sentiment", "Conf", "Published", "Comment"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft}))
	return nil
}

func runTrend(cmd *cobra.Command, args []string) error {
	analysis, err := requireAnalysis()
	if err != nil {
		return err
	}

	fresh, _ := cmd.Flags().GetBool("fresh")
	asJSON, _ := cmd.Flags().GetBool("json")

	run, err := runFor(cmd.Context(), args[0], fresh)
	if err != nil {
		return describeError(err)
	}

	buckets, err := analysis.Trend(run.Points())
	if err != nil {
		return describeError(err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, buckets)
	}

	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Month(),
			strconv.Itoa(b.Total),
			fmt.Sprintf("%.1f%%", b.Percentage(domain.Positive)),
			fmt.Sprintf("%.1f%%", b.Percentage(domain.Neutral)),
			fmt.Sprintf("%.1f%%", b.Percentage(domain.Negative)),
		})
	}
	fmt.Fprintf(out, "Monthly sentiment for %s\n", run.VideoID)
	fmt.Fprintln(out, renderTable(out, []string{"Month", "Comments", "Positive", "Neutral", "Negative"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight}))
	return nil
}

func runTerms(cmd *cobra.Command, args []string) error {
	analysis, err := requireAnalysis()
	if err != nil {
		return err
	}

	fresh, _ := cmd.Flags().GetBool("fresh")
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	run, err := runFor(cmd.Context(), args[0], fresh)
	if err != nil {
		return describeError(err)
	}

	terms := analysis.TermFrequency(run.Comments(), limit)
	rows := make([][]string, 0, len(terms))
	for _, t := range terms {
		rows = append(rows, []string{t.Term, strconv.Itoa(t.Count)})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Top terms for %s\n", run.VideoID)
	fmt.Fprintln(out, renderTable(out, []string{"Term", "Count"}, rows,
		[]columnAlignment{alignLeft, alignRight}))
	return nil
}

// runFor returns the latest stored run for a video, analysing it when
// nothing is stored or fresh is set.
func runFor(ctx context.Context, videoRef string, fresh bool) (*domain.AnalysisRun, error) {
	if !fresh && historyService != nil {
		run, err := historyService.Latest(ctx, videoRef)
		if err == nil {
			return run, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return analysisService.Analyze(ctx, videoRef)
}
