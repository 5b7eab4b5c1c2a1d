package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"runs"},
	Short:   "Manage stored analysis runs",
	RunE:    runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.PersistentFlags().IntP("limit", "n", 20, "Maximum number of runs to list (0 = all)")
	historyShowCmd.Flags().Bool("json", false, "Print the run as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	history, err := requireHistory()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	runs, err := history.List(cmd.Context(), limit)
	if err != nil {
		return describeError(err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No stored runs.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.VideoID,
			humanize.Time(r.CreatedAt),
			strconv.Itoa(r.CommentCount),
			strconv.Itoa(r.Counts.Positive),
			strconv.Itoa(r.Counts.Neutral),
			strconv.Itoa(r.Counts.Negative),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Run", "Video", "Analysed", "Comments", "Pos", "Neu", "Neg"}, rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	history, err := requireHistory()
	if err != nil {
		return err
	}

	run, err := history.Get(cmd.Context(), args[0])
	if err != nil {
		return describeError(err)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, run)
	}

	fmt.Fprintf(out, "Run:      %s\n", run.ID)
	fmt.Fprintf(out, "Video:    %s\n", run.VideoID)
	fmt.Fprintf(out, "Analysed: %s (%s)\n", run.CreatedAt.Local().Format("2006-01-02 15:04"), humanize.Time(run.CreatedAt))
	fmt.Fprintf(out, "Comments: %d\n\n", len(run.Records))
	fmt.Fprintln(out, countsTable(out, run.Counts()))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	history, err := requireHistory()
	if err != nil {
		return err
	}

	if err := history.Delete(cmd.Context(), args[0]); err != nil {
		return describeError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
	return nil
}
