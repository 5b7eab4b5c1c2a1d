// Package cli provides the satya command line interface.
// It is a driving adapter: commands translate flags and arguments into
// calls on the driving ports and render the results.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
	"github.com/satya-labs/satya-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root.
var (
	analysisService driving.AnalysisService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	serveConfig     ServeConfig

	// analysisUnavailable explains why analysisService is nil.
	analysisUnavailable error
)

// ServeConfig holds settings for the long-running server commands.
type ServeConfig struct {
	// ListenAddr is the default HTTP listen address.
	ListenAddr string

	// DataDir holds the server lock file.
	DataDir string
}

// Services aggregates everything the commands need.
type Services struct {
	Analysis driving.AnalysisService
	History  driving.HistoryService
	Settings driving.SettingsService
	Serve    ServeConfig

	// AnalysisErr is reported by pipeline commands when Analysis is nil.
	AnalysisErr error
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	analysisService = s.Analysis
	historyService = s.History
	settingsService = s.Settings
	serveConfig = s.Serve
	analysisUnavailable = s.AnalysisErr
}

// SetVersion sets the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "satya",
	Short: "YouTube comment sentiment analysis",
	Long: `satya fetches the comments of a YouTube video, classifies each one as
positive, neutral or negative with a pre-trained TF-IDF model, and
aggregates the results into counts, monthly trends and term frequencies.

Results can be viewed in the terminal, served as a JSON API, or exposed
to AI assistants over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print pipeline diagnostics to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func requireAnalysis() (driving.AnalysisService, error) {
	if analysisService != nil {
		return analysisService, nil
	}
	if analysisUnavailable != nil {
		return nil, analysisUnavailable
	}
	return nil, errors.New("analysis service not configured")
}

func requireHistory() (driving.HistoryService, error) {
	if historyService == nil {
		return nil, errors.New("analysis history is disabled (set history.enabled = true)")
	}
	return historyService, nil
}
