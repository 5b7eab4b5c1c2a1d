package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/httpapi"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/mcp"
	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/logger"
)

// lockFile is created in the data directory while a server runs.
const lockFile = "serve.lock"

// errServerRunning is returned when another server holds the lock.
var errServerRunning = errors.New("another satya server is already running")

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Long: `Serve the analysis pipeline as a JSON HTTP API for the dashboard.

Routes:
  GET    /api/health
  POST   /api/analyze_video
  POST   /api/sentiment_counts
  POST   /api/generate_chart
  POST   /api/trend            (alias /api/generate_trend_graph)
  POST   /api/term_frequency   (alias /api/generate_wordcloud)
  POST   /api/summary
  GET    /api/runs
  GET    /api/runs/{id}
  DELETE /api/runs/{id}

The MCP streamable HTTP endpoint is mounted at /mcp.
Only one server may run per data directory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from server.listen_addr)")
	serveCmd.Flags().Bool("no-mcp", false, "Do not mount the MCP endpoint")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	analysis, err := requireAnalysis()
	if err != nil {
		return err
	}
	if err := analysis.Ready(); err != nil {
		return fmt.Errorf("loading models: %w", err)
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = serveConfig.ListenAddr
	}
	if addr == "" {
		addr = domain.DefaultListenAddr
	}

	unlock, err := acquireServeLock(serveConfig.DataDir)
	if err != nil {
		return err
	}
	defer unlock()

	server, err := httpapi.NewServer(&httpapi.Ports{Analysis: analysis, History: historyService})
	if err != nil {
		return err
	}

	if noMCP, _ := cmd.Flags().GetBool("no-mcp"); !noMCP {
		mcpServer, err := mcp.NewServer(&mcp.Ports{Analysis: analysis, History: historyService})
		if err != nil {
			return err
		}
		server.Mount("/mcp", mcpServer.Handler())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", addr)
	return server.Run(ctx, addr)
}

// acquireServeLock takes an exclusive lock in dataDir. An empty dataDir
// skips locking.
func acquireServeLock(dataDir string) (func(), error) {
	if dataDir == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	lock := flock.New(filepath.Join(dataDir, lockFile))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring server lock: %w", err)
	}
	if !ok {
		return nil, errServerRunning
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("releasing server lock: %v", err)
		}
	}, nil
}
