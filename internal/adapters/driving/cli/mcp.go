package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satya-labs/satya-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can analyse
video comments.

Tools:      analyze_video, sentiment_trend, term_frequency
Resources:  satya://runs, satya://runs/{runId}

By default the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Examples:
  # Stdio mode (default, for desktop assistants)
  satya mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  satya mcp serve --port 8080

Desktop assistant configuration:
  {
    "mcpServers": {
      "satya": {
        "command": "/path/to/satya",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	analysis, err := requireAnalysis()
	if err != nil {
		return err
	}
	if err := analysis.Ready(); err != nil {
		return fmt.Errorf("loading models: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Analysis: analysis,
		History:  historyService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
