package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

func TestMCPServeCmd_Metadata(t *testing.T) {
	assert.Equal(t, "serve", mcpServeCmd.Use)
	assert.Contains(t, mcpServeCmd.Long, "analyze_video")

	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RequiresAnalysis(t *testing.T) {
	SetServices(Services{})

	_, err := execute(t, "mcp", "serve")

	assert.EqualError(t, err, "analysis service not configured")
}

func TestMCPServeCmd_ModelLoadFailureAbortsStartup(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.analysis.readyErr = fmt.Errorf("%w: vectorizer vocabulary is empty", domain.ErrModelLoad)

	_, err := execute(t, "mcp", "serve")

	assert.ErrorIs(t, err, domain.ErrModelLoad)
}

func TestTUICmd_RequiresAnalysis(t *testing.T) {
	SetServices(Services{})

	_, err := execute(t, "tui")

	assert.EqualError(t, err, "analysis service not configured")
}
