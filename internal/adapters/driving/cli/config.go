package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Manage application settings",
	Long: `View and change satya settings.

Settings are stored in ~/.satya/config.toml. Environment variables
YOUTUBE_API_KEY, YOUTUBE_ACCESS_TOKEN, SATYA_VECTORIZER_PATH,
SATYA_MODEL_PATH and SATYA_DATA_DIR take precedence over the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting. Run 'satya config keys' for the recognised keys.

Examples:
  satya config set fetch.max_comments 200
  satya config set fetch.timeout 45s
  satya config set history.enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognised setting keys",
	RunE:  runConfigKeys,
}

var configSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key",
	Short: "Store the YouTube Data API key",
	Long:  `Prompt for the YouTube Data API key without echoing it and store it.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigSetAPIKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configSetAPIKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("Config file: %s\n\n", settingsService.ConfigPath())

	cmd.Println("[YouTube]")
	cmd.Printf("  API key:      %s\n", maskAPIKey(settings.YouTubeAPIKey))
	cmd.Printf("  Access token: %s\n", maskAPIKey(settings.YouTubeAccessToken))
	cmd.Println()

	cmd.Println("[Models]")
	cmd.Printf("  Vectorizer: %s\n", settings.VectorizerPath)
	cmd.Printf("  Classifier: %s\n", settings.ModelPath)
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Max comments:        %d\n", settings.MaxComments)
	cmd.Printf("  Page size:           %d\n", settings.PageSize)
	cmd.Printf("  Timeout:             %s\n", settings.FetchTimeout)
	cmd.Printf("  Requests per second: %g\n", settings.RequestsPerSecond)
	cmd.Printf("  Burst:               %d\n", settings.Burst)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Listen address: %s\n", settings.ListenAddr)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled:  %t\n", settings.History)
	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else if !settings.HasCredentials() {
		cmd.Println("No YouTube credentials set. Run 'satya config set-api-key'.")
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if key == domain.KeyAPIKey || key == domain.KeyAccessToken {
		value = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}
	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}

func runConfigSetAPIKey(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	cmd.Print("YouTube Data API key: ")
	key := readSecret(cmd.InOrStdin())
	cmd.Println()
	if key == "" {
		return errors.New("API key must not be empty")
	}

	if err := settingsService.Set(domain.KeyAPIKey, key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	cmd.Printf("API key stored (%s)\n", maskAPIKey(key))
	return nil
}

// readSecret reads a line without echo when in is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	input, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
