// Command satya classifies the comments of YouTube videos by sentiment.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/satya-labs/satya-cli/internal/adapters/driven/config/file"
	"github.com/satya-labs/satya-cli/internal/adapters/driven/storage/memory"
	"github.com/satya-labs/satya-cli/internal/adapters/driven/storage/sqlite"
	"github.com/satya-labs/satya-cli/internal/adapters/driving/cli"
	"github.com/satya-labs/satya-cli/internal/connectors/youtube"
	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/core/services"
	"github.com/satya-labs/satya-cli/internal/logger"
	"github.com/satya-labs/satya-cli/internal/ml"
	"github.com/satya-labs/satya-cli/internal/normalisers/comment"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cli.SetVersion(version)

	settingsService := services.NewSettingsService(openConfigStore(""))

	settings, err := settingsService.Get()
	if err != nil {
		logger.Error("reading settings: %v (using defaults)", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	store, closeStore := openRunStore(settings)
	defer closeStore()

	deps := cli.Services{
		Settings: settingsService,
		Serve: cli.ServeConfig{
			ListenAddr: settings.ListenAddr,
			DataDir:    dataDir(settings),
		},
	}

	analysis, err := newAnalysisService(context.Background(), settings, store)
	if err != nil {
		deps.AnalysisErr = err
	} else {
		deps.Analysis = analysis
	}

	if store != nil {
		deps.History = services.NewHistoryService(store, videoIDParser{})
	}

	cli.SetServices(deps)

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// newAnalysisService wires the pipeline stages. It fails only when the
// YouTube client cannot be built; models load on first use.
func newAnalysisService(
	ctx context.Context, settings *domain.Settings, store driven.AnalysisRunStore,
) (*services.AnalysisService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	ytService, err := youtube.NewService(ctx, youtube.CredentialsFromSettings(*settings))
	if err != nil {
		return nil, fmt.Errorf("%w (run 'satya config set-api-key' or set %s)", err, domain.EnvAPIKey)
	}
	fetcher := youtube.NewFetcher(ytService, youtube.ConfigFromSettings(*settings))

	lemmatizer, err := comment.NewGolemLemmatizer()
	if err != nil {
		return nil, fmt.Errorf("loading lemmatizer: %w", err)
	}
	normaliser := comment.New(lemmatizer)

	registry := ml.NewRegistry()
	ml.RegisterDefaults(registry)
	models := ml.NewLoader(settings.VectorizerPath, settings.ModelPath, registry)

	svc := services.NewAnalysisService(fetcher, normaliser, models, store)
	svc.SetFetchTimeout(settings.FetchTimeout)
	return svc, nil
}

// openConfigStore opens the TOML config in dir, falling back to an
// in-memory store so environment settings still apply.
func openConfigStore(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config file unavailable, settings will not persist: %v", err)
		return memory.NewConfigStore()
	}
	return store
}

// openRunStore opens the history database, falling back to an in-memory
// store when it cannot be opened. A nil store means history is disabled.
func openRunStore(settings *domain.Settings) (driven.AnalysisRunStore, func()) {
	if !settings.History {
		return nil, func() {}
	}

	db, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		logger.Warn("history database unavailable, keeping runs in memory: %v", err)
		return memory.NewRunStore(), func() {}
	}

	return db.RunStore(), func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing history database: %v", err)
		}
	}
}

func dataDir(settings *domain.Settings) string {
	if settings.DataDir != "" {
		return settings.DataDir
	}
	dir, err := sqlite.DefaultDataDir()
	if err != nil {
		return ""
	}
	return dir
}

// videoIDParser resolves video references for history lookups.
type videoIDParser struct{}

func (videoIDParser) ParseVideoID(ref string) (string, error) {
	return youtube.ParseVideoID(ref)
}
