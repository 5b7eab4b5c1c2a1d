package domain

import (
	"fmt"
	"time"
)

// Default pipeline settings.
const (
	// DefaultMaxComments caps the number of comments fetched per video.
	DefaultMaxComments = 500

	// MaxCommentsLimit is the largest accepted max_comments value.
	MaxCommentsLimit = 500

	// DefaultPageSize is the number of comments requested per API call.
	// The YouTube Data API accepts at most 100.
	DefaultPageSize = 100

	// MaxPageSize is the provider's per-call limit.
	MaxPageSize = 100

	// DefaultFetchTimeout bounds the whole paginated fetch.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultListenAddr is the HTTP API address.
	DefaultListenAddr = "127.0.0.1:8000"
)

// Settings is the typed application configuration.
type Settings struct {
	// YouTubeAPIKey authenticates requests to the YouTube Data API.
	YouTubeAPIKey string

	// YouTubeAccessToken is an optional OAuth access token used instead of the key.
	YouTubeAccessToken string

	// VectorizerPath is the TF-IDF artifact path.
	VectorizerPath string

	// ModelPath is the classifier artifact path.
	ModelPath string

	// MaxComments caps the comments fetched per video.
	MaxComments int

	// PageSize is the per-request page size.
	PageSize int

	// FetchTimeout bounds the paginated fetch.
	FetchTimeout time.Duration

	// RequestsPerSecond paces API page requests.
	RequestsPerSecond float64

	// Burst is the limiter's burst size.
	Burst int

	// ListenAddr is the HTTP API listen address.
	ListenAddr string

	// DataDir holds the history database and lock files.
	DataDir string

	// History enables persisting analysis runs.
	History bool
}

// DefaultSettings returns settings with defaults applied.
func DefaultSettings() Settings {
	return Settings{
		VectorizerPath:    "models/tfidf_vectorizer.json",
		ModelPath:         "models/sentiment_model.json",
		MaxComments:       DefaultMaxComments,
		PageSize:          DefaultPageSize,
		FetchTimeout:      DefaultFetchTimeout,
		RequestsPerSecond: 5,
		Burst:             10,
		ListenAddr:        DefaultListenAddr,
		History:           true,
	}
}

// Validate checks the settings for values the pipeline cannot run with.
func (s Settings) Validate() error {
	if s.MaxComments <= 0 || s.MaxComments > MaxCommentsLimit {
		return fmt.Errorf("%w: max_comments must be between 1 and %d", ErrInvalidInput, MaxCommentsLimit)
	}
	if s.PageSize <= 0 || s.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page_size must be between 1 and %d", ErrInvalidInput, MaxPageSize)
	}
	if s.FetchTimeout < 0 {
		return fmt.Errorf("%w: fetch_timeout must not be negative", ErrInvalidInput)
	}
	if s.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests_per_second must be positive", ErrInvalidInput)
	}
	if s.Burst <= 0 {
		return fmt.Errorf("%w: burst must be positive", ErrInvalidInput)
	}
	return nil
}

// HasCredentials returns true if either an API key or access token is set.
func (s Settings) HasCredentials() bool {
	return s.YouTubeAPIKey != "" || s.YouTubeAccessToken != ""
}

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAPIKey            = "youtube.api_key"
	KeyAccessToken       = "youtube.access_token"
	KeyVectorizerPath    = "models.vectorizer_path"
	KeyModelPath         = "models.classifier_path"
	KeyMaxComments       = "fetch.max_comments"
	KeyPageSize          = "fetch.page_size"
	KeyFetchTimeout      = "fetch.timeout"
	KeyRequestsPerSecond = "fetch.requests_per_second"
	KeyBurst             = "fetch.burst"
	KeyListenAddr        = "server.listen_addr"
	KeyHistoryEnabled    = "history.enabled"
	KeyDataDir           = "history.data_dir"
)

// Environment variables that override the config file.
const (
	EnvAPIKey         = "YOUTUBE_API_KEY"
	EnvAccessToken    = "YOUTUBE_ACCESS_TOKEN"
	EnvVectorizerPath = "SATYA_VECTORIZER_PATH"
	EnvModelPath      = "SATYA_MODEL_PATH"
	EnvDataDir        = "SATYA_DATA_DIR"
)
