package youtube

import "github.com/satya-labs/satya-cli/internal/core/domain"

// Config holds comment fetch configuration.
type Config struct {
	// MaxComments caps the total comments returned per video.
	MaxComments int
	// PageSize is the number of comments requested per API call.
	PageSize int
	// RateLimit paces page requests.
	RateLimit RateLimitConfig
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxComments: domain.DefaultMaxComments,
		PageSize:    domain.DefaultPageSize,
		RateLimit:   DefaultRateLimit,
	}
}

// ConfigFromSettings extracts fetch configuration from settings.
// Out-of-range values keep their defaults.
func ConfigFromSettings(s domain.Settings) *Config {
	cfg := DefaultConfig()

	if s.MaxComments > 0 && s.MaxComments <= domain.MaxCommentsLimit {
		cfg.MaxComments = s.MaxComments
	}
	if s.PageSize > 0 && s.PageSize <= domain.MaxPageSize {
		cfg.PageSize = s.PageSize
	}
	if s.RequestsPerSecond > 0 {
		cfg.RateLimit.RequestsPerSecond = s.RequestsPerSecond
	}
	if s.Burst > 0 {
		cfg.RateLimit.BurstSize = s.Burst
	}

	return cfg
}

// normalise clamps out-of-range values into the provider's limits.
func (c Config) normalise() *Config {
	if c.MaxComments <= 0 || c.MaxComments > domain.MaxCommentsLimit {
		c.MaxComments = domain.MaxCommentsLimit
	}
	if c.PageSize <= 0 || c.PageSize > domain.MaxPageSize {
		c.PageSize = domain.MaxPageSize
	}
	return &c
}
