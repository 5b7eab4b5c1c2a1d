package driving

import "github.com/satya-labs/satya-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, overridden by the
	// config file, overridden by the environment.
	Get() (*domain.Settings, error)

	// Set validates and stores a single setting given as text.
	Set(key, value string) error

	// Keys lists the recognised setting keys in display order.
	Keys() []string

	// Validate checks the effective settings.
	Validate() error

	// ConfigPath returns the location of the config file.
	ConfigPath() string
}
