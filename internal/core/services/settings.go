package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindFloat
	kindBool
	kindDuration
)

// settingKinds lists every recognised key in display order.
var settingKinds = []struct {
	key  string
	kind settingKind
}{
	{domain.KeyAPIKey, kindString},
	{domain.KeyAccessToken, kindString},
	{domain.KeyVectorizerPath, kindString},
	{domain.KeyModelPath, kindString},
	{domain.KeyMaxComments, kindInt},
	{domain.KeyPageSize, kindInt},
	{domain.KeyFetchTimeout, kindDuration},
	{domain.KeyRequestsPerSecond, kindFloat},
	{domain.KeyBurst, kindInt},
	{domain.KeyListenAddr, kindString},
	{domain.KeyHistoryEnabled, kindBool},
	{domain.KeyDataDir, kindString},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service reading the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	settings.YouTubeAPIKey = s.getString(domain.KeyAPIKey, settings.YouTubeAPIKey)
	settings.YouTubeAccessToken = s.getString(domain.KeyAccessToken, settings.YouTubeAccessToken)
	settings.VectorizerPath = s.getString(domain.KeyVectorizerPath, settings.VectorizerPath)
	settings.ModelPath = s.getString(domain.KeyModelPath, settings.ModelPath)
	settings.MaxComments = s.getInt(domain.KeyMaxComments, settings.MaxComments)
	settings.PageSize = s.getInt(domain.KeyPageSize, settings.PageSize)
	settings.RequestsPerSecond = s.getFloat(domain.KeyRequestsPerSecond, settings.RequestsPerSecond)
	settings.Burst = s.getInt(domain.KeyBurst, settings.Burst)
	settings.ListenAddr = s.getString(domain.KeyListenAddr, settings.ListenAddr)
	settings.History = s.getBool(domain.KeyHistoryEnabled, settings.History)
	settings.DataDir = s.getString(domain.KeyDataDir, settings.DataDir)

	timeout, err := s.getDuration(domain.KeyFetchTimeout, settings.FetchTimeout)
	if err != nil {
		return nil, err
	}
	settings.FetchTimeout = timeout

	s.applyEnv(&settings)
	return &settings, nil
}

// applyEnv overrides settings from the environment.
func (s *SettingsService) applyEnv(settings *domain.Settings) {
	overrides := []struct {
		env    string
		target *string
	}{
		{domain.EnvAPIKey, &settings.YouTubeAPIKey},
		{domain.EnvAccessToken, &settings.YouTubeAccessToken},
		{domain.EnvVectorizerPath, &settings.VectorizerPath},
		{domain.EnvModelPath, &settings.ModelPath},
		{domain.EnvDataDir, &settings.DataDir},
	}
	for _, o := range overrides {
		if v, ok := s.lookupEnv(o.env); ok && v != "" {
			*o.target = v
		}
	}
}

// Set parses value according to the key's type and stores it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := kindOf(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (known: %s)", domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	parsed, err := parseSetting(kind, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKinds))
	for i, k := range settingKinds {
		keys[i] = k.key
	}
	return keys
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// ConfigPath returns the config file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func kindOf(key string) (settingKind, bool) {
	for _, k := range settingKinds {
		if k.key == key {
			return k.kind, true
		}
	}
	return 0, false
}

func parseSetting(kind settingKind, value string) (any, error) {
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", value)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", value)
		}
		return f, nil
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%q is not true or false", value)
		}
		return b, nil
	case kindDuration:
		if _, err := time.ParseDuration(value); err != nil {
			return nil, fmt.Errorf("%q is not a duration such as 30s", value)
		}
		return value, nil
	default:
		return value, nil
	}
}

// --- Helper methods ---

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val != 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if val := s.configStore.GetFloat(key); val != 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return defaultVal
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}
	return d, nil
}
