package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// Credentials selects how the API client authenticates.
// A token provider takes precedence over an API key.
type Credentials struct {
	APIKey        string
	TokenProvider driven.TokenProvider
}

// CredentialsFromSettings builds credentials from application settings.
func CredentialsFromSettings(s domain.Settings) Credentials {
	creds := Credentials{APIKey: s.YouTubeAPIKey}
	if s.YouTubeAccessToken != "" {
		creds.TokenProvider = NewStaticTokenProvider(s.YouTubeAccessToken)
	}
	return creds
}

// NewService creates a YouTube Data API service.
// Extra options are appended after the credential option, which lets
// tests point the client at a local endpoint.
func NewService(ctx context.Context, creds Credentials, opts ...option.ClientOption) (*ytapi.Service, error) {
	var auth option.ClientOption
	switch {
	case creds.TokenProvider != nil && creds.TokenProvider.IsAuthenticated():
		auth = option.WithTokenSource(NewTokenSource(ctx, creds.TokenProvider))
	case creds.APIKey != "":
		auth = option.WithAPIKey(creds.APIKey)
	default:
		return nil, fmt.Errorf("%w: no YouTube API key or access token configured", domain.ErrInvalidInput)
	}

	svc, err := ytapi.NewService(ctx, append([]option.ClientOption{auth}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return svc, nil
}
