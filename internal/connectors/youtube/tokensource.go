package youtube

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
)

// ErrNoToken is returned by StaticTokenProvider when no token is set.
var ErrNoToken = errors.New("youtube: no access token configured")

// TokenSourceAdapter adapts a driven.TokenProvider to oauth2.TokenSource
// so the API client can authenticate with a bearer token.
type TokenSourceAdapter struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
// Use it with option.WithTokenSource when creating the service.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
		ctx:      ctx,
	}
}

// Token implements oauth2.TokenSource.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}

// StaticTokenProvider serves a fixed access token, typically one
// supplied through configuration or YOUTUBE_ACCESS_TOKEN.
type StaticTokenProvider struct {
	token string
}

// Ensure StaticTokenProvider implements the interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// NewStaticTokenProvider creates a provider for token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the configured token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", ErrNoToken
	}
	return p.token, nil
}

// IsAuthenticated returns true if a token is configured.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
