package youtube

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// mockTokenProvider is a hand-written TokenProvider for tests.
type mockTokenProvider struct {
	token string
	err   error
}

func (m *mockTokenProvider) GetToken(_ context.Context) (string, error) {
	return m.token, m.err
}

func (m *mockTokenProvider) IsAuthenticated() bool {
	return m.token != ""
}

func TestNewService_NoCredentials(t *testing.T) {
	_, err := NewService(context.Background(), Credentials{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewService(context.Background(), Credentials{TokenProvider: &mockTokenProvider{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewService_WithCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
	}{
		{"api key", Credentials{APIKey: "key"}},
		{"token", Credentials{TokenProvider: &mockTokenProvider{token: "tok"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewService(context.Background(), tt.creds, option.WithHTTPClient(http.DefaultClient))
			require.NoError(t, err)
			assert.NotNil(t, svc.CommentThreads)
		})
	}
}

func TestCredentialsFromSettings(t *testing.T) {
	s := domain.DefaultSettings()
	s.YouTubeAPIKey = "key"

	creds := CredentialsFromSettings(s)
	assert.Equal(t, "key", creds.APIKey)
	assert.Nil(t, creds.TokenProvider)

	s.YouTubeAccessToken = "tok"
	creds = CredentialsFromSettings(s)
	require.NotNil(t, creds.TokenProvider)
	assert.True(t, creds.TokenProvider.IsAuthenticated())
}

func TestTokenSource(t *testing.T) {
	ts := NewTokenSource(context.Background(), &mockTokenProvider{token: "abc"})
	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)

	failing := errors.New("expired")
	ts = NewTokenSource(context.Background(), &mockTokenProvider{err: failing})
	_, err = ts.Token()
	assert.ErrorIs(t, err, failing)
}

func TestStaticTokenProvider(t *testing.T) {
	p := NewStaticTokenProvider("tok")
	assert.True(t, p.IsAuthenticated())
	tok, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)

	empty := NewStaticTokenProvider("")
	assert.False(t, empty.IsAuthenticated())
	_, err = empty.GetToken(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestConfigFromSettings(t *testing.T) {
	s := domain.DefaultSettings()
	s.MaxComments = 200
	s.PageSize = 250
	s.RequestsPerSecond = 1
	s.Burst = 2

	cfg := ConfigFromSettings(s)
	assert.Equal(t, 200, cfg.MaxComments)
	assert.Equal(t, domain.DefaultPageSize, cfg.PageSize, "page size above the API cap keeps the default")
	assert.Equal(t, RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2}, cfg.RateLimit)
}

func TestConfigFromSettings_MaxCommentsAboveLimit(t *testing.T) {
	s := domain.DefaultSettings()
	s.MaxComments = 1200

	cfg := ConfigFromSettings(s)
	assert.Equal(t, domain.DefaultMaxComments, cfg.MaxComments)
}

func TestRateLimiter(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	assert.True(t, r.Allow())
	assert.True(t, r.Allow())
	assert.False(t, r.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, r.Wait(ctx))

	d := NewRateLimiter(RateLimitConfig{})
	assert.NoError(t, d.Wait(context.Background()))
}
