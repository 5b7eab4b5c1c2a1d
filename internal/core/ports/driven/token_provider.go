package driven

import "context"

// TokenProvider provides OAuth access tokens for the comment API.
// It is used when the user authenticates with an account rather than an API key.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if a token is available.
	IsAuthenticated() bool
}
