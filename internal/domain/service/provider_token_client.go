package service

import (
	"context"

	"calsync/internal/domain/entity"
)

// ProviderTokenClient performs OAuth2 code exchange and refresh against one provider.
// Implementations hold only static configuration and never persist the tokens they obtain.
// Failures are never retried.
type ProviderTokenClient interface {
	Provider() entity.ProviderType

	// AuthorizationURL returns the provider consent URL carrying state.
	AuthorizationURL(state string) string

	// ExchangeAuthorizationCode trades an authorization code for a token set.
	// A non-2xx response is a *ProviderAuthError with the status and body.
	ExchangeAuthorizationCode(ctx context.Context, code string) (*entity.ProviderToken, error)

	// RefreshAccessToken trades a refresh token for a fresh access token.
	// An empty response body yields ErrEmptyTokenResponse, which callers treat
	// as "could not refresh" and stop.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*entity.ProviderToken, error)
}
