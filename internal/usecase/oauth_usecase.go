package usecase

import (
	"context"

	"calsync/internal/domain/entity"
)

// OAuthUsecase runs the server-side authorization code flow for a provider.
type OAuthUsecase interface {
	AuthorizationURL(provider entity.ProviderType, state string) (string, error)
	ExchangeCode(ctx context.Context, provider entity.ProviderType, code string) (*entity.ProviderToken, error)
}
