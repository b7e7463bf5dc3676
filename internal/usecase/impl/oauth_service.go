package impl

import (
	"context"
	"log/slog"

	deliverycontext "calsync/internal/delivery/context"
	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/domain/service"
	"calsync/internal/errors"
	"calsync/internal/usecase"

	"go.uber.org/fx"
)

type oauthService struct {
	clients map[entity.ProviderType]service.ProviderTokenClient
	logger  *slog.Logger
}

// OAuthServiceParams collects every registered provider token client.
type OAuthServiceParams struct {
	fx.In

	Clients []service.ProviderTokenClient `group:"providerTokenClients"`
	Logger  *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	clients := make(map[entity.ProviderType]service.ProviderTokenClient, len(params.Clients))
	for _, client := range params.Clients {
		clients[client.Provider()] = client
	}

	return &oauthService{clients: clients, logger: params.Logger}
}

func (srv *oauthService) AuthorizationURL(provider entity.ProviderType, state string) (string, error) {
	client, err := srv.client(provider)
	if err != nil {
		return "", err
	}

	return client.AuthorizationURL(state), nil
}

// ExchangeCode trades a code for provider tokens. Nothing is persisted here.
func (srv *oauthService) ExchangeCode(ctx context.Context, provider entity.ProviderType, code string) (*entity.ProviderToken, error) {
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("code is required")
	}

	client, err := srv.client(provider)
	if err != nil {
		return nil, err
	}

	token, err := client.ExchangeAuthorizationCode(ctx, code)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Authorization code exchange failed",
			slog.String("provider", provider.String()),
			slog.Any("error", err),
		)

		return nil, errors.Join(domainerrors.ErrProviderExchangeFailed, err)
	}

	return token, nil
}

func (srv *oauthService) client(provider entity.ProviderType) (service.ProviderTokenClient, error) {
	client, ok := srv.clients[provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider
	}

	return client, nil
}
