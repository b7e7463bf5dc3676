// Package microsoft configures the Microsoft identity platform token client.
package microsoft

import (
	"log/slog"
	"net/http"

	"calsync/config"
	"calsync/internal/domain/entity"
	"calsync/internal/domain/service"
	"calsync/internal/infra/auth/oauthclient"

	"go.uber.org/fx"
	"golang.org/x/oauth2/microsoft"
)

// Scopes is the fixed scope set requested on every exchange and refresh.
var Scopes = []string{"User.Read", "Calendars.Read"}

type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenClient builds the Microsoft token client from the microsoft config section.
func NewTokenClient(params Params) service.ProviderTokenClient {
	return newClient(params.Config.Microsoft, nil, params.Logger)
}

func newClient(cfg *config.MicrosoftConfig, httpClient *http.Client, logger *slog.Logger) *oauthclient.Client {
	endpoint := microsoft.AzureADEndpoint(cfg.Tenant)
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return oauthclient.New(oauthclient.Settings{
		Provider:     entity.ProviderMicrosoft,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
		Scopes:       Scopes,
		Endpoint:     endpoint,
		HTTPClient:   httpClient,
		Logger:       logger,
	})
}
