// Package google configures the Google OAuth2 token client.
package google

import (
	"log/slog"
	"net/http"
	"strings"

	"calsync/config"
	"calsync/internal/domain/entity"
	"calsync/internal/domain/service"
	"calsync/internal/infra/auth/oauthclient"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenClient builds the Google token client from the googleOAuth config section.
func NewTokenClient(params Params) service.ProviderTokenClient {
	return newClient(params.Config.GoogleOAuth, nil, params.Logger)
}

func newClient(cfg *config.GoogleOAuthConfig, httpClient *http.Client, logger *slog.Logger) *oauthclient.Client {
	endpoint := google.Endpoint
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return oauthclient.New(oauthclient.Settings{
		Provider:       entity.ProviderGoogle,
		ClientID:       cfg.ClientID,
		ClientSecret:   cfg.ClientSecret,
		RedirectURI:    cfg.RedirectURI,
		Scopes:         strings.Fields(cfg.Scopes),
		Endpoint:       endpoint,
		AuthURLOptions: []oauth2.AuthCodeOption{oauth2.AccessTypeOffline},
		HTTPClient:     httpClient,
		Logger:         logger,
	})
}
