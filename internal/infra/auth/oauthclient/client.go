// Package oauthclient talks to an OAuth2 token endpoint with a form POST.
// Provider packages configure it; it holds no per-user state.
package oauthclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "calsync/internal/delivery/context"
	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"
	"calsync/internal/util"

	"golang.org/x/oauth2"
)

const defaultTimeout = 10 * time.Second

// Settings is the static configuration of one provider.
type Settings struct {
	Provider     entity.ProviderType
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
	Endpoint     oauth2.Endpoint

	// AuthURLOptions are appended to every consent URL.
	AuthURLOptions []oauth2.AuthCodeOption

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client implements service.ProviderTokenClient.
type Client struct {
	provider     entity.ProviderType
	clientID     string
	clientSecret string
	redirectURI  string
	scope        string
	tokenURL     string
	authOpts     []oauth2.AuthCodeOption
	oauth        *oauth2.Config
	httpClient   *http.Client
	logger       *slog.Logger
}

// New builds a Client. A nil HTTPClient gets one with a 10s timeout.
func New(settings Settings) *Client {
	httpClient := settings.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := settings.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		provider:     settings.Provider,
		clientID:     settings.ClientID,
		clientSecret: settings.ClientSecret,
		redirectURI:  settings.RedirectURI,
		scope:        strings.Join(settings.Scopes, " "),
		tokenURL:     settings.Endpoint.TokenURL,
		authOpts:     settings.AuthURLOptions,
		oauth: &oauth2.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			RedirectURL:  settings.RedirectURI,
			Scopes:       settings.Scopes,
			Endpoint:     settings.Endpoint,
		},
		httpClient: httpClient,
		logger:     logger.With(slog.String("provider", settings.Provider.String())),
	}
}

func (c *Client) Provider() entity.ProviderType {
	return c.provider
}

// AuthorizationURL returns the consent page URL for state.
func (c *Client) AuthorizationURL(state string) string {
	return c.oauth.AuthCodeURL(state, c.authOpts...)
}

// ExchangeAuthorizationCode posts grant_type=authorization_code.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, code string) (*entity.ProviderToken, error) {
	form := c.baseForm()
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)
	form.Set("grant_type", "authorization_code")

	return c.requestToken(ctx, form)
}

// RefreshAccessToken posts grant_type=refresh_token. redirect_uri is not sent.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*entity.ProviderToken, error) {
	form := c.baseForm()
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	return c.requestToken(ctx, form)
}

func (c *Client) baseForm() url.Values {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	if c.scope != "" {
		form.Set("scope", c.scope)
	}

	return form
}

func (c *Client) requestToken(ctx context.Context, form url.Values) (*entity.ProviderToken, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	grantType := form.Get("grant_type")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Token request failed",
			slog.String("grant_type", grantType),
			slog.String("url", c.tokenURL),
			slog.Any("error", err),
		)

		return nil, &domainerrors.TransientNetworkError{Method: http.MethodPost, URL: c.tokenURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainerrors.TransientNetworkError{Method: http.MethodPost, URL: c.tokenURL, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("Token endpoint rejected request",
			slog.String("grant_type", grantType),
			slog.String("url", c.tokenURL),
			slog.Int("status", resp.StatusCode),
			slog.String("body", util.TruncateBytes(body)),
		)

		return nil, &domainerrors.ProviderAuthError{
			Provider:   c.provider.String(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		logger.Warn("Token endpoint returned an empty body",
			slog.String("grant_type", grantType),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrEmptyTokenResponse
	}

	var token entity.ProviderToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}
	if token.AccessToken == "" {
		logger.Warn("Token response has no access_token", slog.String("grant_type", grantType))

		return nil, domainerrors.ErrEmptyTokenResponse
	}

	return &token, nil
}
