package google

import (
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"calsync/config"
	"calsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenClient_AuthorizationURL(t *testing.T) {
	tests := []struct {
		name      string
		scopes    string
		wantScope string
	}{
		{name: "basic config", scopes: "openid email profile", wantScope: "openid email profile"},
		{
			name:      "with url scope",
			scopes:    "openid email https://www.googleapis.com/auth/userinfo.profile",
			wantScope: "openid email https://www.googleapis.com/auth/userinfo.profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				GoogleOAuth: &config.GoogleOAuthConfig{
					ClientID:       "test_client_id",
					ClientSecret:   "test_secret",
					RedirectURI:    "http://localhost:8080/callback",
					Scopes:         tt.scopes,
					RequestTimeout: time.Second,
				},
			}

			client := NewTokenClient(Params{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
			assert.Equal(t, entity.ProviderGoogle, client.Provider())

			authURL, err := url.Parse(client.AuthorizationURL("state-1"))
			require.NoError(t, err)

			q := authURL.Query()
			assert.Equal(t, "accounts.google.com", authURL.Host)
			assert.Equal(t, "test_client_id", q.Get("client_id"))
			assert.Equal(t, "http://localhost:8080/callback", q.Get("redirect_uri"))
			assert.Equal(t, tt.wantScope, q.Get("scope"))
			assert.Equal(t, "offline", q.Get("access_type"))
			assert.Equal(t, "state-1", q.Get("state"))
		})
	}
}
