package handler

import (
	"net/http"
	"testing"

	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	mockUC "calsync/internal/mocks/usecase"
	"calsync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOAuthHandler(t *testing.T) (*OAuthHandler, *mockUC.MockOAuthUsecase, *mockUC.MockSessionUsecase) {
	oauthUC := mockUC.NewMockOAuthUsecase(t)
	sessionUC := mockUC.NewMockSessionUsecase(t)

	return NewOAuthHandler(OAuthHandlerParams{OAuthUC: oauthUC, SessionUC: sessionUC, Logger: newDiscardLogger()}), oauthUC, sessionUC
}

func TestOAuthHandler_AuthorizationURL(t *testing.T) {
	h, oauthUC, _ := newTestOAuthHandler(t)

	c, rec := newTestContext(http.MethodGet, "/oauth/microsoft/authorize-url?state=s1", "")
	c.SetParamNames("provider")
	c.SetParamValues("microsoft")
	oauthUC.EXPECT().AuthorizationURL(entity.ProviderMicrosoft, "s1").Return("https://login/authorize?state=s1", nil)

	require.NoError(t, h.AuthorizationURL(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "https://login/authorize?state=s1", data["url"])
	assert.Equal(t, "s1", data["state"])
}

func TestOAuthHandler_AuthorizationURL_GeneratesState(t *testing.T) {
	h, oauthUC, _ := newTestOAuthHandler(t)

	c, rec := newTestContext(http.MethodGet, "/oauth/google/authorize-url", "")
	c.SetParamNames("provider")
	c.SetParamValues("google")
	oauthUC.EXPECT().AuthorizationURL(entity.ProviderGoogle, mock.AnythingOfType("string")).Return("https://accounts/auth", nil)

	require.NoError(t, h.AuthorizationURL(c))
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.NotEmpty(t, data["state"])
}

func TestOAuthHandler_AuthorizationURL_UnknownProvider(t *testing.T) {
	h, oauthUC, _ := newTestOAuthHandler(t)

	c, rec := newTestContext(http.MethodGet, "/oauth/github/authorize-url", "")
	c.SetParamNames("provider")
	c.SetParamValues("github")
	oauthUC.EXPECT().AuthorizationURL(entity.ProviderType("github"), mock.Anything).Return("", domainerrors.ErrUnsupportedProvider)

	require.NoError(t, h.AuthorizationURL(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "UNSUPPORTED_PROVIDER", errBody["code"])
}

func TestOAuthHandler_ExchangeCode(t *testing.T) {
	h, oauthUC, _ := newTestOAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/oauth/microsoft/token", `{"code":"abc"}`)
	c.SetParamNames("provider")
	c.SetParamValues("microsoft")
	oauthUC.EXPECT().ExchangeCode(mock.Anything, entity.ProviderMicrosoft, "abc").
		Return(&entity.ProviderToken{AccessToken: "a", RefreshToken: "r", ExpiresIn: 3600}, nil)

	require.NoError(t, h.ExchangeCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "a", data["access_token"])
}

func TestOAuthHandler_ExchangeCode_MissingCode(t *testing.T) {
	h, _, _ := newTestOAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/oauth/microsoft/token", `{}`)
	c.SetParamNames("provider")
	c.SetParamValues("microsoft")

	require.NoError(t, h.ExchangeCode(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOAuthHandler_RefreshSession(t *testing.T) {
	h, _, sessionUC := newTestOAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"old"}`)
	sessionUC.EXPECT().Refresh(mock.Anything, &usecase.RefreshSessionInput{RefreshToken: "old"}).
		Return(&entity.SessionTokens{AccessToken: "new-a", RefreshToken: "new-r"}, nil)

	require.NoError(t, h.RefreshSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "new-a", data["access_token"])
}

func TestOAuthHandler_RefreshSession_Invalid(t *testing.T) {
	h, _, sessionUC := newTestOAuthHandler(t)

	c, _ := newTestContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"bad"}`)
	sessionUC.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidSessionToken)

	err := h.RefreshSession(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSessionToken)
}
