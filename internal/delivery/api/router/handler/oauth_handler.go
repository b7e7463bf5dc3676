package handler

import (
	"log/slog"
	"net/http"

	"calsync/internal/delivery/api/response"
	"calsync/internal/domain/entity"
	"calsync/internal/errors"
	"calsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	OAuthUC   usecase.OAuthUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// OAuthHandler serves the server-side authorization code flow and session refresh.
type OAuthHandler struct {
	oauthUC   usecase.OAuthUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		oauthUC:   params.OAuthUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ExchangeCodeRequest is the body of POST /oauth/:provider/token.
type ExchangeCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type authorizationURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// AuthorizationURL builds the provider consent URL. A state is generated when none is given.
func (h *OAuthHandler) AuthorizationURL(c echo.Context) error {
	state := c.QueryParam("state")
	if state == "" {
		state = uuid.NewString()
	}

	url, err := h.oauthUC.AuthorizationURL(entity.ProviderType(c.Param("provider")), state)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, authorizationURLResponse{URL: url, State: state})
}

// ExchangeCode trades an authorization code for provider tokens.
func (h *OAuthHandler) ExchangeCode(c echo.Context) error {
	var req ExchangeCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token exchange input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.oauthUC.ExchangeCode(c.Request().Context(), entity.ProviderType(c.Param("provider")), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, token)
}

// RefreshSession renews the application session pair.
func (h *OAuthHandler) RefreshSession(c echo.Context) error {
	var input usecase.RefreshSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tokens, err := h.sessionUC.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}
