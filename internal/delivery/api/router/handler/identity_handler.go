// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"calsync/internal/delivery/api/response"
	deliverycontext "calsync/internal/delivery/context"
	"calsync/internal/domain/entity"
	"calsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// IdentityHandler serves the provider login endpoints.
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

type microsoftUserView struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	MicrosoftAccessToken string    `json:"ms_access_token"`
	ProfilePicture       *string   `json:"profile_picture"`
}

type googleUserView struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ProfilePicture *string   `json:"profile_picture"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         any    `json:"user"`
}

// MicrosoftLogin links a client-side Microsoft sign-in and opens a session.
func (h *IdentityHandler) MicrosoftLogin(c echo.Context) error {
	var input usecase.MicrosoftProfileInput
	if err := c.Bind(&input); err != nil {
		return response.PlainErrorMessage(c, http.StatusBadRequest, "Invalid login input")
	}

	output, err := h.identityUC.LinkMicrosoftProfile(c.Request().Context(), &input)
	if err != nil {
		return h.loginFailed(c, entity.ProviderMicrosoft, err)
	}

	return response.Plain(c, http.StatusCreated, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User: microsoftUserView{
			ID:                   output.User.ID,
			Email:                output.User.Email,
			Name:                 output.User.Name,
			MicrosoftAccessToken: output.User.MicrosoftAccessToken,
			ProfilePicture:       output.User.ProfilePicture,
		},
	})
}

// GoogleLogin links a client-side Google sign-in and opens a session.
func (h *IdentityHandler) GoogleLogin(c echo.Context) error {
	var input usecase.GoogleProfileInput
	if err := c.Bind(&input); err != nil {
		return response.PlainErrorMessage(c, http.StatusBadRequest, "Invalid login input")
	}

	output, err := h.identityUC.LinkGoogleProfile(c.Request().Context(), &input)
	if err != nil {
		return h.loginFailed(c, entity.ProviderGoogle, err)
	}

	return response.Plain(c, http.StatusCreated, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User: googleUserView{
			ID:             output.User.ID,
			Email:          output.User.Email,
			Name:           output.User.Name,
			ProfilePicture: output.User.ProfilePicture,
		},
	})
}

// loginFailed answers every login failure with 400.
func (h *IdentityHandler) loginFailed(c echo.Context, provider entity.ProviderType, err error) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Login failed",
		slog.String("provider", provider.String()),
		slog.Any("error", err),
	)

	return response.PlainErrorMessage(c, http.StatusBadRequest, errorMessage(err, "Login failed"))
}
