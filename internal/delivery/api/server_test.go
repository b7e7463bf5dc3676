package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calsync/config"
	apimiddleware "calsync/internal/delivery/api/middleware"
	"calsync/internal/delivery/api/router"
	"calsync/internal/delivery/api/router/handler"
	deliverycontext "calsync/internal/delivery/context"
	domainerrors "calsync/internal/domain/errors"
	mockSvc "calsync/internal/mocks/service"
	mockUC "calsync/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) (*apiServer, *mockUC.MockSessionUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	sessionUC := mockUC.NewMockSessionUsecase(t)
	lc := fxtest.NewLifecycle(t)

	delivery, err := NewServer(ServerParams{
		Lc:              lc,
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			IdentityHandler: handler.NewIdentityHandler(handler.IdentityHandlerParams{IdentityUC: mockUC.NewMockIdentityUsecase(t), Logger: logger}),
			CalendarHandler: handler.NewCalendarHandler(handler.CalendarHandlerParams{CalendarUC: mockUC.NewMockCalendarUsecase(t), Logger: logger}),
			OAuthHandler: handler.NewOAuthHandler(handler.OAuthHandlerParams{
				OAuthUC: mockUC.NewMockOAuthUsecase(t), SessionUC: sessionUC, Logger: logger,
			}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
				TokenService: mockSvc.NewMockTokenService(t), Logger: logger,
			}),
		},
	})
	require.NoError(t, err)

	return delivery.(*apiServer), sessionUC
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ErrorHandlerMapsAppErrors(t *testing.T) {
	srv, sessionUC := newTestServer(t)
	sessionUC.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidSessionToken)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SESSION_TOKEN")
}

func TestServer_BodyLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/google-login", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
