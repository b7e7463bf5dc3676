package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"calsync/internal/domain/service"
	"calsync/internal/errors"
	mockSvc "calsync/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokens service.TokenService, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokens,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/calendar/events", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uuid.UUID
	var called bool
	err := m.Authenticate(func(c echo.Context) error {
		called = true
		gotID, _ = GetUserID(c)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, gotID, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokens.EXPECT().ValidateToken("good", service.TokenTypeAccess).Return(&service.Claims{
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)

	rec, gotID, called := runAuthenticate(t, tokens, "Bearer good")
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokens *mockSvc.MockTokenService)
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("bad", service.TokenTypeAccess).Return(nil, errors.New("expired"))
			},
		},
		{
			name:   "bad subject",
			header: "Bearer odd",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("odd", service.TokenTypeAccess).Return(&service.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			rec, _, called := runAuthenticate(t, tokens, tt.header)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
