package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"calsync/config"
	deliverycontext "calsync/internal/delivery/context"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses client id", incoming: "client-id-1", keep: true},
		{name: "generates when absent"},
		{name: "replaces malformed id", incoming: "bad id\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				assert.NotEqual(t, tt.incoming, headerID)
			}
			assert.Contains(t, buf.String(), headerID)
		})
	}
}

func runLogger(t *testing.T, debug bool, target string, handler echo.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
	_ = m.Handle(handler)(c)

	return buf.String()
}

func TestLoggerMiddleware_SuccessOnlyInDebug(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	assert.Empty(t, runLogger(t, false, "/health", ok))
	assert.Contains(t, runLogger(t, true, "/health", ok), `"status":200`)
}

func TestLoggerMiddleware_LogsFailures(t *testing.T) {
	failing := func(echo.Context) error { return errors.WithStack(domainerrors.ErrInvalidSessionToken) }

	line := runLogger(t, false, "/auth/refresh", failing)
	assert.Contains(t, line, `"level":"WARN"`)
	assert.Contains(t, line, `"status":401`)
}

func TestLoggerMiddleware_HidesQuery(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	line := runLogger(t, true, "/oauth/google/authorize-url?state=secret-state", ok)
	assert.NotContains(t, line, "secret-state")
	assert.Contains(t, line, `"has_query":true`)
}
