package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "calsync/internal/delivery/context"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_DropsDetailsForAuthAndServerErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusBadGateway, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "msg", "field x"))

			body := decode(t, rec)
			errBody := body["error"].(map[string]any)
			_, hasDetails := errBody["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
			assert.Equal(t, "req-1", body["meta"].(map[string]any)["request_id"])
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrUnsupportedProvider, "lookup")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_PROVIDER", decode(t, rec)["error"].(map[string]any)["code"])

	c, _ = newContext()
	plain := errors.New("boom")
	assert.ErrorIs(t, HandleAppError(c, plain), plain)
}

func TestNotAuthenticated(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, NotAuthenticated(c, "Calendar access expired"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, map[string]any{"error": "Calendar access expired", "isAuthenticated": false}, decode(t, rec))
}

func TestPlainAppError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, PlainAppError(c, domainerrors.ErrCalendarUnavailable, http.StatusInternalServerError, "fallback"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, map[string]any{"error": "calendar provider request failed"}, decode(t, rec))

	c, rec = newContext()
	require.NoError(t, PlainAppError(c, errors.New("boom"), http.StatusInternalServerError, "fallback"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "fallback"}, decode(t, rec))
}
