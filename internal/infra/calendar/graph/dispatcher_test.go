package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(logs *bytes.Buffer) *dispatcher {
	var w io.Writer = io.Discard
	if logs != nil {
		w = logs
	}

	return &dispatcher{
		client: http.DefaultClient,
		logger: slog.New(slog.NewJSONHandler(w, nil)),
	}
}

func TestDispatch_ParsesJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":"1","subject":"Standup"}`)
	}))
	defer server.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer at")

	body, err := newTestDispatcher(nil).dispatch(context.Background(), http.MethodGet, server.URL, header, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "1", "subject": "Standup"}, body)
}

func TestDispatch_EmptySuccessBodyIsNil(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		body, err := newTestDispatcher(nil).dispatch(context.Background(), http.MethodDelete, server.URL, nil, nil)
		server.Close()

		require.NoError(t, err, "status %d", status)
		assert.Nil(t, body, "status %d", status)
	}
}

func TestDispatch_SendsJSONForPostAndPatch(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, method, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "Review", got["subject"])

				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, `{"id":"new"}`)
			}))
			defer server.Close()

			body, err := newTestDispatcher(nil).dispatch(context.Background(), method, server.URL, nil, map[string]any{"subject": "Review"})
			require.NoError(t, err)
			assert.Equal(t, "new", body["id"])
		})
	}
}

func TestDispatch_GetSendsNoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.Empty(t, raw)
		assert.Empty(t, r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	_, err := newTestDispatcher(nil).dispatch(context.Background(), http.MethodGet, server.URL, nil, map[string]any{"ignored": true})
	require.NoError(t, err)
}

func TestDispatch_NonSuccessIsLoggedAndReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"code":"InvalidAuthenticationToken"}}`)
	}))
	defer server.Close()

	var logs bytes.Buffer
	body, err := newTestDispatcher(&logs).dispatch(context.Background(), http.MethodGet, server.URL+"/me/events", nil, nil)
	assert.Nil(t, body)

	apiErr, ok := errors.AsType[*domainerrors.ProviderAPIError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, http.MethodGet, apiErr.Method)
	assert.Contains(t, apiErr.Body, "InvalidAuthenticationToken")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, server.URL+"/me/events", entry["url"])
	assert.EqualValues(t, http.StatusUnauthorized, entry["status"])
	assert.Contains(t, entry["body"], "InvalidAuthenticationToken")
}

func TestDispatch_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	body, err := newTestDispatcher(nil).dispatch(context.Background(), http.MethodGet, target, nil, nil)
	assert.Nil(t, body)

	netErr, ok := errors.AsType[*domainerrors.TransientNetworkError](err)
	require.True(t, ok)
	assert.Equal(t, target, netErr.URL)
}

func TestDispatch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	}))
	defer server.Close()

	body, err := newTestDispatcher(nil).dispatch(context.Background(), http.MethodGet, server.URL, nil, nil)
	assert.Nil(t, body)
	assert.Error(t, err)
}

func TestDispatch_UnsupportedMethod(t *testing.T) {
	_, err := newTestDispatcher(nil).dispatch(context.Background(), http.MethodPut, "http://localhost", nil, nil)
	assert.Error(t, err)
}
