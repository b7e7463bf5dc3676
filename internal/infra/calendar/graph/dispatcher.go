package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "calsync/internal/delivery/context"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"
	"calsync/internal/util"
)

// dispatcher is the single funnel for Graph resource requests.
// It never panics on provider input; every failure comes back as an error value
// after being logged with the request context.
type dispatcher struct {
	client *http.Client
	logger *slog.Logger
}

// dispatch sends one request. GET and DELETE carry no body; POST and PATCH send
// payload as JSON. A 2xx with an empty body returns (nil, nil).
func (d *dispatcher) dispatch(ctx context.Context, method, url string, header http.Header, payload any) (map[string]any, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	start := time.Now()

	var body io.Reader
	switch method {
	case http.MethodPost, http.MethodPatch:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(encoded)
	case http.MethodGet, http.MethodDelete:
	default:
		return nil, errors.Errorf("unsupported method %s", method)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		logger.Error("Calendar request failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
			slog.Any("error", err),
		)

		return nil, &domainerrors.TransientNetworkError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Calendar response read failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)

		return nil, &domainerrors.TransientNetworkError{Method: method, URL: url, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Error("Calendar request returned non-success status",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
			slog.String("body", util.TruncateBytes(raw)),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
		)

		return nil, &domainerrors.ProviderAPIError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		logger.Error("Calendar response is not a JSON object",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
			slog.String("body", util.TruncateBytes(raw)),
		)

		return nil, errors.Wrap(err, "failed to decode calendar response")
	}

	return parsed, nil
}
