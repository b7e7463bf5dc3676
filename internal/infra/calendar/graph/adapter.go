// Package graph implements the calendar provider on Microsoft Graph.
package graph

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // window zone must resolve on hosts without zoneinfo

	"calsync/config"
	deliverycontext "calsync/internal/delivery/context"
	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/domain/service"
	"calsync/internal/errors"

	"go.uber.org/fx"
)

const nextLinkKey = "@odata.nextLink"

type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	TokenClient service.ProviderTokenClient `name:"microsoft"`
	HTTPClient  *http.Client                `optional:"true"`
}

type adapter struct {
	tokens     service.ProviderTokenClient
	dispatcher *dispatcher
	logger     *slog.Logger

	eventsURL       string
	calendarViewURL string
	userProfileURL  string

	window          *time.Location
	displayTimeZone string
	maxPages        int

	now func() time.Time
}

// NewAdapter builds the Graph calendar provider.
func NewAdapter(params Params) (service.CalendarProvider, error) {
	return newAdapter(params.Config.Microsoft, params.TokenClient, params.HTTPClient, params.Logger)
}

func newAdapter(
	cfg *config.MicrosoftConfig,
	tokens service.ProviderTokenClient,
	httpClient *http.Client,
	logger *slog.Logger,
) (*adapter, error) {
	window, err := time.LoadLocation(cfg.WindowTimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "load window time zone %q", cfg.WindowTimeZone)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	maxPages := cfg.MaxEventPages
	if maxPages <= 0 {
		maxPages = 1
	}

	return &adapter{
		tokens:          tokens,
		dispatcher:      &dispatcher{client: httpClient, logger: logger},
		logger:          logger,
		eventsURL:       strings.TrimRight(cfg.EventsURL, "/"),
		calendarViewURL: cfg.CalendarViewURL,
		userProfileURL:  cfg.UserProfileURL,
		window:          window,
		displayTimeZone: cfg.DisplayTimeZone,
		maxPages:        maxPages,
		now:             time.Now,
	}, nil
}

// GetAllEvents refreshes the access token and lists every event.
func (a *adapter) GetAllEvents(ctx context.Context, refreshToken string) (entity.EventList, error) {
	accessToken, err := a.refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return a.listEvents(ctx, a.eventsURL, a.authHeader(accessToken))
}

// GetTodaysEvents lists events in today's window.
//
// The day boundaries are computed in the window zone while Graph is asked to
// annotate the returned timestamps in the display zone.
func (a *adapter) GetTodaysEvents(ctx context.Context, refreshToken string) (entity.EventList, error) {
	accessToken, err := a.refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	start, end := dayWindow(a.now(), a.window)

	query := url.Values{}
	query.Set("startDateTime", start.Format(time.RFC3339))
	query.Set("endDateTime", end.Format(time.RFC3339))

	header := a.authHeader(accessToken)
	header.Set("Prefer", `outlook.timezone="`+a.displayTimeZone+`"`)

	return a.listEvents(ctx, a.calendarViewURL+"?"+query.Encode(), header)
}

// CreateEvent posts a new event with the caller's access token.
func (a *adapter) CreateEvent(ctx context.Context, accessToken string, event entity.CalendarEvent) (entity.CalendarEvent, error) {
	body, err := a.dispatcher.dispatch(ctx, http.MethodPost, a.eventsURL, a.authHeader(accessToken), event)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrCalendarUnavailable, err)
	}

	return entity.CalendarEvent(body), nil
}

// UpdateEvent patches an event with the caller's access token.
func (a *adapter) UpdateEvent(
	ctx context.Context,
	accessToken, eventID string,
	patch entity.CalendarEvent,
) (entity.CalendarEvent, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event id is required")
	}

	body, err := a.dispatcher.dispatch(ctx, http.MethodPatch, a.eventURL(eventID), a.authHeader(accessToken), patch)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrCalendarUnavailable, err)
	}

	return entity.CalendarEvent(body), nil
}

// DeleteEvent removes an event with the caller's access token.
func (a *adapter) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	if strings.TrimSpace(eventID) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("event id is required")
	}

	if _, err := a.dispatcher.dispatch(ctx, http.MethodDelete, a.eventURL(eventID), a.authHeader(accessToken), nil); err != nil {
		return errors.Join(domainerrors.ErrCalendarUnavailable, err)
	}

	return nil
}

// GetUserDetails returns the Graph /me profile for an access token.
func (a *adapter) GetUserDetails(ctx context.Context, accessToken string) (map[string]any, error) {
	body, err := a.dispatcher.dispatch(ctx, http.MethodGet, a.userProfileURL, a.authHeader(accessToken), nil)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrCalendarUnavailable, err)
	}
	if body == nil {
		return nil, domainerrors.ErrCalendarUnavailable.WrapMessage("empty profile response")
	}

	return body, nil
}

func (a *adapter) refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domainerrors.ErrNotAuthenticated
	}

	token, err := a.tokens.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Could not refresh calendar access token",
			slog.Any("error", err),
		)

		return "", errors.Join(domainerrors.ErrNotAuthenticated, err)
	}

	return token.AccessToken, nil
}

// listEvents follows nextLink pages up to maxPages. The result is non-nil on success.
func (a *adapter) listEvents(ctx context.Context, pageURL string, header http.Header) (entity.EventList, error) {
	events := entity.EventList{}

	for page := 0; pageURL != ""; page++ {
		if page == a.maxPages {
			deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Calendar page limit reached",
				slog.Int("max_pages", a.maxPages),
				slog.Int("events", len(events)),
			)

			break
		}

		body, err := a.dispatcher.dispatch(ctx, http.MethodGet, pageURL, header, nil)
		if err != nil {
			return nil, errors.Join(domainerrors.ErrCalendarUnavailable, err)
		}
		if body == nil {
			return nil, domainerrors.ErrCalendarUnavailable.WrapMessage("empty events response")
		}

		values, _ := body["value"].([]any)
		for _, v := range values {
			if item, ok := v.(map[string]any); ok {
				events = append(events, entity.CalendarEvent(item))
			}
		}

		pageURL, _ = body[nextLinkKey].(string)
	}

	return events, nil
}

func (a *adapter) authHeader(accessToken string) http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)

	return header
}

func (a *adapter) eventURL(eventID string) string {
	return a.eventsURL + "/" + url.PathEscape(eventID)
}

// dayWindow returns [midnight, next midnight) of now's date in loc.
func dayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 0, 1)
}
