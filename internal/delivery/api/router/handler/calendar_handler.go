package handler

import (
	"log/slog"
	"net/http"

	"calsync/internal/delivery/api/middleware"
	"calsync/internal/delivery/api/response"
	deliverycontext "calsync/internal/delivery/context"
	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"
	"calsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderProviderAccessToken carries the caller's Microsoft access token for write calls.
const HeaderProviderAccessToken = "X-Provider-Access-Token"

// CalendarHandlerParams holds dependencies for CalendarHandler, injected by Fx.
type CalendarHandlerParams struct {
	fx.In

	CalendarUC usecase.CalendarUsecase
	Logger     *slog.Logger
}

// CalendarHandler serves the calendar endpoints for a signed-in user.
type CalendarHandler struct {
	calendarUC usecase.CalendarUsecase
	logger     *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler
func NewCalendarHandler(params CalendarHandlerParams) *CalendarHandler {
	return &CalendarHandler{
		calendarUC: params.CalendarUC,
		logger:     params.Logger,
	}
}

// ListEvents returns every event of the user's Microsoft calendar.
func (h *CalendarHandler) ListEvents(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.PlainUnauthorized(c, "Invalid user ID in token")
	}

	events, err := h.calendarUC.FetchAllEvents(c.Request().Context(), userID)
	if err != nil {
		return h.calendarFailed(c, err)
	}

	return response.Plain(c, http.StatusOK, events)
}

// ListTodaysEvents returns the events of the current New York calendar day.
func (h *CalendarHandler) ListTodaysEvents(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.PlainUnauthorized(c, "Invalid user ID in token")
	}

	events, err := h.calendarUC.FetchTodaysEvents(c.Request().Context(), userID)
	if err != nil {
		return h.calendarFailed(c, err)
	}

	return response.Plain(c, http.StatusOK, events)
}

func (h *CalendarHandler) CreateEvent(c echo.Context) error {
	var event entity.CalendarEvent
	if err := bindEventBody(c, &event); err != nil {
		return response.PlainErrorMessage(c, http.StatusBadRequest, "Invalid event input")
	}

	created, err := h.calendarUC.CreateEvent(c.Request().Context(), providerAccessToken(c), event)
	if err != nil {
		return h.calendarFailed(c, err)
	}

	return response.Plain(c, http.StatusCreated, created)
}

func (h *CalendarHandler) UpdateEvent(c echo.Context) error {
	var patch entity.CalendarEvent
	if err := bindEventBody(c, &patch); err != nil {
		return response.PlainErrorMessage(c, http.StatusBadRequest, "Invalid event input")
	}

	updated, err := h.calendarUC.UpdateEvent(c.Request().Context(), providerAccessToken(c), c.Param("id"), patch)
	if err != nil {
		return h.calendarFailed(c, err)
	}

	return response.Plain(c, http.StatusOK, updated)
}

func (h *CalendarHandler) DeleteEvent(c echo.Context) error {
	if err := h.calendarUC.DeleteEvent(c.Request().Context(), providerAccessToken(c), c.Param("id")); err != nil {
		return h.calendarFailed(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetProfile returns the Microsoft Graph /me document for the supplied access token.
func (h *CalendarHandler) GetProfile(c echo.Context) error {
	profile, err := h.calendarUC.FetchProviderProfile(c.Request().Context(), providerAccessToken(c))
	if err != nil {
		return h.calendarFailed(c, err)
	}

	return response.Plain(c, http.StatusOK, profile)
}

// calendarFailed maps a calendar error to the response the clients expect.
func (h *CalendarHandler) calendarFailed(c echo.Context, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if errors.Is(err, domainerrors.ErrNotAuthenticated) {
		logger.Info("Calendar access requires re-authentication", slog.Any("error", err))

		return response.NotAuthenticated(c, domainerrors.ErrNotAuthenticated.Message())
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); !ok {
		logger.Error("Calendar request failed", slog.Any("error", err))

		return response.PlainErrorMessage(c, http.StatusInternalServerError, "Internal server error")
	}

	logger.Warn("Calendar request failed", slog.Any("error", err))

	return response.PlainAppError(c, err, http.StatusBadGateway, domainerrors.ErrCalendarUnavailable.Message())
}

// bindEventBody decodes only the JSON body so path params never end up in the event.
func bindEventBody(c echo.Context, event *entity.CalendarEvent) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, event); err != nil {
		return err
	}
	if *event == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("event body is required")
	}

	return nil
}

func providerAccessToken(c echo.Context) string {
	return c.Request().Header.Get(HeaderProviderAccessToken)
}
