package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"
	mockUC "calsync/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCalendarHandler(t *testing.T) (*CalendarHandler, *mockUC.MockCalendarUsecase) {
	uc := mockUC.NewMockCalendarUsecase(t)

	return NewCalendarHandler(CalendarHandlerParams{CalendarUC: uc, Logger: newDiscardLogger()}), uc
}

func TestCalendarHandler_ListEvents(t *testing.T) {
	h, uc := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodPost, "/fetch_microsoft_calendar_events", "")
	userID := withUser(c)
	uc.EXPECT().FetchAllEvents(mock.Anything, userID).
		Return(entity.EventList{{"id": "e1", "subject": "Standup"}}, nil)

	require.NoError(t, h.ListEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var events []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0]["subject"])
}

func TestCalendarHandler_ListTodaysEvents_Empty(t *testing.T) {
	h, uc := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodGet, "/calendar/events/today", "")
	userID := withUser(c)
	uc.EXPECT().FetchTodaysEvents(mock.Anything, userID).Return(entity.EventList{}, nil)

	require.NoError(t, h.ListTodaysEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCalendarHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "refresh failed",
			err:        errors.Join(domainerrors.ErrNotAuthenticated, errors.New("invalid_grant")),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"user is not authenticated with the calendar provider","isAuthenticated":false}`,
		},
		{
			name:       "graph failed",
			err:        errors.Join(domainerrors.ErrCalendarUnavailable, errors.New("status 503")),
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"calendar provider request failed"}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestCalendarHandler(t)

			c, rec := newTestContext(http.MethodGet, "/calendar/events", "")
			withUser(c)
			uc.EXPECT().FetchAllEvents(mock.Anything, mock.Anything).Return(nil, tt.err)

			require.NoError(t, h.ListEvents(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCalendarHandler_MissingUser(t *testing.T) {
	h, _ := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodGet, "/calendar/events", "")
	require.NoError(t, h.ListEvents(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCalendarHandler_CreateEvent(t *testing.T) {
	h, uc := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodPost, "/calendar/events", `{"subject":"Standup"}`)
	c.Request().Header.Set(HeaderProviderAccessToken, "at")
	uc.EXPECT().CreateEvent(mock.Anything, "at", entity.CalendarEvent{"subject": "Standup"}).
		Return(entity.CalendarEvent{"id": "e1", "subject": "Standup"}, nil)

	require.NoError(t, h.CreateEvent(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"e1","subject":"Standup"}`, rec.Body.String())
}

func TestCalendarHandler_CreateEvent_EmptyBody(t *testing.T) {
	h, _ := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodPost, "/calendar/events", "")
	require.NoError(t, h.CreateEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarHandler_UpdateEvent_IgnoresPathParams(t *testing.T) {
	h, uc := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodPatch, "/calendar/events/e1", `{"subject":"Retro"}`)
	c.SetParamNames("id")
	c.SetParamValues("e1")
	c.Request().Header.Set(HeaderProviderAccessToken, "at")
	uc.EXPECT().UpdateEvent(mock.Anything, "at", "e1", entity.CalendarEvent{"subject": "Retro"}).
		Return(entity.CalendarEvent{"id": "e1", "subject": "Retro"}, nil)

	require.NoError(t, h.UpdateEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalendarHandler_DeleteEvent(t *testing.T) {
	h, uc := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodDelete, "/calendar/events/e1", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")
	c.Request().Header.Set(HeaderProviderAccessToken, "at")
	uc.EXPECT().DeleteEvent(mock.Anything, "at", "e1").Return(nil)

	require.NoError(t, h.DeleteEvent(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCalendarHandler_GetProfile_MissingAccessToken(t *testing.T) {
	h, uc := newTestCalendarHandler(t)

	c, rec := newTestContext(http.MethodGet, "/calendar/profile", "")
	uc.EXPECT().FetchProviderProfile(mock.Anything, "").Return(nil, domainerrors.ErrProviderAccessTokenMissing)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"provider access token header is required"}`, rec.Body.String())
}
