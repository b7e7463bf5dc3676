package service

import (
	"context"

	"calsync/internal/domain/entity"
)

// CalendarProvider reads and writes a user's provider calendar.
//
// The read operations take the stored refresh token and refresh on their own.
// A refresh failure returns a nil list and an error matching ErrNotAuthenticated;
// zero events is an empty non-nil list.
//
// The write operations and GetUserDetails take a caller supplied access token
// and never refresh. Callers that only hold a refresh token must obtain an
// access token through a ProviderTokenClient first.
type CalendarProvider interface {
	GetAllEvents(ctx context.Context, refreshToken string) (entity.EventList, error)
	GetTodaysEvents(ctx context.Context, refreshToken string) (entity.EventList, error)

	CreateEvent(ctx context.Context, accessToken string, event entity.CalendarEvent) (entity.CalendarEvent, error)
	UpdateEvent(ctx context.Context, accessToken, eventID string, patch entity.CalendarEvent) (entity.CalendarEvent, error)
	DeleteEvent(ctx context.Context, accessToken, eventID string) error

	GetUserDetails(ctx context.Context, accessToken string) (map[string]any, error)
}
