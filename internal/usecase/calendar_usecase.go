package usecase

import (
	"context"

	"calsync/internal/domain/entity"

	"github.com/google/uuid"
)

// CalendarUsecase serves calendar requests for an authenticated user.
//
// The fetch operations use the refresh token stored for the user. The write
// operations and FetchProviderProfile use the caller's provider access token
// as-is and never refresh it.
type CalendarUsecase interface {
	FetchAllEvents(ctx context.Context, userID uuid.UUID) (entity.EventList, error)
	FetchTodaysEvents(ctx context.Context, userID uuid.UUID) (entity.EventList, error)

	CreateEvent(ctx context.Context, accessToken string, event entity.CalendarEvent) (entity.CalendarEvent, error)
	UpdateEvent(ctx context.Context, accessToken, eventID string, patch entity.CalendarEvent) (entity.CalendarEvent, error)
	DeleteEvent(ctx context.Context, accessToken, eventID string) error

	FetchProviderProfile(ctx context.Context, accessToken string) (map[string]any, error)
}
