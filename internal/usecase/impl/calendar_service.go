package impl

import (
	"context"
	"log/slog"

	deliverycontext "calsync/internal/delivery/context"
	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/domain/repository"
	"calsync/internal/domain/service"
	"calsync/internal/errors"
	"calsync/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type calendarService struct {
	txManager repository.TransactionManager
	calendar  service.CalendarProvider
	logger    *slog.Logger
}

// CalendarServiceParams holds dependencies for CalendarService, injected by Fx.
type CalendarServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Calendar  service.CalendarProvider
	Logger    *slog.Logger
}

// NewCalendarService is the constructor for calendarService.
func NewCalendarService(params CalendarServiceParams) usecase.CalendarUsecase {
	return &calendarService{
		txManager: params.TxManager,
		calendar:  params.Calendar,
		logger:    params.Logger,
	}
}

func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *calendarService) FetchAllEvents(ctx context.Context, userID uuid.UUID) (entity.EventList, error) {
	refreshToken, err := srv.storedRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.calendar.GetAllEvents(ctx, refreshToken)
}

func (srv *calendarService) FetchTodaysEvents(ctx context.Context, userID uuid.UUID) (entity.EventList, error) {
	refreshToken, err := srv.storedRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.calendar.GetTodaysEvents(ctx, refreshToken)
}

func (srv *calendarService) CreateEvent(ctx context.Context, accessToken string, event entity.CalendarEvent) (entity.CalendarEvent, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrProviderAccessTokenMissing
	}

	return srv.calendar.CreateEvent(ctx, accessToken, event)
}

func (srv *calendarService) UpdateEvent(
	ctx context.Context,
	accessToken, eventID string,
	patch entity.CalendarEvent,
) (entity.CalendarEvent, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrProviderAccessTokenMissing
	}

	return srv.calendar.UpdateEvent(ctx, accessToken, eventID, patch)
}

func (srv *calendarService) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	if accessToken == "" {
		return domainerrors.ErrProviderAccessTokenMissing
	}

	return srv.calendar.DeleteEvent(ctx, accessToken, eventID)
}

func (srv *calendarService) FetchProviderProfile(ctx context.Context, accessToken string) (map[string]any, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrProviderAccessTokenMissing
	}

	return srv.calendar.GetUserDetails(ctx, accessToken)
}

// storedRefreshToken loads the user's Microsoft refresh token.
// A missing user or token is ErrNotAuthenticated.
func (srv *calendarService) storedRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Warn("Calendar request for unknown user", slog.String("user_id", userID.String()))

		return "", domainerrors.ErrNotAuthenticated
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load user")
	}

	if !user.HasMicrosoftCalendar() {
		return "", domainerrors.ErrNotAuthenticated
	}

	return user.MicrosoftRefreshToken, nil
}
