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

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh exchanges a valid session refresh token for a new pair.
func (srv *sessionService) Refresh(ctx context.Context, input *usecase.RefreshSessionInput) (*entity.SessionTokens, error) {
	if input == nil || input.RefreshToken == "" {
		return nil, domainerrors.ErrInvalidSessionToken
	}

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Debug("Rejected session refresh token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidSessionToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, domainerrors.ErrInvalidSessionToken
	}

	// The user must still exist; a deleted account cannot renew its session.
	_, err = srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidSessionToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &entity.SessionTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
