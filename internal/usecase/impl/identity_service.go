// Package impl contains the implementation of the application's business logic.
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

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *identityService) LinkMicrosoftProfile(ctx context.Context, input *usecase.MicrosoftProfileInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrEmailRequired
	}

	return srv.Link(ctx, input)
}

func (srv *identityService) LinkGoogleProfile(ctx context.Context, input *usecase.GoogleProfileInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrEmailRequired
	}

	return srv.Link(ctx, input)
}

// Link upserts the profile by email and mints a session after the commit.
func (srv *identityService) Link(ctx context.Context, normalizer usecase.ProfileNormalizer) (*usecase.LoginOutput, error) {
	profile := normalizeProfile(normalizer.Normalize())
	if profile.Email == "" {
		return nil, domainerrors.ErrEmailRequired
	}

	srv.log(ctx).Info("Linking provider profile",
		slog.String("provider", profile.Provider.String()),
		slog.String("email", profile.Email),
	)

	user, err := srv.upsertInTx(ctx, profile)
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		// A concurrent first login inserted the same email; the retry takes the update path.
		srv.log(ctx).Warn("User created concurrently, retrying lookup", slog.String("email", profile.Email))
		user, err = srv.upsertInTx(ctx, profile)
	}
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *identityService) upsertInTx(ctx context.Context, profile entity.LinkedProfile) (*entity.User, error) {
	var linked *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.upsert(ctx, repoFactory.UserRepo(), profile)
		if err != nil {
			return err
		}
		linked = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return linked, nil
}

func (srv *identityService) upsert(ctx context.Context, userRepo repository.UserRepository, profile entity.LinkedProfile) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, profile.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Info("User not found, creating new user", slog.String("email", profile.Email))

		user = newUserFromProfile(profile)
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

		return user, nil
	}

	applyProfile(user, profile)
	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}
