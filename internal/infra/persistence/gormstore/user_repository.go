package gormstore

import (
	"context"
	"strings"
	"time"

	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/domain/repository"
	"calsync/internal/domain/service"
	"calsync/internal/errors"
	"calsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository.
// Provider tokens pass through the vault on every write and read.
type userRepository struct {
	db    *gorm.DB
	vault service.TokenVault
}

// NewUserRepository returns a repository on the shared connection, outside any transaction.
func NewUserRepository(db *gorm.DB, vault service.TokenVault) repository.UserRepository {
	return newUserRepository(db, vault)
}

func newUserRepository(db *gorm.DB, vault service.TokenVault) *userRepository {
	return &userRepository{db: db, vault: vault}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address, ignoring case.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "email = ?", normalizeEmail(email))
}

func (repo *userRepository) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return repo.toDomain(ctx, &userM)
}

// Create inserts a user. An id is assigned when the entity has none.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM, err := repo.fromDomain(ctx, user)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or provider id already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes every mutable column of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM, err := repo.fromDomain(ctx, user)
	if err != nil {
		return err
	}
	userM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).Model(&model.UserModel{ID: user.ID}).
		Select("email", "name", "ms_id", "ms_access_token", "ms_refresh_token",
			"google_auth_token", "profile_picture", "updated_at").
		Updates(userM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or provider id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) fromDomain(ctx context.Context, user *entity.User) (*model.UserModel, error) {
	msAccess, err := repo.vault.Seal(ctx, user.MicrosoftAccessToken)
	if err != nil {
		return nil, err
	}
	msRefresh, err := repo.vault.Seal(ctx, user.MicrosoftRefreshToken)
	if err != nil {
		return nil, err
	}
	googleToken, err := repo.vault.Seal(ctx, user.GoogleAuthToken)
	if err != nil {
		return nil, err
	}

	return &model.UserModel{
		ID:              user.ID,
		Email:           normalizeEmail(user.Email),
		Name:            user.Name,
		MsID:            user.MicrosoftID,
		MsAccessToken:   msAccess,
		MsRefreshToken:  msRefresh,
		GoogleAuthToken: googleToken,
		ProfilePicture:  user.ProfilePicture,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}, nil
}

func (repo *userRepository) toDomain(ctx context.Context, userM *model.UserModel) (*entity.User, error) {
	msAccess, err := repo.vault.Open(ctx, userM.MsAccessToken)
	if err != nil {
		return nil, err
	}
	msRefresh, err := repo.vault.Open(ctx, userM.MsRefreshToken)
	if err != nil {
		return nil, err
	}
	googleToken, err := repo.vault.Open(ctx, userM.GoogleAuthToken)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:                    userM.ID,
		Email:                 userM.Email,
		Name:                  userM.Name,
		MicrosoftID:           userM.MsID,
		MicrosoftAccessToken:  msAccess,
		MicrosoftRefreshToken: msRefresh,
		GoogleAuthToken:       googleToken,
		ProfilePicture:        userM.ProfilePicture,
		CreatedAt:             userM.CreatedAt,
		UpdatedAt:             userM.UpdatedAt,
	}, nil
}

// normalizeEmail is the stored form of an email; the unique index is on this value.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
