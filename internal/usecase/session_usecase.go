package usecase

import (
	"context"

	"calsync/internal/domain/entity"
)

// RefreshSessionInput carries an application refresh token.
type RefreshSessionInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionUsecase renews application sessions.
type SessionUsecase interface {
	Refresh(ctx context.Context, input *RefreshSessionInput) (*entity.SessionTokens, error)
}
