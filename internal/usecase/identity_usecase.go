// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"calsync/internal/domain/entity"
)

// ProfileNormalizer maps a provider login payload to the shared profile shape.
type ProfileNormalizer interface {
	Normalize() entity.LinkedProfile
}

// MicrosoftProfileInput is the payload of a client-side Microsoft sign-in.
type MicrosoftProfileInput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Mail         string `json:"mail"`
	Name         string `json:"name"`
	ID           string `json:"id"`
}

func (in *MicrosoftProfileInput) Normalize() entity.LinkedProfile {
	return entity.LinkedProfile{
		Provider:       entity.ProviderMicrosoft,
		Email:          in.Mail,
		Name:           in.Name,
		ProviderUserID: in.ID,
		AccessToken:    in.AccessToken,
		RefreshToken:   in.RefreshToken,
	}
}

// GoogleProfileInput is the payload of a client-side Google sign-in.
type GoogleProfileInput struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Picture     string `json:"picture"`
	AccessToken string `json:"access_token"`
}

func (in *GoogleProfileInput) Normalize() entity.LinkedProfile {
	return entity.LinkedProfile{
		Provider:    entity.ProviderGoogle,
		Email:       in.Email,
		Name:        in.Name,
		PictureURL:  in.Picture,
		AccessToken: in.AccessToken,
	}
}

// LoginOutput is a linked user with a fresh application session.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// IdentityUsecase reconciles provider profiles with the user directory.
type IdentityUsecase interface {
	// Link resolves or creates the user by email, stores the provider fields
	// and mints a session keyed on the internal user id.
	Link(ctx context.Context, profile ProfileNormalizer) (*LoginOutput, error)

	LinkMicrosoftProfile(ctx context.Context, input *MicrosoftProfileInput) (*LoginOutput, error)
	LinkGoogleProfile(ctx context.Context, input *GoogleProfileInput) (*LoginOutput, error)
}
