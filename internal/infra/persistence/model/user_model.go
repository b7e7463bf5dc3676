// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the users table. Provider tokens are stored as text and may be sealed.
type UserModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name  string    `gorm:"type:varchar(255);not null"`

	MsID           *string `gorm:"column:ms_id;type:varchar(255);uniqueIndex"`
	MsAccessToken  string  `gorm:"column:ms_access_token;type:text"`
	MsRefreshToken string  `gorm:"column:ms_refresh_token;type:text"`

	GoogleAuthToken string  `gorm:"column:google_auth_token;type:text"`
	ProfilePicture  *string `gorm:"column:profile_picture;type:varchar(255)"`

	// PasswordHash is kept for local-credential accounts; nothing writes it.
	PasswordHash *string `gorm:"column:password_hash;type:varchar(255)"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
