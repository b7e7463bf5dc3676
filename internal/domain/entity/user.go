// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a single person, deduplicated across identity providers by email.
type User struct {
	ID    uuid.UUID // Internal identifier, never the provider id.
	Email string    // Natural key shared by every linked provider.
	Name  string    // Display name, overwritten on each login.

	MicrosoftID           *string // Set on the first Microsoft link and never changed afterwards.
	MicrosoftAccessToken  string
	MicrosoftRefreshToken string // The only durable secret needed to reach the calendar.

	GoogleAuthToken string
	ProfilePicture  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasMicrosoftCalendar reports whether the user can reach the Microsoft calendar.
func (u *User) HasMicrosoftCalendar() bool {
	return u != nil && u.MicrosoftRefreshToken != ""
}
