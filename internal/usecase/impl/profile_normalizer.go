package impl

import (
	"strings"

	"calsync/internal/domain/entity"
)

// normalizeProfile trims the fields used as keys. Email is matched
// case-insensitively, so it is lowercased before lookup and insert.
func normalizeProfile(profile entity.LinkedProfile) entity.LinkedProfile {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	profile.ProviderUserID = strings.TrimSpace(profile.ProviderUserID)

	return profile
}

// newUserFromProfile builds the record inserted on a first login.
func newUserFromProfile(profile entity.LinkedProfile) *entity.User {
	user := &entity.User{Email: profile.Email}
	applyProfile(user, profile)

	return user
}

// applyProfile overwrites the provider fields of user in place.
// The Microsoft user id is only ever set on a record that has none.
func applyProfile(user *entity.User, profile entity.LinkedProfile) {
	user.Name = profile.Name

	switch profile.Provider {
	case entity.ProviderMicrosoft:
		user.MicrosoftAccessToken = profile.AccessToken
		user.MicrosoftRefreshToken = profile.RefreshToken
		if (user.MicrosoftID == nil || *user.MicrosoftID == "") && profile.ProviderUserID != "" {
			id := profile.ProviderUserID
			user.MicrosoftID = &id
		}
	case entity.ProviderGoogle:
		user.GoogleAuthToken = profile.AccessToken
		user.ProfilePicture = nil
		if profile.PictureURL != "" {
			picture := profile.PictureURL
			user.ProfilePicture = &picture
		}
	}
}
