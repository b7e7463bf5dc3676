package entity

// ProviderType identifies an external identity provider.
type ProviderType string

const (
	ProviderMicrosoft ProviderType = "microsoft"
	ProviderGoogle    ProviderType = "google"
)

// IsValid checks if the provider type is one that can be linked.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderMicrosoft, ProviderGoogle:
		return true
	default:
		return false
	}
}

func (p ProviderType) String() string {
	return string(p)
}

// LinkedProfile is the provider independent shape of a login payload.
type LinkedProfile struct {
	Provider       ProviderType
	Email          string
	Name           string
	PictureURL     string
	ProviderUserID string
	AccessToken    string
	RefreshToken   string
}
