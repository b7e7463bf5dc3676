package entity

// ProviderToken is the decoded body of a successful token endpoint response.
type ProviderToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// SessionTokens is an application session pair.
type SessionTokens struct {
	AccessToken  string
	RefreshToken string
}
