package dto

// AuthResult is the successful login response.
type AuthResult struct {
	AccessToken string `json:"accessToken"`
	ID          int    `json:"id"`
	Username    string `json:"username"`
}

// IdentityOutput is the authenticated-subject view returned by /auth/me.
type IdentityOutput struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
