package domain

import "time"

// User is the credential-store record resolved by email. The password hash
// never crosses the service boundary; handlers only ever see SignInIdentity.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignInIdentity is the validated identity of a user, stripped of any
// password material by construction.
type SignInIdentity struct {
	ID       int
	Username string
}
