package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/SebasEPV/TimeBoxing/internal/auth/domain UserRepository

import "context"

// UserRepository is the credential store adapter. GetByEmail returns
// (nil, nil) when no user exists for the email; a non-nil error means the
// store itself failed and must not be treated as a bad credential.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}
