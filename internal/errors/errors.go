package errors

import (
	"errors"
)

// ErrInvalidCredentials is the single user-facing authentication failure.
// Unknown email, wrong password, and every token verification failure all
// collapse into it so callers cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")
