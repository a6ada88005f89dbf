package service

//go:generate mockgen -destination=../../mocks/mock_token_codec.go -package=mocks github.com/SebasEPV/TimeBoxing/internal/auth/service TokenCodec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SebasEPV/TimeBoxing/internal/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenCodec is the shared sign+verify capability injected into both the
// authenticator and the session guard, so the claim schema lives in one place.
type TokenCodec interface {
	Sign(identity domain.SignInIdentity) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}

type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

// SessionClaims is the payload embedded in a session token. The subject is
// the string-encoded user id; no password material is ever present.
type SessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Identity decodes the claim back into the authenticated identity.
func (c *SessionClaims) Identity() (domain.SignInIdentity, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return domain.SignInIdentity{}, fmt.Errorf("invalid subject claim: %w", err)
	}

	return domain.SignInIdentity{ID: id, Username: c.Username}, nil
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Sign mints a session token for the identity, valid for the configured
// window from now.
func (ts *TokenService) Sign(identity domain.SignInIdentity) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(identity.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given token string. Signature and expiry
// are both checked; the caller never learns which one failed.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
