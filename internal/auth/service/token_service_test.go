package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/SebasEPV/TimeBoxing/internal/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("secret-key", 24)

	assert.NotNil(t, ts)
	assert.Equal(t, "secret-key", ts.Secret)
	assert.Equal(t, 24*time.Hour, ts.TokenExpiry)
}

func TestTokenService_SignVerifyRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 24)

	tests := []struct {
		name     string
		id       int
		username string
	}{
		{name: "regular user", id: 1, username: "alice"},
		{name: "large id", id: 987654321, username: "bob"},
		{name: "empty username", id: 7, username: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ts.Sign(domain.SignInIdentity{ID: tt.id, Username: tt.username})
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := ts.Verify(token)
			require.NoError(t, err)

			identity, err := claims.Identity()
			require.NoError(t, err)
			assert.Equal(t, tt.id, identity.ID)
			assert.Equal(t, tt.username, identity.Username)

			assert.NotEmpty(t, claims.ID, "token should carry a jti")
			require.NotNil(t, claims.ExpiresAt)
			assert.WithinDuration(t, time.Now().Add(ts.TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	ts := NewTokenService("correct-secret", 24)
	other := NewTokenService("wrong-secret", 24)

	token, err := ts.Sign(domain.SignInIdentity{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	ts := NewTokenService("test-secret", 24)

	token, err := ts.Sign(domain.SignInIdentity{ID: 1, Username: "alice"})
	require.NoError(t, err)

	// Flip a single byte of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = ts.Verify(tampered)
	assert.Error(t, err)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret", 24)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "two segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestTokenService_Verify_RejectsUnsignedToken(t *testing.T) {
	ts := NewTokenService("test-secret", 24)

	claims := SessionClaims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(unsigned)
	assert.Error(t, err)
}

// TestTokenService_Verify_ExpiryWindow exercises the 24h validity window by
// signing claims with shifted expiries under the same secret: a token 23
// hours into its life still has an hour left, one 25 hours in expired an
// hour ago.
func TestTokenService_Verify_ExpiryWindow(t *testing.T) {
	secret := "test-secret"
	ts := NewTokenService(secret, 24)

	signAt := func(expiresIn time.Duration) string {
		now := time.Now()
		claims := SessionClaims{
			Username: "alice",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
				IssuedAt:  jwt.NewNumericDate(now.Add(expiresIn - 24*time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	t.Run("valid one hour before expiry", func(t *testing.T) {
		claims, err := ts.Verify(signAt(time.Hour))
		require.NoError(t, err)

		identity, err := claims.Identity()
		require.NoError(t, err)
		assert.Equal(t, 1, identity.ID)
		assert.Equal(t, "alice", identity.Username)
	})

	t.Run("rejected one hour after expiry", func(t *testing.T) {
		_, err := ts.Verify(signAt(-time.Hour))
		assert.Error(t, err)
	})
}

func TestSessionClaims_Identity_InvalidSubject(t *testing.T) {
	claims := &SessionClaims{
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	}

	_, err := claims.Identity()
	assert.Error(t, err)
}

// The claim payload must never contain password material.
func TestTokenService_Sign_NoPasswordMaterial(t *testing.T) {
	ts := NewTokenService("test-secret", 24)

	token, err := ts.Sign(domain.SignInIdentity{ID: 1, Username: "alice"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), "hash")
}
