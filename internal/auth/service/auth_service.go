package service

import (
	"context"
	"log/slog"

	"github.com/SebasEPV/TimeBoxing/internal/auth/domain"
	"github.com/SebasEPV/TimeBoxing/internal/auth/dto"
	autherror "github.com/SebasEPV/TimeBoxing/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo   domain.UserRepository
	tokens TokenCodec
	logger *slog.Logger
}

func NewAuthService(repo domain.UserRepository, tokens TokenCodec, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// ValidateCredentials checks the email/password pair against the credential
// store. Unknown email and wrong password both return (nil, nil); only a
// store failure produces an error.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.SignInIdentity, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Warn("login attempt for unknown email", "email", email)
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("password mismatch", "user_id", user.ID)
		return nil, nil
	}

	return &domain.SignInIdentity{ID: user.ID, Username: user.Name}, nil
}

// Authenticate turns a credential pair into a signed session or fails with
// the single undifferentiated credential error.
func (s *AuthService) Authenticate(ctx context.Context, input dto.LoginInput) (*dto.AuthResult, error) {
	identity, err := s.ValidateCredentials(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return s.IssueSession(*identity)
}

// IssueSession mints a token for an already-validated identity. Stateless:
// nothing is persisted server-side.
func (s *AuthService) IssueSession(identity domain.SignInIdentity) (*dto.AuthResult, error) {
	accessToken, err := s.tokens.Sign(identity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session issued", "user_id", identity.ID)

	return &dto.AuthResult{
		AccessToken: accessToken,
		ID:          identity.ID,
		Username:    identity.Username,
	}, nil
}
