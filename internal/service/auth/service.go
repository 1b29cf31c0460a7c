package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/serenitypath/hospital-api/internal/config"
	"github.com/serenitypath/hospital-api/pkg/auth"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
	"github.com/serenitypath/hospital-api/pkg/security"
)

// Service authenticates the single admin identity configured at startup.
// There is no user table; credentials live in configuration.
type Service struct {
	admin  config.AdminConfig
	hasher security.PasswordHasher
	jwtSvc auth.JWTService
}

func NewService(admin config.AdminConfig, hasher security.PasswordHasher, jwtSvc auth.JWTService) *Service {
	return &Service{admin: admin, hasher: hasher, jwtSvc: jwtSvc}
}

// Login verifies the credentials and issues a session token. Email comparison
// is case-insensitive; the password check is constant-time via bcrypt.
func (s *Service) Login(_ context.Context, email, password string) (string, error) {
	if !strings.EqualFold(email, s.admin.Email) {
		return "", apperrors.Unauthorized(fmt.Errorf("unknown admin email"))
	}
	if err := s.hasher.Compare(s.admin.PasswordHash, password); err != nil {
		return "", apperrors.Unauthorized(fmt.Errorf("password mismatch"))
	}

	token, err := s.jwtSvc.GenerateToken(s.admin.Email)
	if err != nil {
		return "", apperrors.Internal(fmt.Errorf("failed to issue token: %w", err))
	}
	return token, nil
}
