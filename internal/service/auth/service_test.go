package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/serenitypath/hospital-api/internal/config"
	"github.com/serenitypath/hospital-api/pkg/auth"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
	"github.com/serenitypath/hospital-api/pkg/security"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("sekret1")
	require.NoError(t, err)

	admin := config.AdminConfig{Email: "admin@example.com", PasswordHash: hash}
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewService(admin, hasher, jwtSvc)
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Login(context.Background(), "admin@example.com", "sekret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.NewJWTService("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "Admin@Example.COM", "sekret1")
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong-1")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "sekret1")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}
