package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/core/services"
	"github.com/SscSPs/hesabdar/internal/platform/config"
	"github.com/SscSPs/hesabdar/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret",
		JWTExpiryDuration:    time.Hour,
		JWTIssuer:            "hesabdar",
		AdminUsername:        "admin",
		AdminDefaultPassword: "admin",
	}
}

func TestAuthService_FirstLoginPersistsDefaultPassword(t *testing.T) {
	ctx := context.Background()
	cfg := testAuthConfig()
	repo := new(MockCredentialRepository)
	svc := services.NewAuthService(cfg, repo)

	repo.On("FindCredentialByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound)
	repo.On("UpsertCredential", ctx, "admin", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("admin", hash)
	}), mock.AnythingOfType("time.Time")).Return(nil)

	token, expiry, err := svc.Login(ctx, "", "admin")

	require.NoError(t, err)
	assert.Equal(t, time.Hour, expiry)
	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	repo.AssertExpectations(t)
}

func TestAuthService_StoredPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCredentialRepository)
	svc := services.NewAuthService(testAuthConfig(), repo)

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	repo.On("FindCredentialByUsername", ctx, "admin").Return(&domain.Credential{Username: "admin", PasswordHash: hash}, nil)

	_, _, err = svc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "admin", "admin")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	repo.AssertNotCalled(t, "UpsertCredential", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_UnknownUserOrWrongDefault(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCredentialRepository)
	svc := services.NewAuthService(testAuthConfig(), repo)
	repo.On("FindCredentialByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.Login(ctx, "mallory", "admin")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "admin", "guess")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCredentialRepository)
	svc := services.NewAuthService(testAuthConfig(), repo)

	hash, err := utils.HashPassword("old-pass")
	require.NoError(t, err)
	repo.On("FindCredentialByUsername", ctx, "admin").Return(&domain.Credential{Username: "admin", PasswordHash: hash}, nil)
	repo.On("UpsertCredential", ctx, "admin", mock.MatchedBy(func(h string) bool {
		return utils.CheckPasswordHash("new-pass", h)
	}), mock.Anything).Return(nil)

	assert.ErrorIs(t, svc.ChangePassword(ctx, "admin", "wrong", "new-pass"), apperrors.ErrUnauthorized)
	require.NoError(t, svc.ChangePassword(ctx, "admin", "old-pass", "new-pass"))
	repo.AssertNumberOfCalls(t, "UpsertCredential", 1)
}

func TestAuthService_HasCredential(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCredentialRepository)
	svc := services.NewAuthService(testAuthConfig(), repo)
	repo.On("FindCredentialByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	repo.On("FindCredentialByUsername", ctx, "admin").Return(&domain.Credential{Username: "admin"}, nil).Once()

	set, err := svc.HasCredential(ctx, "")
	require.NoError(t, err)
	assert.False(t, set)

	set, err = svc.HasCredential(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, set)
}
