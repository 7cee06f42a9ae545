package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/platform/config"
	"github.com/SscSPs/hesabdar/internal/utils"
)

// authService checks the operator password and issues JWT access tokens.
// Until a password is stored, the configured default password is accepted and persisted on first use.
type authService struct {
	BaseService
	cfg            *config.Config
	credentialRepo portsrepo.CredentialRepository
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, credentialRepo portsrepo.CredentialRepository) portssvc.AuthSvc {
	return &authService{
		cfg:            cfg,
		credentialRepo: credentialRepo,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) username(requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return s.cfg.AdminUsername, nil
	}
	if requested != s.cfg.AdminUsername {
		return "", apperrors.ErrUnauthorized
	}
	return requested, nil
}

// verify checks password against the stored hash, or the default password when none is stored.
func (s *authService) verify(ctx context.Context, username, password string) (stored bool, err error) {
	cred, err := s.credentialRepo.FindCredentialByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return false, err
		}
		if s.cfg.AdminDefaultPassword == "" || password != s.cfg.AdminDefaultPassword {
			return false, apperrors.ErrUnauthorized
		}
		return false, nil
	}
	if !utils.CheckPasswordHash(password, cred.PasswordHash) {
		return true, apperrors.ErrUnauthorized
	}
	return true, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Duration, error) {
	username, err := s.username(username)
	if err != nil {
		return "", 0, err
	}

	stored, err := s.verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			s.LogInfo(ctx, "Login rejected", slog.String("username", username))
		} else {
			s.LogError(ctx, err, "Failed to verify credentials")
		}
		return "", 0, err
	}
	if !stored {
		if err := s.SetPassword(ctx, username, password); err != nil {
			return "", 0, err
		}
	}

	token, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("username", username))
	return token, s.cfg.JWTExpiryDuration, nil
}

func (s *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	username, err := s.username(username)
	if err != nil {
		return err
	}
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("%w: new password is required", apperrors.ErrValidation)
	}
	if _, err := s.verify(ctx, username, oldPassword); err != nil {
		return err
	}
	if err := s.SetPassword(ctx, username, newPassword); err != nil {
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("username", username))
	return nil
}

func (s *authService) SetPassword(ctx context.Context, username, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", apperrors.ErrValidation)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.credentialRepo.UpsertCredential(ctx, username, hash, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to store credential", slog.String("username", username))
		return err
	}
	return nil
}

func (s *authService) HasCredential(ctx context.Context, username string) (bool, error) {
	username, err := s.username(username)
	if err != nil {
		return false, err
	}
	_, err = s.credentialRepo.FindCredentialByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
