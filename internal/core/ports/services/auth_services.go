package services

import (
	"context"
	"time"
)

// AuthSvc manages the single operator credential and issues access tokens
type AuthSvc interface {
	// Login verifies the password and returns a signed token with its lifetime.
	Login(ctx context.Context, username, password string) (string, time.Duration, error)

	// ChangePassword replaces the password after verifying the old one.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error

	// SetPassword stores a password without verifying the old one.
	SetPassword(ctx context.Context, username, password string) error

	// HasCredential reports whether a password has been stored for username.
	HasCredential(ctx context.Context, username string) (bool, error)
}
