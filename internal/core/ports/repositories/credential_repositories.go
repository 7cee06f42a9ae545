package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
)

// CredentialRepository stores the operator login
type CredentialRepository interface {
	FindCredentialByUsername(ctx context.Context, username string) (*domain.Credential, error)
	// UpsertCredential creates the credential or replaces its password hash.
	UpsertCredential(ctx context.Context, username string, passwordHash string, now time.Time) error
}
