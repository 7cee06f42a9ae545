package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/SscSPs/hesabdar/internal/models"
	"github.com/SscSPs/hesabdar/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCredentialRepository struct {
	BaseRepository
}

func newPgxCredentialRepository(pool *pgxpool.Pool) portsrepo.CredentialRepository {
	return &PgxCredentialRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CredentialRepository = (*PgxCredentialRepository)(nil)

func (r *PgxCredentialRepository) FindCredentialByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM credentials
		WHERE username = $1;
	`
	var m models.Credential
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&m.CredentialID,
		&m.Username,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential: %w", err)
	}
	cred := mapping.ToDomainCredential(m)
	return &cred, nil
}

func (r *PgxCredentialRepository) UpsertCredential(ctx context.Context, username string, passwordHash string, now time.Time) error {
	query := `
		INSERT INTO credentials (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, username, passwordHash, now); err != nil {
		return fmt.Errorf("failed to store credential: %w", mapPgError(err))
	}
	return nil
}
