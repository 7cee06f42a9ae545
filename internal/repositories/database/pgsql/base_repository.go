package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// TxManager hands out pgx transactions to the service layer.
type TxManager struct {
	BaseRepository
}

func newTxManager(pool *pgxpool.Pool) portsrepo.TransactionManager {
	return &TxManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

// Begin starts a new database transaction
func (r *TxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *TxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", mapPgError(err))
	}
	return nil
}

// Rollback rolls back a transaction. It is deferred after Commit, so a closed transaction is not an error.
func (r *TxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// mapPgError translates constraint and concurrency failures into application errors.
// Other errors are returned unchanged.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if strings.Contains(pgErr.ConstraintName, "entry_number") {
			return fmt.Errorf("%w: entry number already taken: %v", apperrors.ErrConflict, err)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Detail)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, pgErr.Detail)
	case pgCheckViolation:
		return fmt.Errorf("%w: %s violates %s", apperrors.ErrValidation, pgErr.TableName, pgErr.ConstraintName)
	case pgSerializationFailure, pgDeadlockDetected:
		return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
	}
	return err
}
