package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"entry number collision", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "journal_entries_entry_number_key"}, apperrors.ErrConflict},
		{"other unique violation", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "credentials_username_key"}, apperrors.ErrDuplicate},
		{"missing account", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrNotFound},
		{"check constraint", &pgconn.PgError{Code: pgCheckViolation, TableName: "transactions", ConstraintName: "transactions_amount_check"}, apperrors.ErrValidation},
		{"serialization failure", &pgconn.PgError{Code: pgSerializationFailure}, apperrors.ErrConflict},
		{"deadlock", fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgDeadlockDetected}), apperrors.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapPgError(tt.err), tt.want)
		})
	}
}

func TestMapPgError_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Same(t, plain, mapPgError(plain))

	canceled := &pgconn.PgError{Code: "57014"}
	assert.Equal(t, error(canceled), mapPgError(canceled))
}
