package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// maxConflictAttempts bounds how often an operation is re-run after a serialization or deadlock failure.
const maxConflictAttempts = 3

// clampPage bounds limit to [1, maxLimit], falling back to def when unset, and floors offset at zero.
func clampPage(limit, offset, def, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// BaseService provides common functionality for all services
type BaseService struct {
	TxManager portsrepo.TransactionManager
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RunInTx runs fn inside a new transaction, committing when fn succeeds and rolling back otherwise.
func (s *BaseService) RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.TxManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.TxManager.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return s.TxManager.Commit(ctx, tx)
}

// RunInTxWithRetry is RunInTx re-run up to maxConflictAttempts times while it fails with apperrors.ErrConflict.
func (s *BaseService) RunInTxWithRetry(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxConflictAttempts; attempt++ {
		err = s.RunInTx(ctx, fn)
		if !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.LogDebug(ctx, "Retrying after conflict", slog.String("operation", op), slog.Int("attempt", attempt))
	}
	return err
}
