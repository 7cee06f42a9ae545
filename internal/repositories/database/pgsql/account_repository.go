package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/SscSPs/hesabdar/internal/models"
	"github.com/SscSPs/hesabdar/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, code, name, account_type, parent_id, balance, is_active, created_at, updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row rowScanner) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.ParentID,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func collectAccountMap(rows pgx.Rows) (map[int64]domain.Account, error) {
	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.Account, len(accounts))
	for _, acc := range accounts {
		out[acc.AccountID] = acc
	}
	return out, nil
}

func (r *PgxAccountRepository) findOne(ctx context.Context, q rowQuerier, query string, args ...any) (*domain.Account, error) {
	acc, err := scanAccount(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &acc, nil
}

// rowQuerier is satisfied by both the pool and a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID)
}

func (r *PgxAccountRepository) FindAccountByIDInTx(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error) {
	return r.findOne(ctx, tx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID)
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1)`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	return collectAccountMap(rows)
}

// ListAccounts retrieves a page of active accounts in creation order.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE is_active = TRUE
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	return collectAccounts(rows)
}

func (r *PgxAccountRepository) ListChildAccounts(ctx context.Context, parentID int64) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE parent_id = $1 AND is_active = TRUE
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query children of account %d: %w", parentID, err)
	}
	return collectAccounts(rows)
}

// UpdateAccount updates the editable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, is_active = $3, updated_at = $4
		WHERE id = $1;
	`
	// code, account_type, parent_id and balance are not editable here.
	cmdTag, err := r.Pool.Exec(ctx, query, m.AccountID, m.Name, m.IsActive, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", m.AccountID, mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive. Deactivating an inactive account is a no-op.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID int64, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE accounts SET is_active = FALSE, updated_at = $2 WHERE id = $1`, accountID, now)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %d: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) ListSiblingCodesInTx(ctx context.Context, tx pgx.Tx, parentID *int64) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT code FROM accounts WHERE parent_id IS NOT DISTINCT FROM $1::bigint`, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sibling codes: %w", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan sibling codes: %w", err)
	}
	return codes, nil
}

func (r *PgxAccountRepository) LockAccountNameInTx(ctx context.Context, tx pgx.Tx, name string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, name); err != nil {
		return fmt.Errorf("failed to lock account name: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.Account, error) {
	return r.findOne(ctx, tx, `SELECT `+accountColumns+` FROM accounts WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

func (r *PgxAccountRepository) FindLastNumericCodeInTx(ctx context.Context, tx pgx.Tx) (string, error) {
	var code string
	err := tx.QueryRow(ctx, `SELECT code FROM accounts WHERE code ~ '^[0-9]+$' ORDER BY id DESC LIMIT 1`).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find last account code: %w", err)
	}
	return code, nil
}

func (r *PgxAccountRepository) InsertAccountInTx(ctx context.Context, tx pgx.Tx, account *domain.Account) (bool, error) {
	m := mapping.ToModelAccount(*account)
	query := `
		INSERT INTO accounts (code, name, account_type, parent_id, balance, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO NOTHING
		RETURNING id, created_at, updated_at;
	`
	err := tx.QueryRow(ctx, query, m.Code, m.Name, m.AccountType, m.ParentID, m.Balance, m.IsActive).
		Scan(&account.AccountID, &account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert account %s: %w", m.Code, mapPgError(err))
	}
	return true, nil
}

// FindAccountsByIDsForUpdate locks the rows in ID order so concurrent postings cannot deadlock.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", mapPgError(err))
	}
	return collectAccountMap(rows)
}

// UpdateAccountBalancesInTx adds each change to the cached balance of its account.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int64]decimal.Decimal, now time.Time) error {
	ids := make([]int64, 0, len(balanceChanges))
	for id, delta := range balanceChanges {
		if !delta.IsZero() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	query := `UPDATE accounts SET balance = balance + $2, updated_at = $3 WHERE id = $1`
	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, id, balanceChanges[id], now)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for _, id := range ids {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %d: %w", id, mapPgError(err))
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: account %d not found during balance update", apperrors.ErrNotFound, id)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}
