package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account, active or not.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)

	// ListAccounts retrieves active accounts in insertion order.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListChildAccounts retrieves the active direct children of an account.
	ListChildAccounts(ctx context.Context, parentID int64) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// UpdateAccount updates an existing account's name and active flag.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID int64, now time.Time) error
}

// AccountTransactionSupport defines account operations that run inside a caller-owned transaction
type AccountTransactionSupport interface {
	FindAccountByIDInTx(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error)

	// ListSiblingCodesInTx returns the codes of all accounts sharing parentID (nil for roots).
	ListSiblingCodesInTx(ctx context.Context, tx pgx.Tx, parentID *int64) ([]string, error)

	// LockAccountNameInTx serialises get-or-create calls for the same name until tx ends.
	LockAccountNameInTx(ctx context.Context, tx pgx.Tx, name string) error

	// FindAccountByNameInTx returns the oldest account with exactly this name.
	FindAccountByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.Account, error)

	// FindLastNumericCodeInTx returns the code of the newest account whose code is numeric, or "" when none.
	FindLastNumericCodeInTx(ctx context.Context, tx pgx.Tx) (string, error)

	// InsertAccountInTx inserts the account and fills in its ID and timestamps.
	// It returns false without error when the code is already taken.
	InsertAccountInTx(ctx context.Context, tx pgx.Tx, account *domain.Account) (bool, error)

	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)

	// UpdateAccountBalancesInTx adds each change to the cached balance of its account.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[int64]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
