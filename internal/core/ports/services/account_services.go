package services

import (
	"context"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/jackc/pgx/v5"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier, active or not.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of active accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListChildAccounts retrieves the active direct children of an account.
	ListChildAccounts(ctx context.Context, parentID int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with a generated code.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount patches an existing account's name and active flag.
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID int64) error
}

// AccountProvisionerSvc defines chart maintenance used by other services and the CLI
type AccountProvisionerSvc interface {
	// GetOrCreateAccountByName returns the account with this exact name, creating it inside tx when missing.
	GetOrCreateAccountByName(ctx context.Context, tx pgx.Tx, name string, accountType domain.AccountType) (*domain.Account, error)

	// SeedDefaultChart creates the default chart of accounts when the chart is empty.
	// It returns how many accounts were created.
	SeedDefaultChart(ctx context.Context) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountProvisionerSvc
}
