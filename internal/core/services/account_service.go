package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	defaultAccountListLimit = 100
	maxAccountListLimit     = 1000
	defaultMaxCodeProbes    = 50

	// seedLockName serialises concurrent seeding through the account name lock.
	seedLockName = "__seed_default_chart__"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo   portsrepo.AccountRepositoryFacade
	maxCodeProbes int
}

// ServiceOption is a functional option for configuring the account service
type ServiceOption func(*accountService)

// WithMaxCodeProbes overrides how many successive codes are tried when a candidate is taken.
func WithMaxCodeProbes(n int) ServiceOption {
	return func(s *accountService) {
		if n > 0 {
			s.maxCodeProbes = n
		}
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(txManager portsrepo.TransactionManager, repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		BaseService:   BaseService{TxManager: txManager},
		accountRepo:   repo,
		maxCodeProbes: defaultMaxCodeProbes,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}

	var created *domain.Account
	err := s.RunInTxWithRetry(ctx, "create_account", func(tx pgx.Tx) error {
		var code string
		if req.ParentID != nil {
			parent, err := s.accountRepo.FindAccountByIDInTx(ctx, tx, *req.ParentID)
			if err != nil {
				return fmt.Errorf("parent account %d: %w", *req.ParentID, err)
			}
			siblings, err := s.accountRepo.ListSiblingCodesInTx(ctx, tx, req.ParentID)
			if err != nil {
				return err
			}
			code, err = accounting.NextChildCode(parent.Code, siblings)
			if err != nil {
				return err
			}
		} else {
			roots, err := s.accountRepo.ListSiblingCodesInTx(ctx, tx, nil)
			if err != nil {
				return err
			}
			code = accounting.NextTopLevelCode(roots)
		}

		account := &domain.Account{
			Code:        code,
			Name:        name,
			AccountType: req.AccountType,
			ParentID:    req.ParentID,
			Balance:     decimal.Zero,
			IsActive:    true,
		}
		if err := s.insertWithProbing(ctx, tx, account); err != nil {
			return err
		}
		created = account
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create account", slog.String("name", name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_id", created.AccountID),
		slog.String("code", created.Code))
	return created, nil
}

// insertWithProbing inserts account, moving to the next code each time the candidate is already taken.
func (s *accountService) insertWithProbing(ctx context.Context, tx pgx.Tx, account *domain.Account) error {
	for probe := 0; probe < s.maxCodeProbes; probe++ {
		inserted, err := s.accountRepo.InsertAccountInTx(ctx, tx, account)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}
		s.LogDebug(ctx, "Account code taken, probing next", slog.String("code", account.Code))
		account.Code = accounting.IncrementCode(account.Code)
	}
	return fmt.Errorf("%w: no free account code after %d attempts", apperrors.ErrConflict, s.maxCodeProbes)
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	limit, offset = clampPage(limit, offset, defaultAccountListLimit, maxAccountListLimit)

	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) ListChildAccounts(ctx context.Context, parentID int64) ([]domain.Account, error) {
	if _, err := s.GetAccountByID(ctx, parentID); err != nil {
		return nil, err
	}
	children, err := s.accountRepo.ListChildAccounts(ctx, parentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list child accounts", slog.Int64("parent_id", parentID))
		return nil, err
	}
	if children == nil {
		return []domain.Account{}, nil
	}
	return children, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update", slog.Int64("account_id", accountID))
		return account, nil
	}

	account.UpdatedAt = time.Now()
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID int64) error {
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.Int64("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deactivated successfully", slog.Int64("account_id", accountID))
	return nil
}

func (s *accountService) GetOrCreateAccountByName(ctx context.Context, tx pgx.Tx, name string, accountType domain.AccountType) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, accountType)
	}

	if err := s.accountRepo.LockAccountNameInTx(ctx, tx, name); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.FindAccountByNameInTx(ctx, tx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	lastCode, err := s.accountRepo.FindLastNumericCodeInTx(ctx, tx)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Code:        accounting.NextFlatCode(lastCode),
		Name:        name,
		AccountType: accountType,
		Balance:     decimal.Zero,
		IsActive:    true,
	}
	if err := s.insertWithProbing(ctx, tx, account); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account auto-created",
		slog.Int64("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("account_type", string(accountType)))
	return account, nil
}

func (s *accountService) SeedDefaultChart(ctx context.Context) (int, error) {
	created := 0
	err := s.RunInTx(ctx, func(tx pgx.Tx) error {
		created = 0
		if err := s.accountRepo.LockAccountNameInTx(ctx, tx, seedLockName); err != nil {
			return err
		}
		// every account descends from a root, so no roots means an empty chart
		roots, err := s.accountRepo.ListSiblingCodesInTx(ctx, tx, nil)
		if err != nil {
			return err
		}
		if len(roots) > 0 {
			return nil
		}

		idsByCode := make(map[string]int64, len(defaultChart))
		for _, seed := range defaultChart {
			account := &domain.Account{
				Code:        seed.Code,
				Name:        seed.Name,
				AccountType: seed.AccountType,
				Balance:     decimal.Zero,
				IsActive:    true,
			}
			if seed.ParentCode != "" {
				parentID, ok := idsByCode[seed.ParentCode]
				if !ok {
					return fmt.Errorf("seed account %s listed before its parent %s", seed.Code, seed.ParentCode)
				}
				account.ParentID = &parentID
			}
			inserted, err := s.accountRepo.InsertAccountInTx(ctx, tx, account)
			if err != nil {
				return err
			}
			if !inserted {
				return fmt.Errorf("%w: seed code %s already taken", apperrors.ErrConflict, seed.Code)
			}
			idsByCode[seed.Code] = account.AccountID
			created++
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default chart of accounts")
		return 0, err
	}

	if created == 0 {
		s.LogInfo(ctx, "Chart of accounts already present, seeding skipped")
	} else {
		s.LogInfo(ctx, "Default chart of accounts seeded", slog.Int("accounts", created))
	}
	return created, nil
}
