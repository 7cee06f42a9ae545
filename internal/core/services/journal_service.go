package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/utils/accounting"
	"github.com/SscSPs/hesabdar/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	defaultJournalListLimit = 20
	maxJournalListLimit     = 100
)

// journalService provides core journal entry and transaction operations.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(txManager portsrepo.TransactionManager, journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: BaseService{TxManager: txManager},
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateEntry checks header fields and line balance without touching the database.
func (s *journalService) validateEntry(entry *domain.JournalEntry) error {
	if entry.Date.IsZero() {
		return fmt.Errorf("%w: journal entry date is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(entry.Description) == "" {
		return fmt.Errorf("%w: journal entry description is required", apperrors.ErrValidation)
	}
	return accounting.ValidateJournalBalance(entry.Transactions)
}

// accountIDs returns the distinct accounts referenced by the given line sets in ascending order.
func accountIDs(lineSets ...[]domain.Transaction) []int64 {
	seen := make(map[int64]struct{})
	for _, lines := range lineSets {
		for _, txn := range lines {
			seen[txn.AccountID] = struct{}{}
		}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func missingAccount(ids []int64, found map[int64]domain.Account) error {
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, id)
		}
	}
	return nil
}

// checkAccountsExist verifies every referenced account before any write is attempted.
func (s *journalService) checkAccountsExist(ctx context.Context, lines []domain.Transaction) error {
	ids := accountIDs(lines)
	found, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	return missingAccount(ids, found)
}

// applyBalanceChanges locks every touched account in ID order, then adjusts the cached balances.
func (s *journalService) applyBalanceChanges(ctx context.Context, tx pgx.Tx, ids []int64, changes map[int64]decimal.Decimal, now time.Time) error {
	if err := s.lockAccounts(ctx, tx, ids); err != nil {
		return err
	}
	return s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, changes, now)
}

func (s *journalService) lockAccounts(ctx context.Context, tx pgx.Tx, ids []int64) error {
	locked, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return err
	}
	return missingAccount(ids, locked)
}

func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, source domain.EntrySource) (*domain.JournalEntry, error) {
	if source == "" {
		source = domain.SourceManual
	}
	entry := &domain.JournalEntry{
		Date:         req.Date,
		Description:  strings.TrimSpace(req.Description),
		Reference:    req.Reference,
		Source:       source,
		Transactions: dto.ToDomainTransactions(req.Transactions),
	}

	if err := s.validateEntry(entry); err != nil {
		s.LogDebug(ctx, "Journal entry rejected", slog.String("reason", err.Error()))
		return nil, err
	}
	if err := s.checkAccountsExist(ctx, entry.Transactions); err != nil {
		return nil, err
	}

	err := s.RunInTxWithRetry(ctx, "create_journal_entry", func(tx pgx.Tx) error {
		return s.CommitJournalEntryInTx(ctx, tx, entry)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to create journal entry")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created successfully",
		slog.Int64("journal_entry_id", entry.JournalEntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("source", string(entry.Source)))
	return entry, nil
}

func (s *journalService) CommitJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry) error {
	if err := s.validateEntry(entry); err != nil {
		return err
	}

	if err := s.lockAccounts(ctx, tx, accountIDs(entry.Transactions)); err != nil {
		return err
	}

	seq, err := s.journalRepo.NextEntrySequenceInTx(ctx, tx)
	if err != nil {
		return err
	}
	// Stamped after the sequence draw so created_at follows entry_number order.
	now := time.Now()
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, accounting.CalculateBalanceChanges(entry.Transactions), now); err != nil {
		return err
	}
	entry.EntryNumber = domain.FormatEntryNumber(seq)
	entry.CreatedAt = now
	entry.UpdatedAt = now

	return s.journalRepo.InsertJournalEntryInTx(ctx, tx, entry)
}

func (s *journalService) GetJournalEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.Int64("journal_entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalListLimit
	}
	if limit > maxJournalListLimit {
		limit = maxJournalListLimit
	}
	if params.StartDate != nil && params.EndDate != nil && params.StartDate.After(*params.EndDate) {
		return nil, fmt.Errorf("%w: startDate is after endDate", apperrors.ErrValidation)
	}
	if params.NextToken != nil && *params.NextToken != "" {
		if _, _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	} else {
		params.NextToken = nil
	}

	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, limit, params.NextToken, params.StartDate, params.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *journalService) UpdateJournalEntry(ctx context.Context, entryID int64, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	proposed := &domain.JournalEntry{
		Date:         req.Date,
		Description:  strings.TrimSpace(req.Description),
		Reference:    req.Reference,
		Transactions: dto.ToDomainTransactions(req.Transactions),
	}
	if err := s.validateEntry(proposed); err != nil {
		return nil, err
	}
	if err := s.checkAccountsExist(ctx, proposed.Transactions); err != nil {
		return nil, err
	}

	var result *domain.JournalEntry
	err := s.RunInTxWithRetry(ctx, "update_journal_entry", func(tx pgx.Tx) error {
		existing, err := s.journalRepo.FindJournalEntryForUpdate(ctx, tx, entryID)
		if err != nil {
			return err
		}

		now := time.Now()
		changes := accounting.MergeChanges(
			accounting.NegateChanges(accounting.CalculateBalanceChanges(existing.Transactions)),
			accounting.CalculateBalanceChanges(proposed.Transactions),
		)
		ids := accountIDs(existing.Transactions, proposed.Transactions)
		if err := s.applyBalanceChanges(ctx, tx, ids, changes, now); err != nil {
			return err
		}

		lines := make([]domain.Transaction, len(proposed.Transactions))
		copy(lines, proposed.Transactions)
		if err := s.journalRepo.ReplaceTransactionsInTx(ctx, tx, entryID, lines); err != nil {
			return err
		}

		existing.Date = proposed.Date
		existing.Description = proposed.Description
		existing.Reference = proposed.Reference
		existing.UpdatedAt = now
		if err := s.journalRepo.UpdateJournalEntryHeaderInTx(ctx, tx, *existing); err != nil {
			return err
		}
		existing.Transactions = lines
		result = existing
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update journal entry", slog.Int64("journal_entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry updated successfully",
		slog.Int64("journal_entry_id", entryID),
		slog.String("entry_number", result.EntryNumber))
	return result, nil
}

func (s *journalService) DeleteJournalEntry(ctx context.Context, entryID int64) error {
	err := s.RunInTxWithRetry(ctx, "delete_journal_entry", func(tx pgx.Tx) error {
		existing, err := s.journalRepo.FindJournalEntryForUpdate(ctx, tx, entryID)
		if err != nil {
			return err
		}

		changes := accounting.NegateChanges(accounting.CalculateBalanceChanges(existing.Transactions))
		if err := s.applyBalanceChanges(ctx, tx, accountIDs(existing.Transactions), changes, time.Now()); err != nil {
			return err
		}
		return s.journalRepo.DeleteJournalEntryInTx(ctx, tx, entryID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal entry", slog.Int64("journal_entry_id", entryID))
		}
		return err
	}

	s.LogInfo(ctx, "Journal entry deleted successfully", slog.Int64("journal_entry_id", entryID))
	return nil
}
