package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// dashboardRecentEntries is how many entries the dashboard shows.
const dashboardRecentEntries = 10

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	journalRepo   portsrepo.JournalReader
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		journalRepo:   journalRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance is computed from lines, never from cached balances.
func (s *reportingService) TrialBalance(ctx context.Context) (*dto.TrialBalanceResponse, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get trial balance data")
		return nil, fmt.Errorf("failed to get trial balance data: %w", err)
	}
	resp := dto.ToTrialBalanceResponse(rows)
	return &resp, nil
}

func (s *reportingService) Ledger(ctx context.Context, accountID int64, startDate, endDate *time.Time) (*dto.LedgerResponse, error) {
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, fmt.Errorf("%w: startDate is after endDate", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	lines, err := s.reportingRepo.GetLedgerLines(ctx, accountID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to get ledger lines", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to get ledger lines: %w", err)
	}

	rows := accounting.RunningBalances(lines)
	closing := decimal.Zero
	if len(rows) > 0 {
		closing = rows[len(rows)-1].Balance
	}

	return &dto.LedgerResponse{
		AccountID:      account.AccountID,
		Code:           account.Code,
		Name:           account.Name,
		Rows:           rows,
		ClosingBalance: closing,
	}, nil
}

func (s *reportingService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	totals, err := s.reportingRepo.GetLedgerTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get ledger totals")
		return nil, fmt.Errorf("failed to get ledger totals: %w", err)
	}

	recent, err := s.journalRepo.ListRecentJournalEntries(ctx, dashboardRecentEntries)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent journal entries")
		return nil, fmt.Errorf("failed to list recent journal entries: %w", err)
	}
	if recent == nil {
		recent = []domain.JournalEntry{}
	}

	return &domain.DashboardStats{
		TotalEntries:      totals.EntryCount,
		TotalAccounts:     totals.AccountCount,
		TotalDebit:        totals.TotalDebit,
		TotalCredit:       totals.TotalCredit,
		BalanceDifference: totals.TotalDebit.Sub(totals.TotalCredit),
		RecentEntries:     recent,
	}, nil
}
