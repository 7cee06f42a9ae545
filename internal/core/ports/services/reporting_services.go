package services

import (
	"context"
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance totals debits and credits per active account.
	TrialBalance(ctx context.Context) (*dto.TrialBalanceResponse, error)

	// Ledger lists an account's lines with running balances, optionally bounded by entry date.
	Ledger(ctx context.Context, accountID int64, startDate, endDate *time.Time) (*dto.LedgerResponse, error)

	// Dashboard returns headline totals and the most recent entries.
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
