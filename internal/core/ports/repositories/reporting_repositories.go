package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetTrialBalanceData sums debits and credits per active account over all lines.
	GetTrialBalanceData(ctx context.Context) ([]domain.TrialBalanceRow, error)

	// GetLedgerLines returns the account's lines ordered by entry date then line ID,
	// optionally bounded (inclusive) by entry date.
	GetLedgerLines(ctx context.Context, accountID int64, startDate, endDate *time.Time) ([]domain.LedgerLine, error)

	// GetLedgerTotals returns entry and active account counts plus grand debit and credit totals.
	GetLedgerTotals(ctx context.Context) (domain.LedgerTotals, error)
}
