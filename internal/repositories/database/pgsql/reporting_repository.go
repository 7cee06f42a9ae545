package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceData sums every line per active account, accounts without lines included.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.id,
			a.code,
			a.name,
			COALESCE(SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN t.amount END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN t.transaction_type = 'CREDIT' THEN t.amount END), 0) AS total_credit
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.id
		WHERE a.is_active = TRUE
		GROUP BY a.id, a.code, a.name
		ORDER BY a.id
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(
			&row.AccountID,
			&row.Code,
			&row.AccountName,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		row.Balance = row.Debit.Sub(row.Credit)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}

// GetLedgerLines returns an account's lines in posting order, bounded inclusively by entry date.
func (r *reportingRepository) GetLedgerLines(ctx context.Context, accountID int64, startDate, endDate *time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT t.id, j.date, j.entry_number, j.description, t.transaction_type, t.amount
		FROM transactions t
		JOIN journal_entries j ON t.journal_entry_id = j.id
		WHERE t.account_id = $1
	`
	args := []any{accountID}
	if startDate != nil {
		args = append(args, *startDate)
		query += " AND j.date >= $" + strconv.Itoa(len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += " AND j.date <= $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY j.date ASC, t.id ASC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger for account %d: %w", accountID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		var txnType string
		if err := rows.Scan(
			&line.TransactionID,
			&line.Date,
			&line.EntryNumber,
			&line.Description,
			&txnType,
			&line.Amount,
		); err != nil {
			return nil, fmt.Errorf("error scanning ledger row: %w", err)
		}
		line.TransactionType = domain.TransactionType(txnType)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}
	return lines, nil
}

func (r *reportingRepository) GetLedgerTotals(ctx context.Context) (domain.LedgerTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM journal_entries),
			(SELECT COUNT(*) FROM accounts WHERE is_active = TRUE),
			COALESCE((SELECT SUM(amount) FROM transactions WHERE transaction_type = 'DEBIT'), 0),
			COALESCE((SELECT SUM(amount) FROM transactions WHERE transaction_type = 'CREDIT'), 0)
	`
	var totals domain.LedgerTotals
	err := r.Pool.QueryRow(ctx, query).Scan(
		&totals.EntryCount,
		&totals.AccountCount,
		&totals.TotalDebit,
		&totals.TotalCredit,
	)
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("error querying ledger totals: %w", err)
	}
	return totals, nil
}
