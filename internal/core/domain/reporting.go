package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID   int64           `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerLine is a transaction line joined with its entry, before running balances are applied.
type LedgerLine struct {
	TransactionID   int64
	Date            time.Time
	EntryNumber     string
	Description     string
	TransactionType TransactionType
	Amount          decimal.Decimal
}

// LedgerRow is one line of an account ledger with the running balance after it.
type LedgerRow struct {
	Date        time.Time       `json:"date"`
	EntryNumber string          `json:"entryNumber"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerTotals are grand totals across all recorded lines.
type LedgerTotals struct {
	EntryCount   int64
	AccountCount int64
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
}

// DashboardStats aggregates headline figures for the dashboard.
type DashboardStats struct {
	TotalEntries      int64           `json:"totalEntries"`
	TotalAccounts     int64           `json:"totalAccounts"`
	TotalDebit        decimal.Decimal `json:"totalDebit"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
	BalanceDifference decimal.Decimal `json:"balanceDifference"`
	RecentEntries     []JournalEntry  `json:"recentEntries"`
}
