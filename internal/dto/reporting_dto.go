package dto

import (
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerParams defines the optional date range of an account ledger.
type LedgerParams struct {
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// TrialBalanceResponse is the trial balance report.
type TrialBalanceResponse struct {
	Rows        []domain.TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal          `json:"totalDebit"`
	TotalCredit decimal.Decimal          `json:"totalCredit"`
}

// LedgerResponse is the ledger of one account.
type LedgerResponse struct {
	AccountID      int64              `json:"accountID"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	Rows           []domain.LedgerRow `json:"rows"`
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
}

// DashboardResponse mirrors domain.DashboardStats with API-shaped entries.
type DashboardResponse struct {
	TotalEntries      int64                  `json:"totalEntries"`
	TotalAccounts     int64                  `json:"totalAccounts"`
	TotalDebit        decimal.Decimal        `json:"totalDebit"`
	TotalCredit       decimal.Decimal        `json:"totalCredit"`
	BalanceDifference decimal.Decimal        `json:"balanceDifference"`
	RecentEntries     []JournalEntryResponse `json:"recentEntries"`
}

// ToTrialBalanceResponse adds column totals to the trial balance rows.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{Rows: rows, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	if resp.Rows == nil {
		resp.Rows = []domain.TrialBalanceRow{}
	}
	for _, r := range rows {
		resp.TotalDebit = resp.TotalDebit.Add(r.Debit)
		resp.TotalCredit = resp.TotalCredit.Add(r.Credit)
	}
	return resp
}

// ToDashboardResponse converts domain.DashboardStats to DashboardResponse DTO.
func ToDashboardResponse(s *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalEntries:      s.TotalEntries,
		TotalAccounts:     s.TotalAccounts,
		TotalDebit:        s.TotalDebit,
		TotalCredit:       s.TotalCredit,
		BalanceDifference: s.BalanceDifference,
		RecentEntries:     ToJournalEntryResponses(s.RecentEntries),
	}
}
