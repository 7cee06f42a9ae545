package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// IsValid reports whether t is DEBIT or CREDIT.
func (t TransactionType) IsValid() bool {
	return t == Debit || t == Credit
}

// Transaction is a single ledger line owned by a JournalEntry.
type Transaction struct {
	TransactionID   int64           `json:"transactionID"`
	JournalEntryID  int64           `json:"journalEntryID"`
	AccountID       int64           `json:"accountID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SignedAmount returns the line amount as it moves the account balance:
// positive for debits, negative for credits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Credit {
		return t.Amount.Neg()
	}
	return t.Amount
}
