package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID   int64           `db:"id"`
	JournalEntryID  int64           `db:"journal_entry_id"`
	AccountID       int64           `db:"account_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     *string         `db:"description"` // Nullable
	CreatedAt       time.Time       `db:"created_at"`
}
