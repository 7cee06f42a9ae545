package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType mirrors the account_type column.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountID   int64           `db:"id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	AccountType AccountType     `db:"account_type"`
	ParentID    *int64          `db:"parent_id"` // Nullable
	Balance     decimal.Decimal `db:"balance"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
