package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the accounting class of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	Debtor    AccountType = "DEBTOR"
	Creditor  AccountType = "CREDITOR"
)

// AccountTypes lists every supported account class in chart order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense, Debtor, Creditor}

// IsValid reports whether t is one of the seven account classes.
func (t AccountType) IsValid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CashAccountName is the name of the cash box account used by intent translation.
const CashAccountName = "صندوق"

// Account is a node of the chart of accounts. The tree is flat: children
// point at their parent by ID and are found by lookup.
type Account struct {
	AccountID   int64           `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	ParentID    *int64          `json:"parentID,omitempty"`
	Balance     decimal.Decimal `json:"balance"` // cached debit minus credit
	IsActive    bool            `json:"isActive"`
	Timestamps
}
