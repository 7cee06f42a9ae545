package dto

import (
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The code is assigned by the server.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required,max=255"`
	AccountType domain.AccountType `json:"accountType" binding:"required,account_type"`
	ParentID    *int64             `json:"parentID"` // Optional, use pointer for nullability
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	IsActive *bool   `json:"isActive"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=100" binding:"min=1,max=1000"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   int64              `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	ParentID    *int64             `json:"parentID,omitempty"`
	Balance     decimal.Decimal    `json:"balance"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		ParentID:    acc.ParentID,
		Balance:     acc.Balance,
		IsActive:    acc.IsActive,
		CreatedAt:   acc.CreatedAt,
		UpdatedAt:   acc.UpdatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	list := make([]AccountResponse, len(accounts))
	for i := range accounts {
		list[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: list}
}
