package dto

import (
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is one line of a journal entry request.
type CreateTransactionRequest struct {
	AccountID       int64                  `json:"accountID" binding:"required,min=1"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,txn_type"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description" binding:"max=500"`
}

// CreateJournalEntryRequest defines the data needed to record a journal entry.
type CreateJournalEntryRequest struct {
	Date         time.Time                  `json:"date" binding:"required"`
	Description  string                     `json:"description" binding:"required,max=1000"`
	Reference    *string                    `json:"reference" binding:"omitempty,max=255"`
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest replaces the header fields and the full line set of an entry.
type UpdateJournalEntryRequest = CreateJournalEntryRequest

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int        `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string    `form:"nextToken"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction line.
type TransactionResponse struct {
	TransactionID   int64                  `json:"transactionID"`
	AccountID       int64                  `json:"accountID"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry and its lines.
type JournalEntryResponse struct {
	JournalEntryID int64                 `json:"journalEntryID"`
	EntryNumber    string                `json:"entryNumber"`
	Date           time.Time             `json:"date"`
	Description    string                `json:"description"`
	Reference      *string               `json:"reference,omitempty"`
	Source         domain.EntrySource    `json:"source"`
	VoiceText      *string               `json:"voiceText,omitempty"`
	ImagePath      *string               `json:"imagePath,omitempty"`
	Transactions   []TransactionResponse `json:"transactions"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToDomainTransactions converts request lines to domain lines.
func ToDomainTransactions(reqs []CreateTransactionRequest) []domain.Transaction {
	txns := make([]domain.Transaction, len(reqs))
	for i, r := range reqs {
		txns[i] = domain.Transaction{
			AccountID:       r.AccountID,
			TransactionType: r.TransactionType,
			Amount:          r.Amount,
			Description:     r.Description,
		}
	}
	return txns
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = TransactionResponse{
			TransactionID:   txn.TransactionID,
			AccountID:       txn.AccountID,
			TransactionType: txn.TransactionType,
			Amount:          txn.Amount,
			Description:     txn.Description,
		}
	}
	return responses
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		JournalEntryID: e.JournalEntryID,
		EntryNumber:    e.EntryNumber,
		Date:           e.Date,
		Description:    e.Description,
		Reference:      e.Reference,
		Source:         e.Source,
		VoiceText:      e.VoiceText,
		ImagePath:      e.ImagePath,
		Transactions:   ToTransactionResponses(e.Transactions),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}
