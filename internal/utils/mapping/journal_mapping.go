package mapping

import (
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
// Transactions are mapped separately.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID: d.JournalEntryID,
		EntryNumber:    d.EntryNumber,
		Date:           d.Date,
		Description:    d.Description,
		Reference:      d.Reference,
		Source:         string(d.Source),
		VoiceText:      d.VoiceText,
		ImagePath:      d.ImagePath,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		EntryNumber:    m.EntryNumber,
		Date:           m.Date,
		Description:    m.Description,
		Reference:      m.Reference,
		Source:         domain.EntrySource(m.Source),
		VoiceText:      m.VoiceText,
		ImagePath:      m.ImagePath,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var desc *string
	if d.Description != "" {
		desc = &d.Description
	}
	return models.Transaction{
		TransactionID:   d.TransactionID,
		JournalEntryID:  d.JournalEntryID,
		AccountID:       d.AccountID,
		TransactionType: string(d.TransactionType),
		Amount:          d.Amount,
		Description:     desc,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		TransactionID:   m.TransactionID,
		JournalEntryID:  m.JournalEntryID,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		CreatedAt:       m.CreatedAt,
	}
	if m.Description != nil {
		t.Description = *m.Description
	}
	return t
}
