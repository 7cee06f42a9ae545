package services

import (
	"context"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/jackc/pgx/v5"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalEntry retrieves a specific entry with its lines.
	GetJournalEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of entries, newest date first.
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournalEntry validates and records a balanced entry.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, source domain.EntrySource) (*domain.JournalEntry, error)

	// CommitJournalEntryInTx validates entry and records it inside a caller-owned transaction.
	// Entry number, IDs and timestamps are filled in on success.
	CommitJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry) error

	// UpdateJournalEntry replaces the header fields and all lines of an entry.
	UpdateJournalEntry(ctx context.Context, entryID int64, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error)

	// DeleteJournalEntry removes an entry and reverses its effect on account balances.
	DeleteJournalEntry(ctx context.Context, entryID int64) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
