package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry together with its transaction lines.
	FindJournalEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves entries newest first using token-based pagination,
	// optionally bounded by entry date. It returns the entries, a token for the next page, and an error.
	ListJournalEntries(ctx context.Context, limit int, nextToken *string, startDate, endDate *time.Time) ([]domain.JournalEntry, *string, error)

	// ListRecentJournalEntries retrieves the most recently created entries with their lines.
	ListRecentJournalEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// FindTransactionsByJournalIDs retrieves lines for many entries keyed by entry ID.
	FindTransactionsByJournalIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.Transaction, error)
}

// JournalTransactionSupport defines journal writes that run inside a caller-owned transaction
type JournalTransactionSupport interface {
	// NextEntrySequenceInTx draws the next value of the entry number sequence.
	NextEntrySequenceInTx(ctx context.Context, tx pgx.Tx) (int64, error)

	// InsertJournalEntryInTx inserts the entry header and its lines, filling in generated IDs.
	InsertJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry) error

	// FindJournalEntryForUpdate locks an entry row and returns it with its lines.
	FindJournalEntryForUpdate(ctx context.Context, tx pgx.Tx, entryID int64) (*domain.JournalEntry, error)

	// UpdateJournalEntryHeaderInTx updates date, description and reference.
	UpdateJournalEntryHeaderInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error

	// ReplaceTransactionsInTx deletes every line of the entry and inserts the given ones.
	ReplaceTransactionsInTx(ctx context.Context, tx pgx.Tx, entryID int64, transactions []domain.Transaction) error

	// DeleteJournalEntryInTx deletes the entry; its lines cascade.
	DeleteJournalEntryInTx(ctx context.Context, tx pgx.Tx, entryID int64) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalTransactionSupport
}
