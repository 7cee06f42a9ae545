package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/SscSPs/hesabdar/internal/models"
	"github.com/SscSPs/hesabdar/internal/utils/mapping"
	"github.com/SscSPs/hesabdar/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	entryColumns       = `id, entry_number, date, description, reference, source, voice_text, image_path, created_at, updated_at`
	transactionColumns = `id, journal_entry_id, account_id, transaction_type, amount, description, created_at`
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// txQuerier is satisfied by both the pool and a transaction.
type txQuerier interface {
	rowQuerier
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanEntry(row rowScanner) (domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID,
		&m.EntryNumber,
		&m.Date,
		&m.Description,
		&m.Reference,
		&m.Source,
		&m.VoiceText,
		&m.ImagePath,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	return mapping.ToDomainJournalEntry(m), nil
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.JournalEntryID,
		&m.AccountID,
		&m.TransactionType,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

func collectEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()
	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}

// linesByEntry loads the lines of the given entries in line ID order.
func linesByEntry(ctx context.Context, q txQuerier, entryIDs []int64) (map[int64][]domain.Transaction, error) {
	out := make(map[int64][]domain.Transaction, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE journal_entry_id = ANY($1) ORDER BY journal_entry_id, id`
	rows, err := q.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for journal entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		out[t.JournalEntryID] = append(out[t.JournalEntryID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	for _, id := range entryIDs {
		if _, ok := out[id]; !ok {
			out[id] = []domain.Transaction{}
		}
	}
	return out, nil
}

func attachLines(ctx context.Context, q txQuerier, entries []domain.JournalEntry) error {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.JournalEntryID
	}
	lines, err := linesByEntry(ctx, q, ids)
	if err != nil {
		return err
	}
	for i := range entries {
		entries[i].Transactions = lines[entries[i].JournalEntryID]
	}
	return nil
}

func findEntry(ctx context.Context, q txQuerier, query string, entryID int64) (*domain.JournalEntry, error) {
	entry, err := scanEntry(q.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}
	entries := []domain.JournalEntry{entry}
	if err := attachLines(ctx, q, entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// FindJournalEntryByID retrieves an entry together with its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	return findEntry(ctx, r.Pool, `SELECT `+entryColumns+` FROM journal_entries WHERE id = $1`, entryID)
}

func (r *PgxJournalRepository) FindJournalEntryForUpdate(ctx context.Context, tx pgx.Tx, entryID int64) (*domain.JournalEntry, error) {
	return findEntry(ctx, tx, `SELECT `+entryColumns+` FROM journal_entries WHERE id = $1 FOR UPDATE`, entryID)
}

// ListJournalEntries retrieves entries newest first using token-based pagination.
// The token holds the (date, id) of the last entry on the previous page.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, limit int, nextToken *string, startDate, endDate *time.Time) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// one extra row tells us whether another page exists
	fetchLimit := limit + 1

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if startDate != nil {
		conds = append(conds, "date >= "+arg(*startDate))
	}
	if endDate != nil {
		conds = append(conds, "date <= "+arg(*endDate))
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		conds = append(conds, "(date, id) < ("+arg(lastDate)+", "+arg(lastID)+")")
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, id DESC LIMIT " + arg(fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.Date, last.JournalEntryID)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	if err := attachLines(ctx, r.Pool, entries); err != nil {
		return nil, nil, err
	}
	return entries, nextTokenVal, nil
}

func (r *PgxJournalRepository) ListRecentJournalEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+entryColumns+` FROM journal_entries ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent journal entries: %w", err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}
	if err := attachLines(ctx, r.Pool, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindTransactionsByJournalIDs retrieves all lines for the given entries keyed by entry ID.
func (r *PgxJournalRepository) FindTransactionsByJournalIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.Transaction, error) {
	return linesByEntry(ctx, r.Pool, entryIDs)
}

func (r *PgxJournalRepository) NextEntrySequenceInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('journal_entry_number_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to draw entry number: %w", mapPgError(err))
	}
	return seq, nil
}

// InsertJournalEntryInTx inserts the header, then the lines in one batch.
func (r *PgxJournalRepository) InsertJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(*entry)
	query := `
		INSERT INTO journal_entries (entry_number, date, description, reference, source, voice_text, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := tx.QueryRow(ctx, query,
		m.EntryNumber,
		m.Date,
		m.Description,
		m.Reference,
		m.Source,
		m.VoiceText,
		m.ImagePath,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&entry.JournalEntryID)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", m.EntryNumber, mapPgError(err))
	}

	return r.insertLines(ctx, tx, entry.JournalEntryID, entry.Transactions)
}

// insertLines writes lines in order and fills in their IDs.
func (r *PgxJournalRepository) insertLines(ctx context.Context, tx pgx.Tx, entryID int64, lines []domain.Transaction) error {
	if len(lines) == 0 {
		return nil
	}
	query := `
		INSERT INTO transactions (journal_entry_id, account_id, transaction_type, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	batch := &pgx.Batch{}
	for i := range lines {
		lines[i].JournalEntryID = entryID
		m := mapping.ToModelTransaction(lines[i])
		batch.Queue(query, m.JournalEntryID, m.AccountID, m.TransactionType, m.Amount, m.Description)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := range lines {
		if err := br.QueryRow().Scan(&lines[i].TransactionID, &lines[i].CreatedAt); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert line %d of journal entry %d: %w", i+1, entryID, mapPgError(err))
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close transaction batch: %w", mapPgError(err))
	}
	return batchErr
}

// UpdateJournalEntryHeaderInTx updates date, description and reference. Number and source never change.
func (r *PgxJournalRepository) UpdateJournalEntryHeaderInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET date = $2, description = $3, reference = $4, updated_at = $5
		WHERE id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, m.JournalEntryID, m.Date, m.Description, m.Reference, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %d: %w", m.JournalEntryID, mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, m.JournalEntryID)
	}
	return nil
}

func (r *PgxJournalRepository) ReplaceTransactionsInTx(ctx context.Context, tx pgx.Tx, entryID int64, transactions []domain.Transaction) error {
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE journal_entry_id = $1`, entryID); err != nil {
		return fmt.Errorf("failed to delete lines of journal entry %d: %w", entryID, mapPgError(err))
	}
	return r.insertLines(ctx, tx, entryID, transactions)
}

func (r *PgxJournalRepository) DeleteJournalEntryInTx(ctx context.Context, tx pgx.Tx, entryID int64) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %d: %w", entryID, mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, entryID)
	}
	return nil
}
