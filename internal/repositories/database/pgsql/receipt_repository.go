package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/SscSPs/hesabdar/internal/models"
	"github.com/SscSPs/hesabdar/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const receiptColumns = `id, journal_entry_id, image_path, extracted_text, amount, date, vendor, is_processed, created_at`

type PgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepository {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptRepository = (*PgxReceiptRepository)(nil)

func scanReceipt(row rowScanner) (domain.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID,
		&m.JournalEntryID,
		&m.ImagePath,
		&m.ExtractedText,
		&m.Amount,
		&m.Date,
		&m.Vendor,
		&m.IsProcessed,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.Receipt{}, err
	}
	return mapping.ToDomainReceipt(m), nil
}

func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt *domain.Receipt) error {
	m := mapping.ToModelReceipt(*receipt)
	query := `
		INSERT INTO receipts (image_path, extracted_text, amount, date, vendor, is_processed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query, m.ImagePath, m.ExtractedText, m.Amount, m.Date, m.Vendor, m.IsProcessed).
		Scan(&receipt.ReceiptID, &receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save receipt: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxReceiptRepository) findOne(ctx context.Context, q rowQuerier, query string, receiptID int64) (*domain.Receipt, error) {
	rec, err := scanReceipt(q.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: receipt %d", apperrors.ErrNotFound, receiptID)
		}
		return nil, fmt.Errorf("failed to find receipt %d: %w", receiptID, err)
	}
	return &rec, nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID int64) (*domain.Receipt, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, receiptID)
}

func (r *PgxReceiptRepository) FindReceiptForUpdate(ctx context.Context, tx pgx.Tx, receiptID int64) (*domain.Receipt, error) {
	return r.findOne(ctx, tx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1 FOR UPDATE`, receiptID)
}

func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, limit int, offset int) ([]domain.Receipt, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+receiptColumns+` FROM receipts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	receipts := []domain.Receipt{}
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receipt rows: %w", err)
	}
	return receipts, nil
}

func (r *PgxReceiptRepository) MarkReceiptProcessedInTx(ctx context.Context, tx pgx.Tx, receiptID int64, entryID int64) error {
	cmdTag, err := tx.Exec(ctx, `UPDATE receipts SET is_processed = TRUE, journal_entry_id = $2 WHERE id = $1`, receiptID, entryID)
	if err != nil {
		return fmt.Errorf("failed to mark receipt %d processed: %w", receiptID, mapPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: receipt %d", apperrors.ErrNotFound, receiptID)
	}
	return nil
}
