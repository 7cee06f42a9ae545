package repositories

import (
	"context"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ReceiptRepository defines persistence for staged receipts
type ReceiptRepository interface {
	SaveReceipt(ctx context.Context, receipt *domain.Receipt) error
	FindReceiptByID(ctx context.Context, receiptID int64) (*domain.Receipt, error)
	// ListReceipts returns receipts newest first.
	ListReceipts(ctx context.Context, limit int, offset int) ([]domain.Receipt, error)

	// FindReceiptForUpdate locks the receipt row for the rest of tx.
	FindReceiptForUpdate(ctx context.Context, tx pgx.Tx, receiptID int64) (*domain.Receipt, error)
	// MarkReceiptProcessedInTx flags the receipt processed and links it to the entry.
	MarkReceiptProcessedInTx(ctx context.Context, tx pgx.Tx, receiptID int64, entryID int64) error
}
