package services

import (
	"context"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
)

// ReceiptSvc stages uploaded receipts and confirms them into journal entries
type ReceiptSvc interface {
	// IngestReceipt extracts and parses the text of a stored upload and saves a receipt row.
	IngestReceipt(ctx context.Context, upload dto.ReceiptUpload) (*dto.ReceiptResponse, error)

	// ListReceipts returns receipts newest first.
	ListReceipts(ctx context.Context, limit int, offset int) ([]domain.Receipt, error)

	// ConfirmReceipt records req as an ocr entry and marks the receipt processed in one transaction.
	ConfirmReceipt(ctx context.Context, receiptID int64, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
}
