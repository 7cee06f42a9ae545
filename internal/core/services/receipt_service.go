package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/extractor"
	"github.com/SscSPs/hesabdar/internal/parser/receipt"
	"github.com/jackc/pgx/v5"
)

const (
	receiptParsedMessage  = "فیش با موفقیت پردازش شد"
	receiptPartialMessage = "اطلاعات کامل استخراج نشد"
)

// TextExtractor reads the embedded text of a stored document.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepository
	journalSvc  portssvc.JournalWriterSvc
	extractor   TextExtractor
}

// ReceiptOption configures the receipt service.
type ReceiptOption func(*receiptService)

// WithTextExtractor replaces the PDF text extractor.
func WithTextExtractor(e TextExtractor) ReceiptOption {
	return func(s *receiptService) {
		s.extractor = e
	}
}

// NewReceiptService creates a service that stages receipts and confirms them into entries.
func NewReceiptService(txManager portsrepo.TransactionManager, receiptRepo portsrepo.ReceiptRepository, journalSvc portssvc.JournalWriterSvc, options ...ReceiptOption) portssvc.ReceiptSvc {
	svc := &receiptService{
		BaseService: BaseService{TxManager: txManager},
		receiptRepo: receiptRepo,
		journalSvc:  journalSvc,
		extractor:   extractor.NewPDFExtractor(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReceiptSvc = (*receiptService)(nil)

func (s *receiptService) IngestReceipt(ctx context.Context, upload dto.ReceiptUpload) (*dto.ReceiptResponse, error) {
	text := strings.TrimSpace(upload.Text)
	if extractor.IsPDF(upload.StoredPath, upload.ContentType) {
		extracted, err := s.extractor.ExtractText(ctx, upload.StoredPath)
		if err != nil {
			s.LogError(ctx, err, "Failed to extract receipt text", slog.String("path", upload.StoredPath))
			if text == "" {
				return nil, fmt.Errorf("%w: could not read text from pdf: %v", apperrors.ErrValidation, err)
			}
		} else if strings.TrimSpace(extracted) != "" {
			text = strings.TrimSpace(extracted)
		}
	}

	parsed := receipt.Parse(text)
	rec := &domain.Receipt{
		ImagePath:     upload.StoredPath,
		ExtractedText: text,
		Amount:        parsed.Amount,
		Date:          parsed.Date,
		Vendor:        parsed.Vendor,
	}
	if err := s.receiptRepo.SaveReceipt(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("path", upload.StoredPath))
		return nil, err
	}

	message := receiptParsedMessage
	if !parsed.Success {
		message = receiptPartialMessage
	}
	s.LogInfo(ctx, "Receipt ingested",
		slog.Int64("receipt_id", rec.ReceiptID),
		slog.Bool("amount_found", parsed.Success))

	resp := dto.ToReceiptResponse(rec, parsed.Success, message)
	return &resp, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, limit int, offset int) ([]domain.Receipt, error) {
	limit, offset = clampPage(limit, offset, defaultLogListLimit, maxLogListLimit)
	receipts, err := s.receiptRepo.ListReceipts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}
	if receipts == nil {
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (s *receiptService) ConfirmReceipt(ctx context.Context, receiptID int64, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.RunInTxWithRetry(ctx, "confirm_receipt", func(tx pgx.Tx) error {
		rec, err := s.receiptRepo.FindReceiptForUpdate(ctx, tx, receiptID)
		if err != nil {
			return err
		}
		if rec.IsProcessed {
			return fmt.Errorf("%w: receipt %d is already processed", apperrors.ErrValidation, receiptID)
		}

		imagePath := rec.ImagePath
		candidate := &domain.JournalEntry{
			Date:         req.Date,
			Description:  strings.TrimSpace(req.Description),
			Reference:    req.Reference,
			Source:       domain.SourceOCR,
			ImagePath:    &imagePath,
			Transactions: dto.ToDomainTransactions(req.Transactions),
		}
		if err := s.journalSvc.CommitJournalEntryInTx(ctx, tx, candidate); err != nil {
			return err
		}
		if err := s.receiptRepo.MarkReceiptProcessedInTx(ctx, tx, receiptID, candidate.JournalEntryID); err != nil {
			return err
		}
		entry = candidate
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrUnbalanced) {
			s.LogError(ctx, err, "Failed to confirm receipt", slog.Int64("receipt_id", receiptID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Receipt confirmed",
		slog.Int64("receipt_id", receiptID),
		slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}
