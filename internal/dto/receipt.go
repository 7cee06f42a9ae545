package dto

import (
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptUpload describes a stored receipt file handed to the receipt service.
type ReceiptUpload struct {
	StoredPath   string
	OriginalName string
	ContentType  string
	Text         string // client-provided text for image receipts
}

// ReceiptResponse reports the outcome of parsing an uploaded receipt.
type ReceiptResponse struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	ReceiptID     int64            `json:"receiptID"`
	ExtractedText string           `json:"extractedText"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          *string          `json:"date,omitempty"`
	Vendor        *string          `json:"vendor,omitempty"`
}

// ListReceiptsResponse wraps receipts.
type ListReceiptsResponse struct {
	Receipts []domain.Receipt `json:"receipts"`
}

// ToReceiptResponse converts a stored receipt to the upload response.
func ToReceiptResponse(r *domain.Receipt, success bool, message string) ReceiptResponse {
	return ReceiptResponse{
		Success:       success,
		Message:       message,
		ReceiptID:     r.ReceiptID,
		ExtractedText: r.ExtractedText,
		Amount:        r.Amount,
		Date:          r.Date,
		Vendor:        r.Vendor,
	}
}
