package mapping

import (
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:      d.ReceiptID,
		JournalEntryID: d.JournalEntryID,
		ImagePath:      d.ImagePath,
		ExtractedText:  d.ExtractedText,
		Amount:         d.Amount,
		Date:           d.Date,
		Vendor:         d.Vendor,
		IsProcessed:    d.IsProcessed,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:      m.ReceiptID,
		JournalEntryID: m.JournalEntryID,
		ImagePath:      m.ImagePath,
		ExtractedText:  m.ExtractedText,
		Amount:         m.Amount,
		Date:           m.Date,
		Vendor:         m.Vendor,
		IsProcessed:    m.IsProcessed,
		CreatedAt:      m.CreatedAt,
	}
}
