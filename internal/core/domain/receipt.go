package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a staged receipt upload waiting to be confirmed into a journal entry.
type Receipt struct {
	ReceiptID      int64            `json:"receiptID"`
	JournalEntryID *int64           `json:"journalEntryID,omitempty"`
	ImagePath      string           `json:"imagePath"`
	ExtractedText  string           `json:"extractedText"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Date           *string          `json:"date,omitempty"` // YYYY/MM/DD, Persian calendar
	Vendor         *string          `json:"vendor,omitempty"`
	IsProcessed    bool             `json:"isProcessed"`
	CreatedAt      time.Time        `json:"createdAt"`
}
