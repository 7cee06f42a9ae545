package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a row of the receipts table.
type Receipt struct {
	ReceiptID      int64            `db:"id"`
	JournalEntryID *int64           `db:"journal_entry_id"`
	ImagePath      string           `db:"image_path"`
	ExtractedText  string           `db:"extracted_text"`
	Amount         *decimal.Decimal `db:"amount"`
	Date           *string          `db:"date"`
	Vendor         *string          `db:"vendor"`
	IsProcessed    bool             `db:"is_processed"`
	CreatedAt      time.Time        `db:"created_at"`
}
