package models

import "time"

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	JournalEntryID int64     `db:"id"`
	EntryNumber    string    `db:"entry_number"`
	Date           time.Time `db:"date"`
	Description    string    `db:"description"`
	Reference      *string   `db:"reference"` // Nullable
	Source         string    `db:"source"`
	VoiceText      *string   `db:"voice_text"` // Nullable
	ImagePath      *string   `db:"image_path"` // Nullable
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
