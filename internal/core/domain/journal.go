package domain

import (
	"fmt"
	"time"
)

// EntrySource records which channel produced a journal entry.
type EntrySource string

const (
	SourceManual EntrySource = "manual"
	SourceVoice  EntrySource = "voice"
	SourceOCR    EntrySource = "ocr"
)

// EntryNumberFormat is the display format of journal entry numbers.
const EntryNumberFormat = "JE-%06d"

// FormatEntryNumber renders a sequence value as an entry number.
func FormatEntryNumber(seq int64) string {
	return fmt.Sprintf(EntryNumberFormat, seq)
}

// JournalEntry is a balanced set of transaction lines recorded on one date.
type JournalEntry struct {
	JournalEntryID int64         `json:"journalEntryID"`
	EntryNumber    string        `json:"entryNumber"`
	Date           time.Time     `json:"date"`
	Description    string        `json:"description"`
	Reference      *string       `json:"reference,omitempty"`
	Source         EntrySource   `json:"source"`
	VoiceText      *string       `json:"voiceText,omitempty"`
	ImagePath      *string       `json:"imagePath,omitempty"`
	Transactions   []Transaction `json:"transactions"`
	Timestamps
}
