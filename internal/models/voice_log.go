package models

import "time"

// VoiceLog is a row of the voice_logs table. ParsedData holds raw JSONB.
type VoiceLog struct {
	VoiceLogID      int64     `db:"id"`
	JournalEntryID  *int64    `db:"journal_entry_id"`
	AudioPath       *string   `db:"audio_path"`
	TranscribedText string    `db:"transcribed_text"`
	ParsedData      []byte    `db:"parsed_data"`
	IsProcessed     bool      `db:"is_processed"`
	CreatedAt       time.Time `db:"created_at"`
}
