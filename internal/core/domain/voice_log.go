package domain

import "time"

// VoiceLog records one processed voice command and what it produced.
type VoiceLog struct {
	VoiceLogID      int64          `json:"voiceLogID"`
	JournalEntryID  *int64         `json:"journalEntryID,omitempty"`
	AudioPath       *string        `json:"audioPath,omitempty"`
	TranscribedText string         `json:"transcribedText"`
	ParsedData      map[string]any `json:"parsedData"`
	IsProcessed     bool           `json:"isProcessed"`
	CreatedAt       time.Time      `json:"createdAt"`
}
