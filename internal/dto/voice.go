package dto

import "github.com/SscSPs/hesabdar/internal/core/domain"

// VoiceCommandRequest carries already-transcribed voice text.
type VoiceCommandRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// VoiceCommandResponse reports what a voice command produced.
// Success is false with a human-readable message when the text could not be understood.
type VoiceCommandResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	ParsedData     map[string]any `json:"parsed_data,omitempty"`
	JournalEntryID *int64         `json:"journal_entry_id,omitempty"`
	EntryNumber    string         `json:"entry_number,omitempty"`
}

// ListParams defines plain offset pagination.
type ListParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListVoiceLogsResponse wraps voice logs.
type ListVoiceLogsResponse struct {
	Logs []domain.VoiceLog `json:"logs"`
}
