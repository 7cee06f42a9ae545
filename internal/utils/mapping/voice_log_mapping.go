package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/models"
)

// ToModelVoiceLog converts a domain VoiceLog to a model VoiceLog, encoding the parsed data as JSON.
func ToModelVoiceLog(d domain.VoiceLog) (models.VoiceLog, error) {
	parsed := d.ParsedData
	if parsed == nil {
		parsed = map[string]any{}
	}
	raw, err := json.Marshal(parsed)
	if err != nil {
		return models.VoiceLog{}, fmt.Errorf("failed to encode voice log parsed data: %w", err)
	}
	return models.VoiceLog{
		VoiceLogID:      d.VoiceLogID,
		JournalEntryID:  d.JournalEntryID,
		AudioPath:       d.AudioPath,
		TranscribedText: d.TranscribedText,
		ParsedData:      raw,
		IsProcessed:     d.IsProcessed,
		CreatedAt:       d.CreatedAt,
	}, nil
}

// ToDomainVoiceLog converts a model VoiceLog to a domain VoiceLog
func ToDomainVoiceLog(m models.VoiceLog) (domain.VoiceLog, error) {
	parsed := map[string]any{}
	if len(m.ParsedData) > 0 {
		if err := json.Unmarshal(m.ParsedData, &parsed); err != nil {
			return domain.VoiceLog{}, fmt.Errorf("failed to decode voice log %d parsed data: %w", m.VoiceLogID, err)
		}
	}
	return domain.VoiceLog{
		VoiceLogID:      m.VoiceLogID,
		JournalEntryID:  m.JournalEntryID,
		AudioPath:       m.AudioPath,
		TranscribedText: m.TranscribedText,
		ParsedData:      parsed,
		IsProcessed:     m.IsProcessed,
		CreatedAt:       m.CreatedAt,
	}, nil
}
