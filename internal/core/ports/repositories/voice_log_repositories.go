package repositories

import (
	"context"

	"github.com/SscSPs/hesabdar/internal/core/domain"
)

// VoiceLogRepository defines persistence for processed voice commands
type VoiceLogRepository interface {
	SaveVoiceLog(ctx context.Context, log *domain.VoiceLog) error
	// ListVoiceLogs returns logs newest first.
	ListVoiceLogs(ctx context.Context, limit int, offset int) ([]domain.VoiceLog, error)
}
