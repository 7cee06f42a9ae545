package services

import (
	"context"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
)

// VoiceSvc processes transcribed voice commands
type VoiceSvc interface {
	// ProcessVoiceCommand parses text, records an entry when it is understood, and logs the attempt.
	ProcessVoiceCommand(ctx context.Context, text string) (*dto.VoiceCommandResponse, error)

	ListVoiceLogs(ctx context.Context, limit int, offset int) ([]domain.VoiceLog, error)
}
