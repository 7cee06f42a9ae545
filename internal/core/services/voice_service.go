package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/SscSPs/hesabdar/internal/parser/voice"
	"github.com/SscSPs/hesabdar/internal/utils"
)

// Page bounds shared by the receipt and voice log listings.
const (
	defaultLogListLimit = 50
	maxLogListLimit     = 500
)

const voiceExample = "مثال صحیح: 'پرداخت پانصد هزار تومان به آقا بهداشکاران کن'"

type voiceService struct {
	BaseService
	intentSvc    portssvc.IntentSvc
	voiceLogRepo portsrepo.VoiceLogRepository
}

// NewVoiceService creates a service that turns voice text into journal entries.
func NewVoiceService(intentSvc portssvc.IntentSvc, voiceLogRepo portsrepo.VoiceLogRepository) portssvc.VoiceSvc {
	return &voiceService{
		intentSvc:    intentSvc,
		voiceLogRepo: voiceLogRepo,
	}
}

var _ portssvc.VoiceSvc = (*voiceService)(nil)

func (s *voiceService) ProcessVoiceCommand(ctx context.Context, text string) (*dto.VoiceCommandResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: voice text is required", apperrors.ErrValidation)
	}

	result := voice.Parse(text)
	parsed := result.ToMap()
	voiceLog := &domain.VoiceLog{TranscribedText: text, ParsedData: parsed}

	if !result.Success {
		s.saveLog(ctx, voiceLog)
		return &dto.VoiceCommandResponse{
			Success:    false,
			Message:    result.Error + "\n\n" + voiceExample,
			ParsedData: parsed,
		}, nil
	}

	entry, err := s.intentSvc.TranslateIntent(ctx, result.Intent(), portssvc.EntryOrigin{
		Source:    domain.SourceVoice,
		VoiceText: &text,
	})
	if err != nil {
		s.saveLog(ctx, voiceLog)
		return nil, err
	}

	voiceLog.JournalEntryID = &entry.JournalEntryID
	voiceLog.IsProcessed = true
	s.saveLog(ctx, voiceLog)

	return &dto.VoiceCommandResponse{
		Success:        true,
		Message:        successMessage(result, entry),
		ParsedData:     parsed,
		JournalEntryID: &entry.JournalEntryID,
		EntryNumber:    entry.EntryNumber,
	}, nil
}

// saveLog records the attempt. The entry, if any, is already committed, so failures are only logged.
func (s *voiceService) saveLog(ctx context.Context, voiceLog *domain.VoiceLog) {
	if err := s.voiceLogRepo.SaveVoiceLog(ctx, voiceLog); err != nil {
		s.LogError(ctx, err, "Failed to save voice log")
	}
}

func successMessage(result voice.Result, entry *domain.JournalEntry) string {
	kind := "پرداخت"
	if result.TransactionType == domain.DirectionReceive {
		kind = "دریافت"
	}
	var b strings.Builder
	b.WriteString("سند با موفقیت ثبت شد\n")
	fmt.Fprintf(&b, "شماره سند: %s\n", entry.EntryNumber)
	fmt.Fprintf(&b, "مبلغ: %s ریال\n", utils.FormatAmount(result.Amount))
	fmt.Fprintf(&b, "نوع: %s", kind)
	if result.Counterparty != "" {
		fmt.Fprintf(&b, "\nطرف حساب: %s", result.Counterparty)
	}
	if result.AccountName != "" {
		fmt.Fprintf(&b, "\nحساب: %s", result.AccountName)
	}
	return b.String()
}

func (s *voiceService) ListVoiceLogs(ctx context.Context, limit int, offset int) ([]domain.VoiceLog, error) {
	limit, offset = clampPage(limit, offset, defaultLogListLimit, maxLogListLimit)
	logs, err := s.voiceLogRepo.ListVoiceLogs(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list voice logs", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}
	if logs == nil {
		return []domain.VoiceLog{}, nil
	}
	return logs, nil
}
