package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/utils"
	"github.com/jackc/pgx/v5"
)

const (
	debitLineSuffix  = " - بدهکار"
	creditLineSuffix = " - بستانکار"
)

// intentService books parsed intents against the cash box and a counterparty account.
type intentService struct {
	BaseService
	accountSvc portssvc.AccountProvisionerSvc
	journalSvc portssvc.JournalWriterSvc
	now        func() time.Time
}

// NewIntentService creates a new intent translator.
func NewIntentService(txManager portsrepo.TransactionManager, accountSvc portssvc.AccountProvisionerSvc, journalSvc portssvc.JournalWriterSvc) portssvc.IntentSvc {
	return &intentService{
		BaseService: BaseService{TxManager: txManager},
		accountSvc:  accountSvc,
		journalSvc:  journalSvc,
		now:         time.Now,
	}
}

var _ portssvc.IntentSvc = (*intentService)(nil)

func (s *intentService) TranslateIntent(ctx context.Context, intent domain.Intent, origin portssvc.EntryOrigin) (*domain.JournalEntry, error) {
	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	var entry *domain.JournalEntry
	err := s.RunInTxWithRetry(ctx, "translate_intent", func(tx pgx.Tx) error {
		var err error
		entry, err = s.TranslateIntentInTx(ctx, tx, intent, origin)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to translate intent", slog.String("direction", string(intent.Direction)))
		return nil, err
	}
	return entry, nil
}

func validateIntent(intent domain.Intent) error {
	if !intent.Amount.IsPositive() {
		return fmt.Errorf("%w: intent amount must be positive", apperrors.ErrValidation)
	}
	if intent.Direction != domain.DirectionPayment && intent.Direction != domain.DirectionReceive {
		return fmt.Errorf("%w: unknown intent direction %q", apperrors.ErrValidation, intent.Direction)
	}
	return nil
}

// TranslateIntentInTx books a payment as debit counterparty, credit cash, and a receipt as the reverse.
func (s *intentService) TranslateIntentInTx(ctx context.Context, tx pgx.Tx, intent domain.Intent, origin portssvc.EntryOrigin) (*domain.JournalEntry, error) {
	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	counterparty := strings.TrimSpace(intent.Counterparty)
	if counterparty == "" {
		counterparty = domain.UnknownCounterparty
	}

	cash, err := s.accountSvc.GetOrCreateAccountByName(ctx, tx, domain.CashAccountName, domain.Asset)
	if err != nil {
		return nil, fmt.Errorf("cash account: %w", err)
	}

	var debitAcc, creditAcc *domain.Account
	var description string
	amount := utils.FormatAmount(intent.Amount)
	switch intent.Direction {
	case domain.DirectionPayment:
		cp, err := s.accountSvc.GetOrCreateAccountByName(ctx, tx, counterparty, domain.Creditor)
		if err != nil {
			return nil, fmt.Errorf("counterparty account: %w", err)
		}
		debitAcc, creditAcc = cp, cash
		description = fmt.Sprintf("پرداخت %s ریال به %s", amount, counterparty)
	default:
		cp, err := s.accountSvc.GetOrCreateAccountByName(ctx, tx, counterparty, domain.Debtor)
		if err != nil {
			return nil, fmt.Errorf("counterparty account: %w", err)
		}
		debitAcc, creditAcc = cash, cp
		description = fmt.Sprintf("دریافت %s ریال از %s", amount, counterparty)
	}

	source := origin.Source
	if source == "" {
		source = domain.SourceVoice
	}
	now := s.now()
	entry := &domain.JournalEntry{
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Description: description,
		Source:      source,
		VoiceText:   origin.VoiceText,
		ImagePath:   origin.ImagePath,
		Transactions: []domain.Transaction{
			{
				AccountID:       debitAcc.AccountID,
				TransactionType: domain.Debit,
				Amount:          intent.Amount,
				Description:     debitAcc.Name + debitLineSuffix,
			},
			{
				AccountID:       creditAcc.AccountID,
				TransactionType: domain.Credit,
				Amount:          intent.Amount,
				Description:     creditAcc.Name + creditLineSuffix,
			},
		},
	}

	if err := s.journalSvc.CommitJournalEntryInTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Intent recorded",
		slog.String("entry_number", entry.EntryNumber),
		slog.String("direction", string(intent.Direction)),
		slog.String("source", string(source)))
	return entry, nil
}
