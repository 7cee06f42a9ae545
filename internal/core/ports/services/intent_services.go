package services

import (
	"context"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EntryOrigin describes where an intent came from.
type EntryOrigin struct {
	Source    domain.EntrySource
	VoiceText *string
	ImagePath *string
}

// IntentSvc turns a parsed financial intent into a balanced journal entry
type IntentSvc interface {
	// TranslateIntent records the intent as a two-line entry in its own transaction.
	TranslateIntent(ctx context.Context, intent domain.Intent, origin EntryOrigin) (*domain.JournalEntry, error)

	// TranslateIntentInTx does the same inside a caller-owned transaction.
	TranslateIntentInTx(ctx context.Context, tx pgx.Tx, intent domain.Intent, origin EntryOrigin) (*domain.JournalEntry, error)
}
