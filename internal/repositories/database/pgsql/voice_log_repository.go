package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hesabdar/internal/core/domain"
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/SscSPs/hesabdar/internal/models"
	"github.com/SscSPs/hesabdar/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoiceLogRepository struct {
	BaseRepository
}

func newPgxVoiceLogRepository(pool *pgxpool.Pool) portsrepo.VoiceLogRepository {
	return &PgxVoiceLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoiceLogRepository = (*PgxVoiceLogRepository)(nil)

func (r *PgxVoiceLogRepository) SaveVoiceLog(ctx context.Context, log *domain.VoiceLog) error {
	m, err := mapping.ToModelVoiceLog(*log)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO voice_logs (journal_entry_id, audio_path, transcribed_text, parsed_data, is_processed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err = r.Pool.QueryRow(ctx, query, m.JournalEntryID, m.AudioPath, m.TranscribedText, m.ParsedData, m.IsProcessed).
		Scan(&log.VoiceLogID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save voice log: %w", mapPgError(err))
	}
	return nil
}

func (r *PgxVoiceLogRepository) ListVoiceLogs(ctx context.Context, limit int, offset int) ([]domain.VoiceLog, error) {
	query := `
		SELECT id, journal_entry_id, audio_path, transcribed_text, parsed_data, is_processed, created_at
		FROM voice_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query voice logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.VoiceLog{}
	for rows.Next() {
		var m models.VoiceLog
		if err := rows.Scan(
			&m.VoiceLogID,
			&m.JournalEntryID,
			&m.AudioPath,
			&m.TranscribedText,
			&m.ParsedData,
			&m.IsProcessed,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan voice log row: %w", err)
		}
		log, err := mapping.ToDomainVoiceLog(m)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voice log rows: %w", err)
	}
	return logs, nil
}
