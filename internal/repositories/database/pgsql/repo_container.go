package pgsql

import (
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:      newTxManager(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		JournalRepo:    newPgxJournalRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
		ReceiptRepo:    newPgxReceiptRepository(dbPool),
		VoiceLogRepo:   newPgxVoiceLogRepository(dbPool),
		CredentialRepo: newPgxCredentialRepository(dbPool),
	}
}
