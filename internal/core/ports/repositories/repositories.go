package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager      TransactionManager
	AccountRepo    AccountRepositoryFacade
	JournalRepo    JournalRepositoryFacade
	ReportingRepo  ReportingRepository
	ReceiptRepo    ReceiptRepository
	VoiceLogRepo   VoiceLogRepository
	CredentialRepo CredentialRepository
}
