package services

import (
	portsrepo "github.com/SscSPs/hesabdar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.TxManager, repos.AccountRepo)
	container.Journal = NewJournalService(repos.TxManager, repos.JournalRepo, repos.AccountRepo)

	// The translator provisions accounts and commits entries inside its own transaction
	container.Intent = NewIntentService(repos.TxManager, container.Account, container.Journal)

	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo, repos.JournalRepo)
	container.Voice = NewVoiceService(container.Intent, repos.VoiceLogRepo)
	container.Receipt = NewReceiptService(repos.TxManager, repos.ReceiptRepo, container.Journal)
	container.Auth = NewAuthService(cfg, repos.CredentialRepo)

	return container
}
