package services

import (
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Leaf services first; the journal engine depends on all three.
	container.Account = NewAccountService(repos.AccountRepo)
	container.Period = NewPeriodService(repos.PeriodRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, repos.JournalRepo)

	container.Journal = NewJournalService(
		repos.JournalRepo,
		container.Account,
		container.Period,
		container.Settings,
	)

	container.Reporting = NewReportingService(repos.ReportingRepo, container.Account, container.Settings)

	// Purchasing reaches the ledger only through the posting port the
	// journal service implements.
	postingPort := container.Journal.(portssvc.JournalPostingPort)
	container.Purchasing = NewPurchasingService(
		postingPort,
		container.Account,
		container.Settings,
		repos.IdempotencyRepo,
		repos.JournalRepo,
	)

	return container
}
