package repositories

// RepositoryProvider aggregates all repository implementations needed by the
// service layer. Wiring code builds one of these from the chosen storage
// adapter and hands it to the service container.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	JournalRepo     JournalEntryRepository
	PeriodRepo      PeriodRepository
	SettingsRepo    SettingsRepository
	ReportingRepo   ReportingRepository
	IdempotencyRepo IdempotencyStore
}
