package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo TransactionReader
	ProjectRepo     ProjectReader
	ClientRepo      ClientReader
	InvoiceRepo     InvoiceReader
	TimeEntryRepo   TimeEntryReader
	SettingsRepo    SettingsRepositoryFacade
}
