package repositories

// RepositoryProvider bundles every repository port for wiring into the
// service container.
type RepositoryProvider struct {
	ChargeRuleRepo     ChargeRuleRepository
	ReferencePriceRepo ReferencePriceRepository
	HistoryRepo        ChangeHistoryRepository
}
