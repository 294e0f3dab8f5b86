package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this and depend only on the facade interfaces.
type ServiceContainer struct {
	ChargeRule ChargeRuleSvcFacade
	Pricing    PricingSvcFacade
	History    HistorySvcFacade
}
