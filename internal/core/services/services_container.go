package services

import (
	portsrepo "github.com/goldhub/pricing_admin_app/internal/core/ports/repositories"
	portssvc "github.com/goldhub/pricing_admin_app/internal/core/ports/services"
	"github.com/goldhub/pricing_admin_app/internal/platform/config"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ChargeRule: NewChargeRuleService(repos.ChargeRuleRepo, repos.HistoryRepo, cfg.CurrencyCode),
		Pricing:    NewPricingService(repos.ReferencePriceRepo, repos.HistoryRepo),
		History:    NewHistoryService(repos.HistoryRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.ChargeRuleSvcFacade = (*ChargeRuleService)(nil)
	_ portssvc.PricingSvcFacade    = (*PricingService)(nil)
	_ portssvc.HistorySvcFacade    = (*HistoryService)(nil)
)
