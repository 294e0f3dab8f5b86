package services

import (
	"context"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// HistorySvcFacade defines read access to the audit trail. History is
// append-only; there are no write operations here because records are created
// by the charge-rule and pricing services as part of their mutations.
type HistorySvcFacade interface {
	// ListChargeRuleHistory returns rule audit records newest first,
	// optionally narrowed to one rule.
	ListChargeRuleHistory(ctx context.Context, ruleID *string, limit, offset int) ([]domain.ChargeRuleChange, error)

	// ListPriceHistory returns price audit records newest first.
	ListPriceHistory(ctx context.Context, instrumentID string, limit, offset int) ([]domain.PriceChange, error)
}
