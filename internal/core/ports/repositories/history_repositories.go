package repositories

import (
	"context"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// ChangeHistoryRepository defines the persistence operations for the
// append-only audit trail. Records are inserted once and never updated or
// deleted; listings come back CreatedAt descending.
type ChangeHistoryRepository interface {
	SaveChargeRuleChange(ctx context.Context, change domain.ChargeRuleChange) error
	// ListChargeRuleChanges returns rule history, optionally narrowed to one
	// rule. limit caps the page size, offset skips past earlier pages.
	ListChargeRuleChanges(ctx context.Context, ruleID *string, limit, offset int) ([]domain.ChargeRuleChange, error)

	SavePriceChange(ctx context.Context, change domain.PriceChange) error
	ListPriceChanges(ctx context.Context, instrumentID string, limit, offset int) ([]domain.PriceChange, error)
}
