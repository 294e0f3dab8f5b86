package repositories

import (
	"context"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// ChargeRuleRepository defines the persistence operations for charge rules.
// Rules are never physically deleted; disabling happens through
// UpdateChargeRule with an inactive status.
type ChargeRuleRepository interface {
	SaveChargeRule(ctx context.Context, rule domain.ChargeRule) error
	UpdateChargeRule(ctx context.Context, rule domain.ChargeRule) error
	FindChargeRuleByID(ctx context.Context, ruleID string) (*domain.ChargeRule, error)
	// ListChargeRules returns rules filtered by kind and/or status; nil
	// filters match everything.
	ListChargeRules(ctx context.Context, kind *domain.TransactionKind, status *domain.RuleStatus) ([]domain.ChargeRule, error)
	// ListActiveChargeRulesByKind returns the active brackets the resolver
	// and validator operate on.
	ListActiveChargeRulesByKind(ctx context.Context, kind domain.TransactionKind) ([]domain.ChargeRule, error)
}
