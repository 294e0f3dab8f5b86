package services

import (
	"context"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ChargeRuleReaderSvc defines read operations over charge rules.
type ChargeRuleReaderSvc interface {
	// GetChargeRuleByID retrieves one rule, active or not.
	GetChargeRuleByID(ctx context.Context, ruleID string) (*domain.ChargeRule, error)

	// ListChargeRules retrieves rules, optionally filtered by kind and/or
	// status.
	ListChargeRules(ctx context.Context, kind *domain.TransactionKind, status *domain.RuleStatus) ([]domain.ChargeRule, error)

	// ResolveCharge computes the charge breakdown for one transaction
	// amount against the current active rule set. The amount is tagged
	// with the platform's configured currency inside the service.
	ResolveCharge(ctx context.Context, kind domain.TransactionKind, amount decimal.Decimal) (*domain.ChargeBreakdown, error)
}

// ChargeRuleWriterSvc defines write operations over charge rules. Every
// accepted mutation records exactly one history entry.
type ChargeRuleWriterSvc interface {
	// CreateChargeRule validates and persists a new rule.
	CreateChargeRule(ctx context.Context, req dto.CreateChargeRuleRequest, creatorUserID string) (*domain.ChargeRule, error)

	// UpdateChargeRule applies a partial patch; the merged result is
	// validated before anything is written.
	UpdateChargeRule(ctx context.Context, ruleID string, req dto.UpdateChargeRuleRequest, updaterUserID string) (*domain.ChargeRule, error)

	// DisableChargeRule turns a rule inactive. Rules are never deleted.
	DisableChargeRule(ctx context.Context, ruleID string, updaterUserID string) (*domain.ChargeRule, error)
}

// ChargeRuleSvcFacade combines all charge-rule service interfaces.
type ChargeRuleSvcFacade interface {
	ChargeRuleReaderSvc
	ChargeRuleWriterSvc
}
