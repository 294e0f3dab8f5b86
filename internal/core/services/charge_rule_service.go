package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	portsrepo "github.com/goldhub/pricing_admin_app/internal/core/ports/repositories"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/goldhub/pricing_admin_app/internal/utils/audit"
	"github.com/goldhub/pricing_admin_app/internal/utils/charges"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeRuleService provides business logic for charge rules: validated
// creation and editing, soft deletion via disabling, and charge resolution.
// Every accepted mutation writes one audit record before returning.
type ChargeRuleService struct {
	ruleRepo     portsrepo.ChargeRuleRepository
	historyRepo  portsrepo.ChangeHistoryRepository
	currencyCode string
}

// NewChargeRuleService creates a new ChargeRuleService. currencyCode is the
// fiat currency all rule amounts are denominated in.
func NewChargeRuleService(ruleRepo portsrepo.ChargeRuleRepository, historyRepo portsrepo.ChangeHistoryRepository, currencyCode string) *ChargeRuleService {
	return &ChargeRuleService{
		ruleRepo:     ruleRepo,
		historyRepo:  historyRepo,
		currencyCode: currencyCode,
	}
}

// CreateChargeRule validates and persists a new rule, recording its creation
// in the audit trail.
func (s *ChargeRuleService) CreateChargeRule(ctx context.Context, req dto.CreateChargeRuleRequest, creatorUserID string) (*domain.ChargeRule, error) {
	kind, err := req.ResolveKind()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	status := domain.RuleActive
	if req.Active != nil && !*req.Active {
		status = domain.RuleInactive
	}

	now := time.Now()
	rule := domain.ChargeRule{
		RuleID:        uuid.NewString(),
		Kind:          kind,
		MinAmount:     domain.NewMoney(req.MinAmount, s.currencyCode),
		MaxAmount:     domain.NewMoney(req.MaxAmount, s.currencyCode),
		FixedCharge:   domain.NewMoney(req.FixedCharge, s.currencyCode),
		PercentCharge: domain.NewPercentage(req.PercentCharge),
		VATPercent:    domain.NewPercentage(req.VATPercent),
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	existingActive, err := s.ruleRepo.ListActiveChargeRulesByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load active rules for validation: %w", err)
	}
	if violations := charges.Validate(rule, existingActive); len(violations) > 0 {
		return nil, violations
	}

	if err := s.ruleRepo.SaveChargeRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create charge rule: %w", err)
	}

	change := audit.NewChargeRuleChange(domain.ChargeRule{}, rule, creatorUserID, now)
	if err := s.historyRepo.SaveChargeRuleChange(ctx, change); err != nil {
		return nil, fmt.Errorf("charge rule %s saved but history write failed: %w", rule.RuleID, err)
	}

	return &rule, nil
}

// UpdateChargeRule applies a partial patch to an existing rule. The merged
// record is validated before anything is written; on an inactive-to-active
// flip the overlap check runs against the full active set.
func (s *ChargeRuleService) UpdateChargeRule(ctx context.Context, ruleID string, req dto.UpdateChargeRuleRequest, updaterUserID string) (*domain.ChargeRule, error) {
	existing, err := s.ruleRepo.FindChargeRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load charge rule %s: %w", ruleID, err)
	}

	merged := s.applyPatch(*existing, req)
	merged.LastUpdatedAt = time.Now()
	merged.LastUpdatedBy = updaterUserID

	existingActive, err := s.ruleRepo.ListActiveChargeRulesByKind(ctx, merged.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load active rules for validation: %w", err)
	}
	if violations := charges.Validate(merged, existingActive); len(violations) > 0 {
		return nil, violations
	}

	if err := s.ruleRepo.UpdateChargeRule(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to update charge rule %s: %w", ruleID, err)
	}

	change := audit.NewChargeRuleChange(*existing, merged, updaterUserID, merged.LastUpdatedAt)
	if err := s.historyRepo.SaveChargeRuleChange(ctx, change); err != nil {
		return nil, fmt.Errorf("charge rule %s updated but history write failed: %w", ruleID, err)
	}

	return &merged, nil
}

// DisableChargeRule turns a rule inactive. Disabling an already inactive rule
// is a no-op and records no history.
func (s *ChargeRuleService) DisableChargeRule(ctx context.Context, ruleID string, updaterUserID string) (*domain.ChargeRule, error) {
	existing, err := s.ruleRepo.FindChargeRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load charge rule %s: %w", ruleID, err)
	}
	if !existing.IsActive() {
		return existing, nil
	}

	active := false
	return s.UpdateChargeRule(ctx, ruleID, dto.UpdateChargeRuleRequest{Active: &active}, updaterUserID)
}

// GetChargeRuleByID retrieves one rule, active or not.
func (s *ChargeRuleService) GetChargeRuleByID(ctx context.Context, ruleID string) (*domain.ChargeRule, error) {
	rule, err := s.ruleRepo.FindChargeRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get charge rule %s: %w", ruleID, err)
	}
	return rule, nil
}

// ListChargeRules retrieves rules, optionally filtered by kind and/or status.
func (s *ChargeRuleService) ListChargeRules(ctx context.Context, kind *domain.TransactionKind, status *domain.RuleStatus) ([]domain.ChargeRule, error) {
	if kind != nil && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, *kind)
	}
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown rule status %q", apperrors.ErrValidation, *status)
	}
	rules, err := s.ruleRepo.ListChargeRules(ctx, kind, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list charge rules: %w", err)
	}
	return rules, nil
}

// ResolveCharge computes the charge breakdown for one transaction amount
// against the current active rule set.
func (s *ChargeRuleService) ResolveCharge(ctx context.Context, kind domain.TransactionKind, rawAmount decimal.Decimal) (*domain.ChargeBreakdown, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, kind)
	}
	amount := domain.NewMoney(rawAmount, s.currencyCode)
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: transaction amount must not be negative", apperrors.ErrValidation)
	}

	rules, err := s.ruleRepo.ListActiveChargeRulesByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load active rules: %w", err)
	}
	return charges.Resolve(kind, amount, rules)
}

func (s *ChargeRuleService) applyPatch(rule domain.ChargeRule, req dto.UpdateChargeRuleRequest) domain.ChargeRule {
	if req.MinAmount != nil {
		rule.MinAmount = domain.NewMoney(*req.MinAmount, s.currencyCode)
	}
	if req.MaxAmount != nil {
		rule.MaxAmount = domain.NewMoney(*req.MaxAmount, s.currencyCode)
	}
	if req.FixedCharge != nil {
		rule.FixedCharge = domain.NewMoney(*req.FixedCharge, s.currencyCode)
	}
	if req.PercentCharge != nil {
		rule.PercentCharge = domain.NewPercentage(*req.PercentCharge)
	}
	if req.VATPercent != nil {
		rule.VATPercent = domain.NewPercentage(*req.VATPercent)
	}
	if req.Active != nil {
		if *req.Active {
			rule.Status = domain.RuleActive
		} else {
			rule.Status = domain.RuleInactive
		}
	}
	return rule
}
