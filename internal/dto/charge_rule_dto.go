package dto

import (
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateChargeRuleRequest defines the payload for creating a charge rule.
// Amount fields accept JSON numbers or numeric strings; decimal handles both
// so floats never leak into the core. Kind may be given as the enum name or,
// for legacy dashboard clients, as the numeric slug.
type CreateChargeRuleRequest struct {
	Kind          string          `json:"kind" binding:"omitempty,txkind"`
	Slug          *int            `json:"slug" binding:"omitempty,min=0,max=3"`
	MinAmount     decimal.Decimal `json:"minAmount"`
	MaxAmount     decimal.Decimal `json:"maxAmount"`
	FixedCharge   decimal.Decimal `json:"fixedCharge"`
	PercentCharge decimal.Decimal `json:"percentCharge"`
	VATPercent    decimal.Decimal `json:"vatPercent"`
	Active        *bool           `json:"active"` // Defaults to true
}

// ResolveKind returns the transaction kind from whichever of Kind/Slug the
// client sent, preferring the enum name.
func (r CreateChargeRuleRequest) ResolveKind() (domain.TransactionKind, error) {
	if r.Kind != "" {
		kind := domain.TransactionKind(r.Kind)
		if !kind.Valid() {
			return "", fmt.Errorf("unknown transaction kind %q", r.Kind)
		}
		return kind, nil
	}
	if r.Slug != nil {
		return KindFromSlug(*r.Slug)
	}
	return "", fmt.Errorf("one of kind or slug is required")
}

// UpdateChargeRuleRequest defines a partial patch to a charge rule. Only
// non-nil fields change; the service validates the merged result before
// anything is written. The rule id itself is immutable.
type UpdateChargeRuleRequest struct {
	MinAmount     *decimal.Decimal `json:"minAmount"`
	MaxAmount     *decimal.Decimal `json:"maxAmount"`
	FixedCharge   *decimal.Decimal `json:"fixedCharge"`
	PercentCharge *decimal.Decimal `json:"percentCharge"`
	VATPercent    *decimal.Decimal `json:"vatPercent"`
	Active        *bool            `json:"active"`
}

// ResolveChargeRequest asks for the charge breakdown of one transaction
// amount.
type ResolveChargeRequest struct {
	Kind   string          `json:"kind" binding:"required,txkind"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ChargeRuleResponse is the API shape of a charge rule. Slug and StatusCode
// carry the legacy numeric codes the dashboard tables still bind to.
type ChargeRuleResponse struct {
	RuleID        string          `json:"ruleID"`
	Kind          string          `json:"kind"`
	Slug          int             `json:"slug"`
	MinAmount     decimal.Decimal `json:"minAmount"`
	MaxAmount     decimal.Decimal `json:"maxAmount"`
	FixedCharge   decimal.Decimal `json:"fixedCharge"`
	PercentCharge decimal.Decimal `json:"percentCharge"`
	VATPercent    decimal.Decimal `json:"vatPercent"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        string          `json:"status"`
	StatusCode    int             `json:"statusCode"`
	CreatedAt     string          `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt string          `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ChargeBreakdownResponse is the API shape of a resolved charge.
type ChargeBreakdownResponse struct {
	Rule        ChargeRuleResponse `json:"rule"`
	BaseFee     decimal.Decimal    `json:"baseFee"`
	VAT         decimal.Decimal    `json:"vat"`
	TotalCharge decimal.Decimal    `json:"totalCharge"`
	NetAmount   decimal.Decimal    `json:"netAmount"`
}

// ToChargeRuleResponse converts a domain rule to its API shape.
func ToChargeRuleResponse(rule domain.ChargeRule) ChargeRuleResponse {
	return ChargeRuleResponse{
		RuleID:        rule.RuleID,
		Kind:          string(rule.Kind),
		Slug:          SlugFromKind(rule.Kind),
		MinAmount:     rule.MinAmount.Amount,
		MaxAmount:     rule.MaxAmount.Amount,
		FixedCharge:   rule.FixedCharge.Amount,
		PercentCharge: rule.PercentCharge.Decimal(),
		VATPercent:    rule.VATPercent.Decimal(),
		CurrencyCode:  rule.MinAmount.CurrencyCode,
		Status:        string(rule.Status),
		StatusCode:    CodeFromStatus(rule.Status),
		CreatedAt:     formatTime(rule.CreatedAt),
		CreatedBy:     rule.CreatedBy,
		LastUpdatedAt: formatTime(rule.LastUpdatedAt),
		LastUpdatedBy: rule.LastUpdatedBy,
	}
}

// ToListChargeRuleResponse converts a slice of domain rules.
func ToListChargeRuleResponse(rules []domain.ChargeRule) []ChargeRuleResponse {
	responses := make([]ChargeRuleResponse, len(rules))
	for i, rule := range rules {
		responses[i] = ToChargeRuleResponse(rule)
	}
	return responses
}

// ToChargeBreakdownResponse converts a resolved breakdown.
func ToChargeBreakdownResponse(b domain.ChargeBreakdown) ChargeBreakdownResponse {
	return ChargeBreakdownResponse{
		Rule:        ToChargeRuleResponse(b.Rule),
		BaseFee:     b.BaseFee.Amount,
		VAT:         b.VAT.Amount,
		TotalCharge: b.TotalCharge.Amount,
		NetAmount:   b.NetAmount.Amount,
	}
}
