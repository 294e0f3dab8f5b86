package mapping

import (
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/models"
)

// ToModelChargeRule converts a domain ChargeRule to its persistence shape.
func ToModelChargeRule(d domain.ChargeRule) models.ChargeRule {
	return models.ChargeRule{
		RuleID:        d.RuleID,
		Kind:          string(d.Kind),
		MinAmount:     d.MinAmount.Amount,
		MaxAmount:     d.MaxAmount.Amount,
		FixedCharge:   d.FixedCharge.Amount,
		PercentCharge: d.PercentCharge.Decimal(),
		VATPercent:    d.VATPercent.Decimal(),
		CurrencyCode:  d.MinAmount.CurrencyCode,
		Status:        string(d.Status),
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

// ToDomainChargeRule converts a persisted ChargeRule back to the domain
// shape, re-tagging every amount with the stored currency.
func ToDomainChargeRule(m models.ChargeRule) domain.ChargeRule {
	return domain.ChargeRule{
		RuleID:        m.RuleID,
		Kind:          domain.TransactionKind(m.Kind),
		MinAmount:     domain.NewMoney(m.MinAmount, m.CurrencyCode),
		MaxAmount:     domain.NewMoney(m.MaxAmount, m.CurrencyCode),
		FixedCharge:   domain.NewMoney(m.FixedCharge, m.CurrencyCode),
		PercentCharge: domain.NewPercentage(m.PercentCharge),
		VATPercent:    domain.NewPercentage(m.VATPercent),
		Status:        domain.RuleStatus(m.Status),
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}
