package mapping

import (
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/models"
)

// ToModelChargeRuleChange converts a rule audit record to its persistence
// shape. The zero-value previous snapshot of a creation becomes nil so the
// JSONB column stores NULL.
func ToModelChargeRuleChange(d domain.ChargeRuleChange) models.ChargeRuleChange {
	m := models.ChargeRuleChange{
		ChangeID:  d.ChangeID,
		RuleID:    d.RuleID,
		Updated:   ToModelChargeRule(d.Updated),
		UpdatedBy: d.UpdatedBy,
		CreatedAt: d.CreatedAt,
	}
	if d.Previous.RuleID != "" {
		prev := ToModelChargeRule(d.Previous)
		m.Previous = &prev
	}
	return m
}

// ToDomainChargeRuleChange converts a persisted rule audit record back to
// the domain shape.
func ToDomainChargeRuleChange(m models.ChargeRuleChange) domain.ChargeRuleChange {
	d := domain.ChargeRuleChange{
		ChangeID:  m.ChangeID,
		RuleID:    m.RuleID,
		Updated:   ToDomainChargeRule(m.Updated),
		UpdatedBy: m.UpdatedBy,
		CreatedAt: m.CreatedAt,
	}
	if m.Previous != nil {
		d.Previous = ToDomainChargeRule(*m.Previous)
	}
	return d
}

// ToModelPriceDelta converts a computed delta to its persistence shape.
func ToModelPriceDelta(d domain.PriceDelta) models.PriceDelta {
	return models.PriceDelta{
		Absolute:         d.Absolute.Amount,
		Percent:          d.Percent.Decimal(),
		PercentUndefined: d.PercentUndefined,
		Classification:   string(d.Classification),
		CurrencyCode:     d.Absolute.CurrencyCode,
	}
}

// ToDomainPriceDelta converts a persisted delta back to the domain shape.
func ToDomainPriceDelta(m models.PriceDelta) domain.PriceDelta {
	return domain.PriceDelta{
		Absolute:         domain.NewMoney(m.Absolute, m.CurrencyCode),
		Percent:          domain.NewPercentage(m.Percent),
		PercentUndefined: m.PercentUndefined,
		Classification:   domain.DeltaClassification(m.Classification),
	}
}

// ToModelPriceChange converts a price audit record to its persistence shape.
func ToModelPriceChange(d domain.PriceChange) models.PriceChange {
	return models.PriceChange{
		ChangeID:     d.ChangeID,
		InstrumentID: d.InstrumentID,
		Field:        string(d.Field),
		Previous:     ToModelReferencePrice(d.Previous),
		Updated:      ToModelReferencePrice(d.Updated),
		Delta:        ToModelPriceDelta(d.Delta),
		UpdatedBy:    d.UpdatedBy,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainPriceChange converts a persisted price audit record back to the
// domain shape.
func ToDomainPriceChange(m models.PriceChange) domain.PriceChange {
	return domain.PriceChange{
		ChangeID:     m.ChangeID,
		InstrumentID: m.InstrumentID,
		Field:        domain.PriceField(m.Field),
		Previous:     ToDomainReferencePrice(m.Previous),
		Updated:      ToDomainReferencePrice(m.Updated),
		Delta:        ToDomainPriceDelta(m.Delta),
		UpdatedBy:    m.UpdatedBy,
		CreatedAt:    m.CreatedAt,
	}
}
