package mapping

import (
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/models"
)

// ToModelReferencePrice converts a domain ReferencePrice to its persistence
// shape.
func ToModelReferencePrice(d domain.ReferencePrice) models.ReferencePrice {
	return models.ReferencePrice{
		InstrumentID:  d.InstrumentID,
		LivePrice:     d.LivePrice.Amount,
		PlatformPrice: d.PlatformPrice.Amount,
		SellPrice:     d.SellPrice.Amount,
		CurrencyCode:  d.PlatformPrice.CurrencyCode,
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

// ToDomainReferencePrice converts a persisted ReferencePrice back to the
// domain shape.
func ToDomainReferencePrice(m models.ReferencePrice) domain.ReferencePrice {
	return domain.ReferencePrice{
		InstrumentID:  m.InstrumentID,
		LivePrice:     domain.NewMoney(m.LivePrice, m.CurrencyCode),
		PlatformPrice: domain.NewMoney(m.PlatformPrice, m.CurrencyCode),
		SellPrice:     domain.NewMoney(m.SellPrice, m.CurrencyCode),
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}
