package audit_test

import (
	"testing"
	"time"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/utils/audit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewChargeRuleChange(t *testing.T) {
	now := time.Now()
	updated := domain.ChargeRule{
		RuleID: "rule-1",
		Kind:   domain.KindBuy,
		Status: domain.RuleActive,
	}
	previous := updated
	previous.Status = domain.RuleInactive

	change := audit.NewChargeRuleChange(previous, updated, "user-1", now)

	assert.NotEmpty(t, change.ChangeID)
	assert.Equal(t, "rule-1", change.RuleID)
	assert.Equal(t, previous, change.Previous)
	assert.Equal(t, updated, change.Updated)
	assert.Equal(t, "user-1", change.UpdatedBy)
	assert.Equal(t, now, change.CreatedAt)

	// A creation carries the zero value as its previous snapshot.
	creation := audit.NewChargeRuleChange(domain.ChargeRule{}, updated, "user-1", now)
	assert.Empty(t, creation.Previous.RuleID)

	// Each record gets its own identity.
	assert.NotEqual(t, change.ChangeID, creation.ChangeID)
}

func TestNewPriceChange(t *testing.T) {
	now := time.Now()
	previous := domain.ReferencePrice{
		InstrumentID:  domain.GoldGramInstrumentID,
		PlatformPrice: domain.NewMoney(decimal.NewFromInt(100), "NGN"),
	}
	updated := previous
	updated.PlatformPrice = domain.NewMoney(decimal.NewFromInt(110), "NGN")
	delta := domain.PriceDelta{
		Absolute:       domain.NewMoney(decimal.NewFromInt(10), "NGN"),
		Classification: domain.PositiveChange,
	}

	change := audit.NewPriceChange(domain.PlatformPriceField, previous, updated, delta, "user-1", now)

	assert.NotEmpty(t, change.ChangeID)
	assert.Equal(t, domain.GoldGramInstrumentID, change.InstrumentID)
	assert.Equal(t, domain.PlatformPriceField, change.Field)
	assert.Equal(t, previous, change.Previous)
	assert.Equal(t, updated, change.Updated)
	assert.Equal(t, delta, change.Delta)
	assert.Equal(t, "user-1", change.UpdatedBy)
}
