package mapping_test

import (
	"testing"
	"time"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeRuleChange_CreationPreviousBecomesNull(t *testing.T) {
	change := domain.ChargeRuleChange{
		ChangeID: "change-1",
		RuleID:   "rule-1",
		Previous: domain.ChargeRule{}, // creation
		Updated: domain.ChargeRule{
			RuleID:    "rule-1",
			Kind:      domain.KindBuy,
			MinAmount: domain.NewMoney(decimal.Zero, "NGN"),
			MaxAmount: domain.NewMoney(decimal.NewFromInt(100), "NGN"),
			Status:    domain.RuleActive,
		},
		UpdatedBy: "user-1",
		CreatedAt: time.Now().UTC(),
	}

	m := mapping.ToModelChargeRuleChange(change)
	require.Nil(t, m.Previous, "creation snapshot must store NULL")

	back := mapping.ToDomainChargeRuleChange(m)
	assert.Empty(t, back.Previous.RuleID)
	assert.Equal(t, change.Updated.RuleID, back.Updated.RuleID)
	assert.Equal(t, change.UpdatedBy, back.UpdatedBy)
}

func TestChargeRuleChange_UpdatePreservesBothSnapshots(t *testing.T) {
	previous := domain.ChargeRule{
		RuleID:    "rule-1",
		Kind:      domain.KindSell,
		MinAmount: domain.NewMoney(decimal.Zero, "NGN"),
		MaxAmount: domain.NewMoney(decimal.NewFromInt(100), "NGN"),
		Status:    domain.RuleActive,
	}
	updated := previous
	updated.MaxAmount = domain.NewMoney(decimal.NewFromInt(200), "NGN")

	change := domain.ChargeRuleChange{
		ChangeID:  "change-1",
		RuleID:    "rule-1",
		Previous:  previous,
		Updated:   updated,
		UpdatedBy: "user-1",
		CreatedAt: time.Now().UTC(),
	}

	m := mapping.ToModelChargeRuleChange(change)
	require.NotNil(t, m.Previous)

	back := mapping.ToDomainChargeRuleChange(m)
	assert.True(t, back.Previous.MaxAmount.Equal(previous.MaxAmount))
	assert.True(t, back.Updated.MaxAmount.Equal(updated.MaxAmount))
}

func TestPriceDelta_CurrencySurvivesMapping(t *testing.T) {
	delta := domain.PriceDelta{
		Absolute:         domain.NewMoney(decimal.NewFromInt(-10), "NGN"),
		Percent:          domain.NewPercentage(decimal.RequireFromString("-9.0909")),
		Classification:   domain.NegativeChange,
		PercentUndefined: false,
	}

	back := mapping.ToDomainPriceDelta(mapping.ToModelPriceDelta(delta))
	assert.True(t, back.Absolute.Equal(delta.Absolute))
	assert.True(t, back.Percent.Equal(delta.Percent))
	assert.Equal(t, delta.Classification, back.Classification)
}
