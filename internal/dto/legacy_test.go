package dto_test

import (
	"testing"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSlugRoundTrip(t *testing.T) {
	kinds := map[int]domain.TransactionKind{
		0: domain.KindBuy,
		1: domain.KindSell,
		2: domain.KindGift,
		3: domain.KindRedeem,
	}

	for slug, want := range kinds {
		got, err := dto.KindFromSlug(slug)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, slug, dto.SlugFromKind(got))
	}

	_, err := dto.KindFromSlug(4)
	assert.Error(t, err)
}

func TestStatusCodeRoundTrip(t *testing.T) {
	active, err := dto.StatusFromCode(1)
	require.NoError(t, err)
	assert.Equal(t, domain.RuleActive, active)
	assert.Equal(t, 1, dto.CodeFromStatus(active))

	inactive, err := dto.StatusFromCode(0)
	require.NoError(t, err)
	assert.Equal(t, domain.RuleInactive, inactive)
	assert.Equal(t, 0, dto.CodeFromStatus(inactive))

	_, err = dto.StatusFromCode(2)
	assert.Error(t, err)
}

func TestChangeLabel(t *testing.T) {
	assert.Equal(t, "Positive Change", dto.ChangeLabel(domain.PositiveChange))
	assert.Equal(t, "Negative Change", dto.ChangeLabel(domain.NegativeChange))
	assert.Equal(t, "No Change", dto.ChangeLabel(domain.NoChange))
}

func TestCreateChargeRuleRequest_ResolveKind(t *testing.T) {
	slug := 2

	// Enum name wins when both are present.
	kind, err := dto.CreateChargeRuleRequest{Kind: "BUY", Slug: &slug}.ResolveKind()
	require.NoError(t, err)
	assert.Equal(t, domain.KindBuy, kind)

	kind, err = dto.CreateChargeRuleRequest{Slug: &slug}.ResolveKind()
	require.NoError(t, err)
	assert.Equal(t, domain.KindGift, kind)

	_, err = dto.CreateChargeRuleRequest{}.ResolveKind()
	assert.Error(t, err)

	_, err = dto.CreateChargeRuleRequest{Kind: "LEASE"}.ResolveKind()
	assert.Error(t, err)
}
