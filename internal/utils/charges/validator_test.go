package charges_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/utils/charges"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsWellFormedRule(t *testing.T) {
	candidate := rule("new", domain.KindBuy, "0", "100", "1.00", "1.5", "2.5", domain.RuleActive)
	violations := charges.Validate(candidate, nil)
	assert.Empty(t, violations)
}

func TestValidate_AccumulatesEveryViolation(t *testing.T) {
	candidate := domain.ChargeRule{
		RuleID:        "bad",
		Kind:          domain.TransactionKind("LEASE"),
		MinAmount:     ngn("-5"),
		MaxAmount:     ngn("-10"),
		FixedCharge:   ngn("-1"),
		PercentCharge: pct("150"),
		VATPercent:    pct("-2"),
		Status:        domain.RuleActive,
	}

	violations := charges.Validate(candidate, nil)
	require.NotEmpty(t, violations)

	// One violation per offending field, all reported at once.
	for _, field := range []string{"kind", "minAmount", "maxAmount", "fixedCharge", "percentCharge", "vatPercent"} {
		assert.True(t, violations.HasField(field), "expected violation for %s, got %v", field, violations)
	}
}

func TestValidate_RejectsEmptyBracket(t *testing.T) {
	// min == max is an empty half-open interval.
	candidate := rule("empty", domain.KindBuy, "100", "100", "0", "0", "0", domain.RuleActive)
	violations := charges.Validate(candidate, nil)
	assert.True(t, violations.HasField("maxAmount"))
}

func TestValidate_OverlapAgainstActiveSet(t *testing.T) {
	existing := []domain.ChargeRule{
		rule("existing", domain.KindBuy, "0", "100", "0", "1", "0", domain.RuleActive),
	}

	// Overlapping bracket rejected.
	violations := charges.Validate(rule("new", domain.KindBuy, "50", "150", "0", "1", "0", domain.RuleActive), existing)
	require.NotEmpty(t, violations)
	assert.True(t, violations.HasField("minAmount"))

	// Touching bracket accepted.
	violations = charges.Validate(rule("new", domain.KindBuy, "100", "150", "0", "1", "0", domain.RuleActive), existing)
	assert.Empty(t, violations)
}

func TestValidate_InactiveCandidateSkipsOverlapCheck(t *testing.T) {
	existing := []domain.ChargeRule{
		rule("existing", domain.KindBuy, "0", "100", "0", "1", "0", domain.RuleActive),
	}

	candidate := rule("new", domain.KindBuy, "0", "100", "0", "1", "0", domain.RuleInactive)
	violations := charges.Validate(candidate, existing)
	assert.Empty(t, violations)
}

func TestValidate_EditingRuleSkipsItself(t *testing.T) {
	existing := []domain.ChargeRule{
		rule("self", domain.KindBuy, "0", "100", "0", "1", "0", domain.RuleActive),
	}

	// An unchanged rule re-validated against a set containing its own prior
	// version must not collide with itself.
	candidate := rule("self", domain.KindBuy, "0", "100", "0", "1.5", "0", domain.RuleActive)
	violations := charges.Validate(candidate, existing)
	assert.Empty(t, violations)
}

func TestValidate_IsIdempotent(t *testing.T) {
	candidate := rule("new", domain.KindBuy, "50", "150", "0", "1", "0", domain.RuleActive)
	existing := []domain.ChargeRule{
		rule("existing", domain.KindBuy, "0", "100", "0", "1", "0", domain.RuleActive),
	}

	first := charges.Validate(candidate, existing)
	second := charges.Validate(candidate, existing)
	assert.Equal(t, first, second)
}

// Randomized check: a contiguous set of touching brackets resolves exactly
// one rule for every amount inside the covered range.
func TestResolve_ContiguousBracketsCoverEveryAmount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		var rules []domain.ChargeRule
		lower := decimal.Zero
		for i := 0; i < 5; i++ {
			width := decimal.NewFromInt(int64(rng.Intn(500) + 1))
			upper := lower.Add(width)
			rules = append(rules, rule(
				fmt.Sprintf("r%d", i), domain.KindBuy,
				lower.String(), upper.String(),
				"0", "1", "0", domain.RuleActive,
			))
			lower = upper
		}

		// Every candidate pair must be disjoint.
		for _, r := range rules {
			violations := charges.Validate(r, rules)
			assert.Empty(t, violations)
		}

		// Any amount below the overall max resolves exactly one bracket.
		ceiling := lower.IntPart()
		for sample := 0; sample < 50; sample++ {
			amount := decimal.NewFromFloat(rng.Float64() * float64(ceiling)).Round(2)
			if amount.GreaterThanOrEqual(lower) {
				continue
			}
			_, err := charges.Resolve(domain.KindBuy, domain.NewMoney(amount, "NGN"), rules)
			assert.NoError(t, err, "amount %s fell in a gap", amount)
		}
	}
}
