// Package charges holds the pure charge-rule logic: resolving the fee bracket
// for a transaction amount and validating rule sets before they are written.
// Nothing in here performs I/O; services feed it rules fetched from the
// repository.
package charges

import (
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
)

// Resolve finds the single active rule of the given kind whose half-open
// bracket [min, max) contains amount and computes the full charge breakdown.
//
// A gap in bracket coverage fails with ErrNoMatchingRule: the transaction
// must not proceed with a guessed or zero fee. More than one match fails with
// ErrAmbiguousRule, which only happens if a rule bypassed the validator.
func Resolve(kind domain.TransactionKind, amount domain.Money, rules []domain.ChargeRule) (*domain.ChargeBreakdown, error) {
	var matched *domain.ChargeRule
	for i := range rules {
		rule := rules[i]
		if !rule.IsActive() || rule.Kind != kind {
			continue
		}
		contains, err := rule.Contains(amount)
		if err != nil {
			return nil, err
		}
		if !contains {
			continue
		}
		if matched != nil {
			return nil, fmt.Errorf("%w: rules %s and %s both cover amount %s for kind %s",
				apperrors.ErrAmbiguousRule, matched.RuleID, rule.RuleID, amount, kind)
		}
		matched = &rule
	}
	if matched == nil {
		return nil, fmt.Errorf("%w: no active bracket covers amount %s for kind %s",
			apperrors.ErrNoMatchingRule, amount, kind)
	}
	return computeBreakdown(kind, amount, *matched)
}

// computeBreakdown applies the rule's fee formula. Intermediate terms stay
// unrounded; each reported component is rounded to the currency's minor unit
// at the end, and the total is the sum of the rounded components so the
// breakdown always adds up.
func computeBreakdown(kind domain.TransactionKind, amount domain.Money, rule domain.ChargeRule) (*domain.ChargeBreakdown, error) {
	percentFee := amount.MultiplyByPercentage(rule.PercentCharge)
	baseFee, err := rule.FixedCharge.Add(percentFee)
	if err != nil {
		return nil, err
	}
	vat := baseFee.MultiplyByPercentage(rule.VATPercent)

	baseFee = baseFee.Round()
	vat = vat.Round()
	totalCharge, err := baseFee.Add(vat)
	if err != nil {
		return nil, err
	}

	var netAmount domain.Money
	if kind.ChargeAddedToAmount() {
		netAmount, err = amount.Add(totalCharge)
	} else {
		netAmount, err = amount.Subtract(totalCharge)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ChargeBreakdown{
		Rule:        rule,
		BaseFee:     baseFee,
		VAT:         vat,
		TotalCharge: totalCharge,
		NetAmount:   netAmount.Round(),
	}, nil
}
