package charges

import (
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundredPercent = domain.NewPercentage(decimal.NewFromInt(100))

// Validate checks a candidate rule's structural invariants against the active
// rules of the same kind. It accumulates every violation instead of failing
// fast; a form needs the full list to highlight each offending field at once.
// A nil return means the candidate is acceptable.
//
// existingActive must be the active rules of the candidate's kind; the
// candidate's own prior version (same RuleID) is skipped so editing a rule
// does not collide with itself. The overlap check only runs when the
// candidate is active: inactive rules never compete for a match and may
// overlap freely, but flipping a rule back to active re-runs the check here
// against the full active set.
func Validate(candidate domain.ChargeRule, existingActive []domain.ChargeRule) apperrors.ValidationErrors {
	var violations apperrors.ValidationErrors

	if !candidate.Kind.Valid() {
		violations = append(violations, apperrors.FieldViolation{
			Field: "kind", Message: fmt.Sprintf("unknown transaction kind %q", candidate.Kind),
		})
	}
	if candidate.MinAmount.IsNegative() {
		violations = append(violations, apperrors.FieldViolation{
			Field: "minAmount", Message: "must not be negative",
		})
	}
	cmp, err := candidate.MinAmount.Compare(candidate.MaxAmount)
	if err != nil {
		violations = append(violations, apperrors.FieldViolation{
			Field: "maxAmount", Message: "currency must match minAmount",
		})
	} else if cmp >= 0 {
		violations = append(violations, apperrors.FieldViolation{
			Field: "maxAmount", Message: "must be strictly greater than minAmount",
		})
	}
	if candidate.FixedCharge.IsNegative() {
		violations = append(violations, apperrors.FieldViolation{
			Field: "fixedCharge", Message: "must not be negative",
		})
	}
	if candidate.PercentCharge.IsNegative() {
		violations = append(violations, apperrors.FieldViolation{
			Field: "percentCharge", Message: "must not be negative",
		})
	} else if candidate.PercentCharge.GreaterThan(hundredPercent) {
		violations = append(violations, apperrors.FieldViolation{
			Field: "percentCharge", Message: "must not exceed 100",
		})
	}
	if candidate.VATPercent.IsNegative() {
		violations = append(violations, apperrors.FieldViolation{
			Field: "vatPercent", Message: "must not be negative",
		})
	} else if candidate.VATPercent.GreaterThan(hundredPercent) {
		violations = append(violations, apperrors.FieldViolation{
			Field: "vatPercent", Message: "must not exceed 100",
		})
	}

	if candidate.IsActive() {
		violations = append(violations, overlapViolations(candidate, existingActive)...)
	}

	return violations
}

func overlapViolations(candidate domain.ChargeRule, existingActive []domain.ChargeRule) apperrors.ValidationErrors {
	var violations apperrors.ValidationErrors
	for _, existing := range existingActive {
		if existing.RuleID == candidate.RuleID {
			continue
		}
		overlaps, err := candidate.Overlaps(existing)
		if err != nil {
			// Mixed currencies in one rule set; reported once per offender.
			violations = append(violations, apperrors.FieldViolation{
				Field: "minAmount", Message: fmt.Sprintf("currency differs from rule %s", existing.RuleID),
			})
			continue
		}
		if overlaps {
			violations = append(violations, apperrors.FieldViolation{
				Field: "minAmount",
				Message: fmt.Sprintf("bracket [%s, %s) overlaps active rule %s [%s, %s)",
					candidate.MinAmount, candidate.MaxAmount,
					existing.RuleID, existing.MinAmount, existing.MaxAmount),
			})
		}
	}
	return violations
}
