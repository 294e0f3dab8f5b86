// Package audit builds the immutable history records that accompany every
// accepted charge-rule or reference-price mutation. Construction only: the
// services decide when to record, the repository decides how to store and
// order.
package audit

import (
	"time"

	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/google/uuid"
)

// NewChargeRuleChange builds the audit record for one rule mutation. Both
// snapshots carry the full field set; for a creation, previous is the zero
// value.
func NewChargeRuleChange(previous, updated domain.ChargeRule, actorID string, now time.Time) domain.ChargeRuleChange {
	return domain.ChargeRuleChange{
		ChangeID:  uuid.NewString(),
		RuleID:    updated.RuleID,
		Previous:  previous,
		Updated:   updated,
		UpdatedBy: actorID,
		CreatedAt: now,
	}
}

// NewPriceChange builds the audit record for one platform or sell price
// update, attaching the delta computed by the pricing engine.
func NewPriceChange(field domain.PriceField, previous, updated domain.ReferencePrice, delta domain.PriceDelta, actorID string, now time.Time) domain.PriceChange {
	return domain.PriceChange{
		ChangeID:     uuid.NewString(),
		InstrumentID: updated.InstrumentID,
		Field:        field,
		Previous:     previous,
		Updated:      updated,
		Delta:        delta,
		UpdatedBy:    actorID,
		CreatedAt:    now,
	}
}
