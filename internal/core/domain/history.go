package domain

import "time"

// ChargeRuleChange is one append-only audit row for a charge rule mutation.
// Previous and Updated carry the full field set, not just what changed, so a
// reviewer sees complete before/after context. Records are immutable once
// created; display order is CreatedAt descending.
type ChargeRuleChange struct {
	ChangeID  string     `json:"changeID"`
	RuleID    string     `json:"ruleID"`
	Previous  ChargeRule `json:"previous"` // Zero value for a creation
	Updated   ChargeRule `json:"updated"`
	UpdatedBy string     `json:"updatedBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PriceChange is one append-only audit row for a platform or sell price
// update, including the computed delta the dashboard renders.
type PriceChange struct {
	ChangeID     string         `json:"changeID"`
	InstrumentID string         `json:"instrumentID"`
	Field        PriceField     `json:"field"`
	Previous     ReferencePrice `json:"previous"`
	Updated      ReferencePrice `json:"updated"`
	Delta        PriceDelta     `json:"delta"`
	UpdatedBy    string         `json:"updatedBy"`
	CreatedAt    time.Time      `json:"createdAt"`
}
