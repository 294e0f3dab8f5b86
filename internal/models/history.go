package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeRuleChange is the persistence shape of one rule audit row. The
// snapshots land in JSONB columns; Previous is nil for a creation record.
type ChargeRuleChange struct {
	ChangeID  string      `json:"changeID"`
	RuleID    string      `json:"ruleID"`
	Previous  *ChargeRule `json:"previous"`
	Updated   ChargeRule  `json:"updated"`
	UpdatedBy string      `json:"updatedBy"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PriceDelta is the persistence shape of a computed price delta.
type PriceDelta struct {
	Absolute         decimal.Decimal `json:"absolute"`
	Percent          decimal.Decimal `json:"percent"`
	PercentUndefined bool            `json:"percentUndefined"`
	Classification   string          `json:"classification"`
	CurrencyCode     string          `json:"currencyCode"`
}

// PriceChange is the persistence shape of one price audit row.
type PriceChange struct {
	ChangeID     string         `json:"changeID"`
	InstrumentID string         `json:"instrumentID"`
	Field        string         `json:"field"`
	Previous     ReferencePrice `json:"previous"`
	Updated      ReferencePrice `json:"updated"`
	Delta        PriceDelta     `json:"delta"`
	UpdatedBy    string         `json:"updatedBy"`
	CreatedAt    time.Time      `json:"createdAt"`
}
