package models

import (
	"github.com/shopspring/decimal"
)

// ChargeRule is the persistence shape of a charge rule: flat decimal columns
// plus the currency they are denominated in. Snapshots of this struct are
// also what the history table stores as JSONB.
type ChargeRule struct {
	RuleID        string          `json:"ruleID"`
	Kind          string          `json:"kind"`
	MinAmount     decimal.Decimal `json:"minAmount"`
	MaxAmount     decimal.Decimal `json:"maxAmount"`
	FixedCharge   decimal.Decimal `json:"fixedCharge"`
	PercentCharge decimal.Decimal `json:"percentCharge"`
	VATPercent    decimal.Decimal `json:"vatPercent"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        string          `json:"status"`
	AuditFields
}
