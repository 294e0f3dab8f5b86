package models

import (
	"github.com/shopspring/decimal"
)

// ReferencePrice is the persistence shape of an instrument's price triple.
type ReferencePrice struct {
	InstrumentID  string          `json:"instrumentID"`
	LivePrice     decimal.Decimal `json:"livePrice"`
	PlatformPrice decimal.Decimal `json:"platformPrice"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	CurrencyCode  string          `json:"currencyCode"`
	AuditFields
}
