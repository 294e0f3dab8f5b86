package domain

// GoldGramInstrumentID identifies the single priced instrument the platform
// trades today: one gram of gold.
const GoldGramInstrumentID = "GOLD_GRAM"

// PriceField names one of the two operator-controlled prices on a
// ReferencePrice. Live price is feed-sourced and has no field constant; it is
// never mutated through the update engine.
type PriceField string

const (
	PlatformPriceField PriceField = "PLATFORM_PRICE"
	SellPriceField     PriceField = "SELL_PRICE"
)

// Valid reports whether f names an operator-controlled price field.
func (f PriceField) Valid() bool {
	return f == PlatformPriceField || f == SellPriceField
}

// ReferencePrice is the live/platform/sell price triple for one instrument.
//
// LivePrice is ground truth from the market feed and read-only for operators.
// PlatformPrice drives Buy/Sell math, SellPrice drives Redeem pricing; the
// two are independently settable and updating one never touches the other.
type ReferencePrice struct {
	InstrumentID  string `json:"instrumentID"`
	LivePrice     Money  `json:"livePrice"`
	PlatformPrice Money  `json:"platformPrice"`
	SellPrice     Money  `json:"sellPrice"`
	AuditFields
}

// FieldValue returns the current value of the named operator-controlled
// field.
func (p ReferencePrice) FieldValue(field PriceField) Money {
	if field == SellPriceField {
		return p.SellPrice
	}
	return p.PlatformPrice
}

// WithFieldValue returns a copy with the named field replaced.
func (p ReferencePrice) WithFieldValue(field PriceField, value Money) ReferencePrice {
	if field == SellPriceField {
		p.SellPrice = value
	} else {
		p.PlatformPrice = value
	}
	return p
}

// DeltaClassification labels the direction of a price change.
type DeltaClassification string

const (
	PositiveChange DeltaClassification = "POSITIVE"
	NegativeChange DeltaClassification = "NEGATIVE"
	NoChange       DeltaClassification = "NO_CHANGE"
)

// PriceDelta is the computed difference between an old and a new price.
//
// Classification is NoChange iff Absolute is zero; otherwise it follows the
// sign of Absolute. It is never derived from Percent: the percent can round
// to zero on a large base while the absolute change is real, and when the two
// would disagree the absolute sign wins.
//
// PercentUndefined is set when the previous price was zero and the new one is
// not, where a percent change has no mathematical value. Absolute and
// Classification stay meaningful.
type PriceDelta struct {
	Absolute         Money               `json:"absolute"` // Signed
	Percent          Percentage          `json:"percent"`  // Signed, zero when undefined
	PercentUndefined bool                `json:"percentUndefined"`
	Classification   DeltaClassification `json:"classification"`
}
