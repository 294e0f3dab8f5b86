package domain

// TransactionKind is the closed set of gold transaction types a charge rule
// can apply to.
type TransactionKind string

const (
	KindBuy    TransactionKind = "BUY"
	KindSell   TransactionKind = "SELL"
	KindGift   TransactionKind = "GIFT"
	KindRedeem TransactionKind = "REDEEM"
)

// Valid reports whether k is one of the known transaction kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindBuy, KindSell, KindGift, KindRedeem:
		return true
	}
	return false
}

// ChargeAddedToAmount reports the direction of the charge for this kind:
// a Buy pays the charge on top of the amount, every other kind has the charge
// deducted from proceeds. The direction is a property of the kind, not of the
// rule.
func (k TransactionKind) ChargeAddedToAmount() bool {
	return k == KindBuy
}

// RuleStatus is the lifecycle state of a charge rule. Rules are never
// physically deleted; disabling is the deletion mechanism.
type RuleStatus string

const (
	RuleActive   RuleStatus = "ACTIVE"
	RuleInactive RuleStatus = "INACTIVE"
)

// Valid reports whether s is a known rule status.
func (s RuleStatus) Valid() bool {
	return s == RuleActive || s == RuleInactive
}

// ChargeRule is one fee bracket for one transaction kind: amounts in
// [MinAmount, MaxAmount) pay FixedCharge plus PercentCharge of the amount,
// plus VAT on that fee total.
//
// Active rules of the same kind must not overlap; the validator enforces
// this, not the entity.
type ChargeRule struct {
	RuleID        string          `json:"ruleID"` // Primary key (UUID), immutable
	Kind          TransactionKind `json:"kind"`
	MinAmount     Money           `json:"minAmount"` // Inclusive lower bound
	MaxAmount     Money           `json:"maxAmount"` // Exclusive upper bound
	FixedCharge   Money           `json:"fixedCharge"`
	PercentCharge Percentage      `json:"percentCharge"`
	VATPercent    Percentage      `json:"vatPercent"` // Applied to fixed+percent fee, not the amount
	Status        RuleStatus      `json:"status"`
	AuditFields
}

// IsActive reports whether the rule participates in resolution.
func (r ChargeRule) IsActive() bool {
	return r.Status == RuleActive
}

// Contains reports whether amount falls in the rule's half-open bracket.
// Fails with a currency mismatch if the amount and bounds differ in currency.
func (r ChargeRule) Contains(amount Money) (bool, error) {
	cmpMin, err := amount.Compare(r.MinAmount)
	if err != nil {
		return false, err
	}
	cmpMax, err := amount.Compare(r.MaxAmount)
	if err != nil {
		return false, err
	}
	return cmpMin >= 0 && cmpMax < 0, nil
}

// Overlaps reports whether two half-open brackets intersect. Touching
// boundaries (one rule's MaxAmount equals the other's MinAmount) do not
// overlap.
func (r ChargeRule) Overlaps(other ChargeRule) (bool, error) {
	aBelowD, err := r.MinAmount.Compare(other.MaxAmount)
	if err != nil {
		return false, err
	}
	cBelowB, err := other.MinAmount.Compare(r.MaxAmount)
	if err != nil {
		return false, err
	}
	return aBelowD < 0 && cBelowB < 0, nil
}

// ChargeBreakdown is the result of resolving a charge: the matched rule and
// every computed component, each rounded to the currency's minor unit.
type ChargeBreakdown struct {
	Rule        ChargeRule `json:"rule"`
	BaseFee     Money      `json:"baseFee"`     // Fixed + percent-of-amount
	VAT         Money      `json:"vat"`         // VATPercent of BaseFee
	TotalCharge Money      `json:"totalCharge"` // BaseFee + VAT
	NetAmount   Money      `json:"netAmount"`   // Amount +/- TotalCharge per kind direction
}
