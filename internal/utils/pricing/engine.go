// Package pricing holds the pure price-update math: applying an absolute or
// percent-relative change to a reference price and computing the resulting
// delta and its classification. The engine never touches a ReferencePrice
// field itself; callers apply it once per field they intend to change.
package pricing

import (
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateMode selects how a requested price change is expressed.
type UpdateMode string

const (
	// AbsoluteMode replaces the price with a new value outright.
	AbsoluteMode UpdateMode = "ABSOLUTE"
	// RelativePercentMode moves the price by a signed percentage of itself.
	RelativePercentMode UpdateMode = "RELATIVE_PERCENT"
)

// Valid reports whether m is a known update mode.
func (m UpdateMode) Valid() bool {
	return m == AbsoluteMode || m == RelativePercentMode
}

// UpdateRequest is one requested change to one price field. NewValue is read
// in AbsoluteMode, Percent in RelativePercentMode.
type UpdateRequest struct {
	Mode     UpdateMode
	NewValue domain.Money
	Percent  domain.Percentage
}

// Result is the outcome of applying an update: the new price and the delta
// against the previous one.
type Result struct {
	NewPrice domain.Money
	Delta    domain.PriceDelta
}

// Apply computes the new price for the request and the delta against
// current. The original price is untouched on error: a change that would
// drive the price negative fails with ErrInvalidPrice.
func Apply(current domain.Money, req UpdateRequest) (*Result, error) {
	switch req.Mode {
	case AbsoluteMode:
		return ApplyAbsolute(current, req.NewValue)
	case RelativePercentMode:
		return ApplyRelative(current, req.Percent)
	default:
		return nil, fmt.Errorf("%w: unknown update mode %q", apperrors.ErrValidation, req.Mode)
	}
}

// ApplyAbsolute replaces current with newValue.
func ApplyAbsolute(current, newValue domain.Money) (*Result, error) {
	if newValue.IsNegative() {
		return nil, fmt.Errorf("%w: price %s is negative", apperrors.ErrInvalidPrice, newValue)
	}
	if newValue.CurrencyCode != current.CurrencyCode {
		return nil, fmt.Errorf("%w: price currency %s, update currency %s",
			apperrors.ErrCurrencyMismatch, current.CurrencyCode, newValue.CurrencyCode)
	}
	newPrice := newValue.Round()
	delta, err := ComputeDelta(current, newPrice)
	if err != nil {
		return nil, err
	}
	return &Result{NewPrice: newPrice, Delta: delta}, nil
}

// ApplyRelative moves current by pct percent of itself. pct may be negative
// to decrease; the result must still be non-negative.
func ApplyRelative(current domain.Money, pct domain.Percentage) (*Result, error) {
	change := current.MultiplyByPercentage(pct)
	newPrice, err := current.Add(change)
	if err != nil {
		return nil, err
	}
	newPrice = newPrice.Round()
	if newPrice.IsNegative() {
		return nil, fmt.Errorf("%w: %s%% of %s drives price below zero", apperrors.ErrInvalidPrice, pct, current)
	}
	delta, err := ComputeDelta(current, newPrice)
	if err != nil {
		return nil, err
	}
	return &Result{NewPrice: newPrice, Delta: delta}, nil
}

// ComputeDelta returns the signed absolute and percentage difference between
// two prices and its classification.
//
// Classification follows the sign of the absolute difference alone. The
// percentage is rounded for display and can reach zero on a very large base
// while the absolute change is real; the absolute sign stays authoritative.
// When current is zero and the new price is not, the percentage is
// mathematically undefined and reported via PercentUndefined instead of a
// division by zero.
func ComputeDelta(current, newPrice domain.Money) (domain.PriceDelta, error) {
	absolute, err := newPrice.Subtract(current)
	if err != nil {
		return domain.PriceDelta{}, err
	}

	delta := domain.PriceDelta{
		Absolute:       absolute,
		Percent:        domain.ZeroPercentage(),
		Classification: classify(absolute),
	}

	if current.IsZero() {
		delta.PercentUndefined = !absolute.IsZero()
		return delta, nil
	}

	ratio := absolute.Amount.Div(current.Amount).Mul(decimal.NewFromInt(100))
	delta.Percent = domain.NewPercentage(ratio).Round()
	return delta, nil
}

func classify(absolute domain.Money) domain.DeltaClassification {
	switch {
	case absolute.IsZero():
		return domain.NoChange
	case absolute.IsNegative():
		return domain.NegativeChange
	default:
		return domain.PositiveChange
	}
}
