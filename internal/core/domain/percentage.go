package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percentage is a currency-less decimal scalar, e.g. 1.2345 for 1.2345%.
// It survives at least four decimal places and may be negative (relative
// price decreases).
type Percentage struct {
	value decimal.Decimal
}

// NewPercentage wraps a precise decimal as a Percentage.
func NewPercentage(value decimal.Decimal) Percentage {
	return Percentage{value: value}
}

// PercentageFromString parses a decimal string, e.g. "1.2345".
func PercentageFromString(value string) (Percentage, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Percentage{}, fmt.Errorf("invalid percentage %q: %w", value, err)
	}
	return Percentage{value: d}, nil
}

// ZeroPercentage returns 0%.
func ZeroPercentage() Percentage {
	return Percentage{value: decimal.Zero}
}

// Decimal returns the underlying decimal value.
func (p Percentage) Decimal() decimal.Decimal {
	return p.value
}

// IsNegative reports whether the percentage is below zero.
func (p Percentage) IsNegative() bool {
	return p.value.IsNegative()
}

// IsZero reports whether the percentage is exactly zero.
func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// GreaterThan reports whether p > other.
func (p Percentage) GreaterThan(other Percentage) bool {
	return p.value.GreaterThan(other.value)
}

// Equal reports whether p == other.
func (p Percentage) Equal(other Percentage) bool {
	return p.value.Equal(other.value)
}

// Round rounds to four decimal places, the display precision the dashboard
// uses for percentages.
func (p Percentage) Round() Percentage {
	return Percentage{value: p.value.Round(4)}
}

func (p Percentage) String() string {
	return p.value.String()
}

// MarshalJSON renders the percentage as a JSON number string, matching
// decimal's own encoding.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON accepts both numbers and numeric strings.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	return p.value.UnmarshalJSON(data)
}
