package domain

import (
	"fmt"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// minorUnits maps ISO currency codes to their minor-unit exponent. Codes not
// listed use the common 2-decimal exponent.
var minorUnits = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"XAF": 0,
	"XOF": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
	"TND": 3,
}

// Money is an immutable decimal amount tagged with a currency. All fee and
// price math goes through this type; raw floats never reach the core.
//
// Arithmetic between two Money values of different currencies fails with
// apperrors.ErrCurrencyMismatch. Negative amounts are representable (price
// deltas are signed); constructors for rule fields reject them at the
// validation layer instead.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// NewMoney creates a Money value from a precise decimal amount.
func NewMoney(amount decimal.Decimal, currencyCode string) Money {
	return Money{Amount: amount, CurrencyCode: currencyCode}
}

// MoneyFromString parses a decimal string into Money. The backend delivers
// amounts as strings or numbers; both funnel through here at the boundary.
func MoneyFromString(amount, currencyCode string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", amount, err)
	}
	return Money{Amount: d, CurrencyCode: currencyCode}, nil
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currencyCode string) Money {
	return Money{Amount: decimal.Zero, CurrencyCode: currencyCode}
}

// Exponent returns the minor-unit exponent for the Money's currency.
func (m Money) Exponent() int32 {
	if exp, ok := minorUnits[m.CurrencyCode]; ok {
		return exp
	}
	return 2
}

func (m Money) checkCurrency(other Money) error {
	if m.CurrencyCode != other.CurrencyCode {
		return fmt.Errorf("%w: %s vs %s", apperrors.ErrCurrencyMismatch, m.CurrencyCode, other.CurrencyCode)
	}
	return nil
}

// Add returns m + other. Fails on differing currencies.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Add(other.Amount), CurrencyCode: m.CurrencyCode}, nil
}

// Subtract returns m - other. Fails on differing currencies.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Sub(other.Amount), CurrencyCode: m.CurrencyCode}, nil
}

// MultiplyByPercentage returns amount * (percent / 100) without rounding.
// Rounding happens once at the end of a calculation chain via Round, never on
// intermediate terms, so repeated charges don't accumulate drift.
func (m Money) MultiplyByPercentage(p Percentage) Money {
	factor := p.Decimal().Div(decimal.NewFromInt(100))
	return Money{Amount: m.Amount.Mul(factor), CurrencyCode: m.CurrencyCode}
}

// Round rounds the amount to the currency's minor-unit exponent using
// round-half-up.
func (m Money) Round() Money {
	return Money{Amount: m.Amount.Round(m.Exponent()), CurrencyCode: m.CurrencyCode}
}

// Compare returns -1, 0 or 1. Fails on differing currencies.
func (m Money) Compare(other Money) (int, error) {
	if err := m.checkCurrency(other); err != nil {
		return 0, err
	}
	return m.Amount.Cmp(other.Amount), nil
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg(), CurrencyCode: m.CurrencyCode}
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.CurrencyCode == other.CurrencyCode && m.Amount.Equal(other.Amount)
}

// Display renders the amount with a fixed number of decimals for UI use,
// e.g. Display(2) -> "1234.50".
func (m Money) Display(decimals int32) string {
	return m.Amount.StringFixed(decimals)
}

func (m Money) String() string {
	return m.Amount.StringFixed(m.Exponent()) + " " + m.CurrencyCode
}
