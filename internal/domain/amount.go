package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a fixed-point monetary value with exactly 4 decimal places,
// stored as the value scaled by 10,000. All arithmetic happens on the
// scaled integer; decimal conversion happens only at the parse/format
// boundary. Additions and subtractions that would leave the int64 range
// fail with ErrOverflow, and the processor rejects the transaction that
// caused them.
type Amount int64

const amountPlaces = 4

// ParseAmount converts a decimal string into an Amount. It fails on
// malformed input, on more than 4 decimal places, and on values outside
// the representable range.
func ParseAmount(raw string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}

	scaled := d.Shift(amountPlaces)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", raw, amountPlaces)
	}

	units := scaled.BigInt()
	if !units.IsInt64() {
		return 0, fmt.Errorf("amount %q: %w", raw, ErrOverflow)
	}

	return Amount(units.Int64()), nil
}

// AmountFromUnits builds an Amount directly from scaled units
// (1 unit = 0.0001).
func AmountFromUnits(units int64) Amount {
	return Amount(units)
}

func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

func (a Amount) Sub(b Amount) (Amount, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, ErrOverflow
	}
	return diff, nil
}

func (a Amount) IsPositive() bool {
	return a > 0
}

func (a Amount) IsNegative() bool {
	return a < 0
}

// Decimal returns the boundary representation used for display and JSON.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -amountPlaces)
}

// String renders the amount with exactly 4 decimal places.
func (a Amount) String() string {
	return a.Decimal().StringFixed(amountPlaces)
}
