// Package money converts between decimal currency amounts used at the API
// boundary and the integer minor units stored in the ledger.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const fractionDigits = 2

var (
	ErrTooPrecise = errors.New("amount has more than two fractional digits")
	ErrOverflow   = errors.New("amount is out of range")
)

var hundred = decimal.NewFromInt(100)

// ToMinor returns amount in minor units (paise).
func ToMinor(amount decimal.Decimal) (int64, error) {
	if !amount.Equal(amount.Truncate(fractionDigits)) {
		return 0, ErrTooPrecise
	}
	minor := amount.Mul(hundred)
	if !minor.IsInteger() || minor.Abs().GreaterThan(decimal.NewFromInt(1<<53)) {
		return 0, ErrOverflow
	}
	return minor.IntPart(), nil
}

func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -fractionDigits)
}
