// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	hundred   = decimal.NewFromInt(constants.PercentageMultiplier)
	tolerance = decimal.NewFromFloat(constants.CurrencyTolerance)
)

// RoundCents rounds a value to two decimals, i.e. to represent real currency.
// Halves are rounded away from zero.
func RoundCents(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyPlaces)
}

// PercentOf returns percent % of amount, unrounded.
func PercentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// IsZero checks if a value is effectively zero (within one cent)
func IsZero(val decimal.Decimal) bool {
	return val.Abs().LessThanOrEqual(tolerance)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tol decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tol)
}

// Sum adds up a list of values.
func Sum(vals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(v)
	}
	return total
}
