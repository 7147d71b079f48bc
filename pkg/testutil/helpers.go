// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/shopspring/decimal"
)

// Dec parses a decimal literal and panics on malformed input.
func Dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Tolerance returns the cumulative rounding tolerance for a schedule of the
// given length: one cent per month.
func Tolerance(months int) decimal.Decimal {
	return decimal.New(int64(months), -2)
}
