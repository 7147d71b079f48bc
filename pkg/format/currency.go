// Package format renders money amounts for display.
package format

import (
	"strings"

	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := formatPositiveCurrency(amount.Abs())
	if amount.Round(constants.CurrencyPlaces).IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.Round(constants.CurrencyPlaces).IsNegative() {
		sign = "-"
	}
	return sign + formatPositiveCurrency(amount.Abs())
}

// Percent renders a whole percentage such as an effective rate.
func Percent(rate int) string {
	return printer.Sprintf("%d%%", rate)
}

// formatPositiveCurrency groups the integer part as an int64 so amounts
// never pass through float64.
func formatPositiveCurrency(value decimal.Decimal) string {
	fixed := value.StringFixed(constants.CurrencyPlaces)
	intPart, decPart, _ := strings.Cut(fixed, ".")

	whole, err := decimal.NewFromString(intPart)
	if err != nil {
		return fixed
	}
	return printer.Sprintf("%d", whole.IntPart()) + "." + decPart
}
