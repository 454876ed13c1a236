// Package format renders monetary amounts for people.
package format

import (
	"strings"

	"github.com/iwvelando/fleet-forecast/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// NotANumber is rendered for amounts that are NaN or infinite.
const NotANumber = "n/a"

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return NotANumber
	}
	return withSymbol(decimal.NewFromFloat(amount), 2)
}

// WholeCurrency is Currency for whole-unit amounts (e.g., "$57,615").
func WholeCurrency(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return NotANumber
	}
	return withSymbol(decimal.NewFromFloat(amount), 0)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if !mathutil.IsFinite(amount) {
		return NotANumber
	}
	rounded := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + group(rounded.Abs().StringFixed(2))
}

// Percent renders a percentage with two decimals (e.g., "6.80%").
func Percent(value float64) string {
	if !mathutil.IsFinite(value) {
		return NotANumber
	}
	return decimal.NewFromFloat(value).StringFixed(2) + "%"
}

func withSymbol(amount decimal.Decimal, places int32) string {
	rounded := amount.Round(places)
	formatted := group(rounded.Abs().StringFixed(places))
	if rounded.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// group inserts thousands separators into an unsigned fixed-point string.
func group(fixed string) string {
	intPart, decPart, hasDec := strings.Cut(fixed, ".")

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if !hasDec {
		return intPart
	}
	return intPart + "." + decPart
}
