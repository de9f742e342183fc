// Package money holds the arithmetic and formatting helpers for monetary
// amounts. All amounts are exact decimals, no floating point is involved.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Places is the number of fractional digits stored for an amount.
const Places = 2

// RatioPlaces is the precision of a usage ratio before it is scaled to percent.
const RatioPlaces = 4

var hundred = decimal.NewFromInt(100)

var printer = message.NewPrinter(language.AmericanEnglish)

// Normalize rounds an amount half-up to the stored precision.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// FromCents converts an integer number of cents to an amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -Places)
}

// Ratio returns part / whole rounded half-up to four decimal places.
//
// A zero whole yields a zero ratio.
func Ratio(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.DivRound(whole, RatioPlaces)
}

// Percent returns the ratio of part to whole scaled to percent.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return Ratio(part, whole).Mul(hundred)
}

// Format renders an amount as US currency, e.g. $1,234.50 or -$5.00.
func Format(d decimal.Decimal) string {
	sign := ""
	if d.Round(Places).IsNegative() {
		sign = "-"
	}

	fixed := d.Abs().StringFixed(Places)
	cents := fixed[len(fixed)-Places:]

	return sign + "$" + printer.Sprintf("%d", d.Abs().Round(Places).IntPart()) + "." + cents
}
