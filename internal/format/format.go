// Package format renders numeric site attributes for display. Rent amounts
// use the en-IN currency convention (rupee sign, Indian digit grouping, no
// fractional part); anything that cannot be coerced to a number renders as
// the "N/A" sentinel rather than raising.
package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NA is the display sentinel for missing or malformed values.
const NA = "N/A"

var inr = message.NewPrinter(language.MustParse("en-IN"))

// Currency formats an amount as whole-unit Indian rupees. Accepts numbers
// or numeric strings; missing and non-numeric input renders as "N/A".
func Currency(v string) string {
	f, ok := coerce(v)
	if !ok {
		return NA
	}
	return inr.Sprintf("₹%v", number.Decimal(math.Round(f), number.MaxFractionDigits(0)))
}

// Percent formats a percentage value with a trailing '%'. Non-numeric input
// renders as "N/A". Formatting is one-way: editing a formatted value
// requires StripPercent first.
func Percent(v string) string {
	f, ok := coerce(v)
	if !ok {
		return NA
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}

// StripPercent undoes Percent for edit mode, leaving the bare number.
func StripPercent(v string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
}

// Text passes a value through, substituting "N/A" when empty.
func Text(v string) string {
	if strings.TrimSpace(v) == "" {
		return NA
	}
	return v
}

func coerce(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == NA {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
