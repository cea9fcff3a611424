// Package dateutil normalizes the date shapes the sites API emits into the
// dashboard's canonical DD-MM-YYYY display form, converts display dates back
// to the wire form, and computes calendar durations between dates.
package dateutil

import (
	"fmt"
	"strings"
	"time"

	"sitedesk/internal/model"
)

const (
	// DisplayLayout is the canonical on-screen date form.
	DisplayLayout = "02-01-2006"
	// WireLayout is what the API stores and accepts.
	WireLayout = "2006-01-02"
)

// flexibleLayouts are tried in order when a value has no recognized
// separator shape. Ordered by likelihood in spreadsheet-derived data.
var flexibleLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02/01/2006",
	"20060102",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2 Jan 2006",
	"Jan 2, 2006",
}

// Display normalizes an arbitrary date string to DD-MM-YYYY. It is pure and
// total: empty, null-ish, and "N/A" inputs become "", and anything it cannot
// classify is returned unchanged rather than corrupted.
//
// Classification is by separator and which segment is 4 digits long: a
// leading 4-length segment is a year (YYYY-MM-DD, reorder), a trailing one
// means the value is already day-first (re-pad only). Slash-separated values
// are handled the same way and re-emitted with dashes.
func Display(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return ""
	}

	// Timestamps mix separators; parse them outright before classifying.
	if strings.ContainsRune(s, 'T') {
		if t, err := ParseFlexible(s); err == nil {
			return t.Format(DisplayLayout)
		}
		return s
	}

	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		switch {
		case len(parts) == 3 && len(parts[0]) == 4:
			return pad(parts[2]) + "-" + pad(parts[1]) + "-" + parts[0]
		case len(parts) == 3 && len(parts[2]) == 4:
			return pad(parts[0]) + "-" + pad(parts[1]) + "-" + parts[2]
		}
		// Unrecognized dash shape: pass through untouched.
		return s
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		switch {
		case len(parts) == 3 && len(parts[0]) == 4:
			return pad(parts[2]) + "-" + pad(parts[1]) + "-" + parts[0]
		case len(parts) == 3 && len(parts[2]) == 4:
			return pad(parts[0]) + "-" + pad(parts[1]) + "-" + parts[2]
		}
		return strings.ReplaceAll(s, "/", "-")
	}

	if t, err := ParseFlexible(s); err == nil {
		return t.Format(DisplayLayout)
	}
	return s
}

// Wire converts a display DD-MM-YYYY value to the API's YYYY-MM-DD form.
// This is the save direction only; it deliberately does not accept the
// wire form back. Values that are not three dash-separated segments are
// rejected so duration strings and free text never reach a date column.
func Wire(s string) (string, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return "", fmt.Errorf("not a display date: %q", s)
	}
	out := parts[2] + "-" + pad(parts[1]) + "-" + pad(parts[0])
	if _, err := time.Parse(WireLayout, out); err != nil {
		return "", fmt.Errorf("not a display date: %q", s)
	}
	return out, nil
}

// ParseFlexible parses a date string against the common layouts found in
// spreadsheet-derived data.
func ParseFlexible(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}

// Between computes the calendar offset from the earlier to the later of the
// two dates, such that adding the result to the earlier date lands exactly
// on the later one. Month arithmetic clamps to month ends (Jan 31 plus one
// month is Feb 28), which is what makes the day component come out right
// across short months.
func Between(a, b time.Time) model.Duration {
	a = truncate(a)
	b = truncate(b)
	if b.Before(a) {
		a, b = b, a
	}

	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if addMonths(a, months).After(b) {
		months--
	}
	anchor := addMonths(a, months)
	days := int(b.Sub(anchor).Hours() / 24)

	return model.Duration{Years: months / 12, Months: months % 12, Days: days}
}

// BetweenDisplay is Between over display-form date strings. The zero
// Duration and false are returned when either input does not parse; callers
// leave the previous value in place in that case.
func BetweenDisplay(a, b string) (model.Duration, bool) {
	at, err := ParseFlexible(Display(a))
	if err != nil {
		return model.Duration{}, false
	}
	bt, err := ParseFlexible(Display(b))
	if err != nil {
		return model.Duration{}, false
	}
	return Between(at, bt), true
}

// AddYears shifts a display-form date by n calendar years, clamping Feb 29
// to Feb 28 on non-leap targets. Used to derive the agreement expiry from
// the agreement date and lease period.
func AddYears(display string, n int) (string, error) {
	t, err := ParseFlexible(Display(display))
	if err != nil {
		return "", err
	}
	return addMonths(t, n*12).Format(DisplayLayout), nil
}

// addMonths adds n months with the day-of-month clamped to the target
// month's length instead of Go's AddDate overflow normalization.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	m += time.Month(n)
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
