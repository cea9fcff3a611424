package model

import "fmt"

// Duration is a calendar offset between two dates. It stays structured
// until the presentation boundary; nothing downstream parses the formatted
// form back.
type Duration struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Days == 0
}

// String renders the duration in the dashboard's display form.
func (d Duration) String() string {
	return fmt.Sprintf("%d Years, %d Months, %d Days", d.Years, d.Months, d.Days)
}
