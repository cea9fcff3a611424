package format

import "sitedesk/internal/model"

// Value formats a field value for display according to its kind.
func Value(kind model.Kind, v string) string {
	switch kind {
	case model.KindCurrency:
		return Currency(v)
	case model.KindPercent:
		return Percent(v)
	default:
		return Text(v)
	}
}
