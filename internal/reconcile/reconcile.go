// Package reconcile resolves canonical site fields from the loosely-keyed
// objects the API returns. Every attribute may arrive under a legacy
// spreadsheet column label ("STORE NAME") or an API identifier
// (store_name); the alias table in the model package fixes the priority
// order and this package applies it.
package reconcile

import (
	"errors"
	"fmt"
	"strconv"

	"sitedesk/internal/dateutil"
	"sitedesk/internal/model"
)

// ErrNoSiteID marks a payload whose site identifier resolved empty. Such a
// record is rejected before rendering.
var ErrNoSiteID = errors.New("record has no site id")

// Pick returns the value of the first candidate key that is present and
// non-empty, with ok reporting whether any candidate matched. Keys are
// matched literally; there is no case folding or partial matching beyond
// the enumerated aliases.
func Pick(raw map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		v, present := raw[k]
		if !present || v == nil {
			continue
		}
		s := stringify(v)
		if s == "" {
			continue
		}
		return s, true
	}
	return "", false
}

// Unwrap peels the envelope variants the API is known to produce: a bare
// object, an object nested under "site", or an array whose first element is
// the record.
func Unwrap(v any) (map[string]any, error) {
	switch t := v.(type) {
	case map[string]any:
		if site, ok := t["site"].(map[string]any); ok {
			return site, nil
		}
		return t, nil
	case []any:
		if len(t) == 0 {
			return nil, errors.New("empty result set")
		}
		return Unwrap(t[0])
	default:
		return nil, fmt.Errorf("unexpected response shape %T", v)
	}
}

// Record reconciles a raw payload into a Site. Date fields are normalized
// to the display form on the way in; duration fields pass through as the
// server formatted them. A payload whose site_id resolves empty is
// rejected with ErrNoSiteID.
func Record(raw map[string]any) (model.Site, error) {
	var site model.Site
	for i := range model.Fields {
		f := &model.Fields[i]
		v, ok := Pick(raw, f.Keys...)
		if !ok {
			continue
		}
		if f.Kind == model.KindDate {
			v = dateutil.Display(v)
		}
		f.Set(&site, v)
	}
	if site.SiteID == "" {
		return model.Site{}, ErrNoSiteID
	}
	return site, nil
}

// stringify flattens the scalar types encoding/json produces. Integral
// floats print without a fractional part so spreadsheet-sourced numbers
// round-trip as the strings users saw.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
