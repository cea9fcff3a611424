// Package editor implements the in-place edit session for one site record:
// Viewing -> Editing -> (Saving | Cancelled) -> Viewing. The session owns
// the display-to-wire conversions on save; the site id is never mutable.
package editor

import (
	"errors"
	"fmt"
	"strconv"

	"sitedesk/internal/dateutil"
	"sitedesk/internal/format"
	"sitedesk/internal/model"
)

// State is the edit session's phase.
type State int

const (
	Viewing State = iota
	Editing
	Saving
	Cancelled
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

var (
	// ErrNotEditing guards transitions that only make sense mid-edit.
	ErrNotEditing = errors.New("no edit in progress")
	// ErrImmutableField rejects writes to the site identifier.
	ErrImmutableField = errors.New("site id cannot be edited")
)

// Session is one record's edit lifecycle. After Payload or Cancel the
// session is terminal; the caller re-fetches the record and renders from
// the server's copy, never from the draft.
type Session struct {
	siteID string
	state  State
	draft  map[string]string
}

// Begin opens an edit session over a fetched record. Percentage fields are
// presented with the trailing '%' stripped so the operator edits bare
// numbers.
func Begin(site model.Site) (*Session, error) {
	if site.SiteID == "" {
		return nil, errors.New("cannot edit a record without a site id")
	}

	draft := make(map[string]string, len(model.Fields))
	for i := range model.Fields {
		f := &model.Fields[i]
		v := f.Get(&site)
		if f.Kind == model.KindPercent {
			v = format.StripPercent(v)
		}
		draft[f.Name] = v
	}

	return &Session{siteID: site.SiteID, state: Editing, draft: draft}, nil
}

// SiteID returns the record under edit.
func (s *Session) SiteID() string { return s.siteID }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Value returns the draft value for a field.
func (s *Session) Value(name string) string { return s.draft[name] }

// Set updates one draft field. Every field except the site identifier is
// mutable while editing.
func (s *Session) Set(name, value string) error {
	if s.state != Editing {
		return ErrNotEditing
	}
	f := model.FieldByName(name)
	if f == nil {
		return fmt.Errorf("unknown field %q", name)
	}
	if f.Name == "site_id" {
		return ErrImmutableField
	}
	s.draft[name] = value
	return nil
}

// Recalculate refreshes the derived fields from the current draft: the
// agreement expiry from agreement date plus lease period, elapsed time
// since the rent position date, and time remaining on the agreement.
// Fields whose inputs are missing or unparseable keep their previous
// values.
func (s *Session) Recalculate() {
	if s.state != Editing {
		return
	}
	if years, err := strconv.Atoi(s.draft["lease_period"]); err == nil && years > 0 {
		if upto, err := dateutil.AddYears(s.draft["agreement_date"], years); err == nil {
			s.draft["agreement_valid_upto"] = upto
		}
	}
	if d, ok := dateutil.BetweenDisplay(s.draft["rent_position_date"], s.draft["current_date"]); ok {
		s.draft["current_date1"] = d.String()
	}
	if d, ok := dateutil.BetweenDisplay(s.draft["current_date"], s.draft["agreement_valid_upto"]); ok {
		s.draft["validity_date"] = d.String()
	}
}

// Payload transitions to Saving and builds the partial update for the
// server. Date fields convert from display to wire form and are keyed by
// their legacy column labels; percentage fields are parsed back to bare
// numbers; empty and "N/A" values are omitted; duration fields and dates
// that do not parse are omitted rather than sent malformed. The site id is
// always present.
func (s *Session) Payload() (map[string]any, error) {
	if s.state != Editing {
		return nil, ErrNotEditing
	}
	s.state = Saving

	payload := map[string]any{"site_id": s.siteID}
	for i := range model.Fields {
		f := &model.Fields[i]
		if f.Name == "site_id" || f.Kind == model.KindDuration {
			continue
		}
		v := s.draft[f.Name]
		if v == "" || v == format.NA {
			continue
		}
		switch f.Kind {
		case model.KindDate:
			wire, err := dateutil.Wire(v)
			if err != nil {
				continue
			}
			payload[f.Label] = wire
		case model.KindPercent:
			n, err := strconv.ParseFloat(format.StripPercent(v), 64)
			if err != nil {
				continue
			}
			payload[f.Name] = n
		default:
			payload[f.Name] = v
		}
	}
	return payload, nil
}

// Cancel abandons the draft. The caller re-fetches the record to restore
// the displayed values.
func (s *Session) Cancel() {
	if s.state == Editing {
		s.state = Cancelled
	}
}

// Done marks a successful save, returning the session to terminal state.
func (s *Session) Done() {
	if s.state == Saving {
		s.state = Viewing
	}
}
