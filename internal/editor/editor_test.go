package editor

import (
	"errors"
	"testing"

	"sitedesk/internal/model"
)

func testSite() model.Site {
	return model.Site{
		SiteID:           "SITE001",
		StoreName:        "CITY CENTRE",
		AgreementDate:    "15-06-2023",
		RentPositionDate: "01-01-2023",
		CurrentDate:      "01-02-2023",
		LeasePeriod:      "9",
		PresentRent:      "85000",
		HikePercentage:   "12.5%",
		CurrentDate1:     "0 Years, 1 Months, 0 Days",
	}
}

func TestBegin(t *testing.T) {
	s, err := Begin(testSite())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s.State() != Editing {
		t.Errorf("State = %v, want Editing", s.State())
	}
	if s.SiteID() != "SITE001" {
		t.Errorf("SiteID = %q", s.SiteID())
	}
	// Percent fields present bare numbers in the draft.
	if got := s.Value("hike_percentage"); got != "12.5" {
		t.Errorf("hike_percentage draft = %q, want bare number", got)
	}
	if got := s.Value("present_rent"); got != "85000" {
		t.Errorf("present_rent draft = %q", got)
	}
}

func TestBeginRejectsEmptyID(t *testing.T) {
	if _, err := Begin(model.Site{StoreName: "ORPHAN"}); err == nil {
		t.Error("Begin accepted a record without a site id")
	}
}

func TestSet(t *testing.T) {
	s, err := Begin(testSite())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if err := s.Set("store_name", "NEW NAME"); err != nil {
		t.Errorf("Set store_name: %v", err)
	}
	if got := s.Value("store_name"); got != "NEW NAME" {
		t.Errorf("store_name = %q", got)
	}

	if err := s.Set("site_id", "SITE999"); !errors.Is(err, ErrImmutableField) {
		t.Errorf("Set site_id err = %v, want ErrImmutableField", err)
	}
	if err := s.Set("no_such_field", "x"); err == nil {
		t.Error("Set accepted an unknown field")
	}
}

func TestRecalculate(t *testing.T) {
	s, err := Begin(testSite())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	s.Recalculate()

	if got := s.Value("agreement_valid_upto"); got != "15-06-2032" {
		t.Errorf("agreement_valid_upto = %q, want 15-06-2032", got)
	}
	if got := s.Value("current_date1"); got != "0 Years, 1 Months, 0 Days" {
		t.Errorf("current_date1 = %q", got)
	}
	if got := s.Value("validity_date"); got != "9 Years, 4 Months, 14 Days" {
		t.Errorf("validity_date = %q", got)
	}
}

func TestRecalculateKeepsUnparseable(t *testing.T) {
	site := testSite()
	site.AgreementDate = ""
	site.AgreementValidUpto = "01-01-2030"
	s, err := Begin(site)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	s.Recalculate()
	// No agreement date, so the expiry keeps its fetched value.
	if got := s.Value("agreement_valid_upto"); got != "01-01-2030" {
		t.Errorf("agreement_valid_upto = %q, want previous value kept", got)
	}
}

func TestPayload(t *testing.T) {
	s, err := Begin(testSite())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := s.Set("agreement_date", "15-06-2024"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	payload, err := s.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	if s.State() != Saving {
		t.Errorf("State = %v, want Saving", s.State())
	}

	// Site id is always present but never under a label.
	if payload["site_id"] != "SITE001" {
		t.Errorf("site_id = %v", payload["site_id"])
	}
	// Dates go out in wire form under the legacy column label.
	if payload["AGREEMENT DATE"] != "2024-06-15" {
		t.Errorf("AGREEMENT DATE = %v", payload["AGREEMENT DATE"])
	}
	if _, ok := payload["agreement_date"]; ok {
		t.Error("date also present under its identifier")
	}
	// Percent fields are bare numbers keyed by identifier.
	if payload["hike_percentage"] != 12.5 {
		t.Errorf("hike_percentage = %v", payload["hike_percentage"])
	}
	// Everything else is the draft string.
	if payload["present_rent"] != "85000" {
		t.Errorf("present_rent = %v", payload["present_rent"])
	}
	// Durations and empty fields are omitted.
	if _, ok := payload["current_date1"]; ok {
		t.Error("duration field leaked into the payload")
	}
	if _, ok := payload["remarks"]; ok {
		t.Error("empty field leaked into the payload")
	}
}

func TestPayloadOnlyWhileEditing(t *testing.T) {
	s, err := Begin(testSite())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := s.Payload(); err != nil {
		t.Fatalf("first Payload: %v", err)
	}
	if _, err := s.Payload(); !errors.Is(err, ErrNotEditing) {
		t.Errorf("second Payload err = %v, want ErrNotEditing", err)
	}
	if err := s.Set("store_name", "X"); !errors.Is(err, ErrNotEditing) {
		t.Errorf("Set after Payload err = %v, want ErrNotEditing", err)
	}
}

func TestCancelAndDone(t *testing.T) {
	s, err := Begin(testSite())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	s.Cancel()
	if s.State() != Cancelled {
		t.Errorf("State after Cancel = %v", s.State())
	}

	s, _ = Begin(testSite())
	if _, err := s.Payload(); err != nil {
		t.Fatalf("Payload: %v", err)
	}
	s.Done()
	if s.State() != Viewing {
		t.Errorf("State after Done = %v", s.State())
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		Viewing:   "viewing",
		Editing:   "editing",
		Saving:    "saving",
		Cancelled: "cancelled",
		State(99): "unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
