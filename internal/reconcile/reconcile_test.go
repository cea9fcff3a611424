package reconcile

import (
	"errors"
	"testing"
)

func TestPick(t *testing.T) {
	raw := map[string]any{
		"STORE NAME": "LEGACY STORE",
		"store_name": "api store",
		"region":     "WEST",
		"sqft":       float64(1200),
		"empty":      "",
		"nil":        nil,
	}

	// Label beats identifier when both are present.
	if v, ok := Pick(raw, "STORE NAME", "store_name"); !ok || v != "LEGACY STORE" {
		t.Errorf("Pick label priority = %q, %v", v, ok)
	}
	// Fall through to the identifier when the label is absent.
	if v, ok := Pick(raw, "REGION", "region"); !ok || v != "WEST" {
		t.Errorf("Pick fallback = %q, %v", v, ok)
	}
	// Numbers come back as the string users saw.
	if v, ok := Pick(raw, "sqft"); !ok || v != "1200" {
		t.Errorf("Pick number = %q, %v", v, ok)
	}
	// Empty and nil values are not matches.
	if _, ok := Pick(raw, "empty", "nil"); ok {
		t.Error("Pick matched an empty value")
	}
	if _, ok := Pick(raw, "missing"); ok {
		t.Error("Pick matched a missing key")
	}
}

func TestUnwrap(t *testing.T) {
	bare := map[string]any{"site_id": "SITE001"}

	got, err := Unwrap(bare)
	if err != nil || got["site_id"] != "SITE001" {
		t.Errorf("Unwrap bare = %v, %v", got, err)
	}

	got, err = Unwrap(map[string]any{"site": bare})
	if err != nil || got["site_id"] != "SITE001" {
		t.Errorf("Unwrap nested = %v, %v", got, err)
	}

	got, err = Unwrap([]any{bare})
	if err != nil || got["site_id"] != "SITE001" {
		t.Errorf("Unwrap array = %v, %v", got, err)
	}

	if _, err = Unwrap([]any{}); err == nil {
		t.Error("Unwrap accepted an empty array")
	}
	if _, err = Unwrap("SITE001"); err == nil {
		t.Error("Unwrap accepted a string")
	}
}

func TestRecord(t *testing.T) {
	raw := map[string]any{
		"SITE":            "SITE001",
		"STORE NAME":      "CITY CENTRE",
		"store_name":      "stale value",
		"div":             "SOUTH",
		"AGREEMENT DATE":  "2023-06-15",
		"present_rent":    float64(85000),
		"hike_percentage": 12.5,
	}

	site, err := Record(raw)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if site.SiteID != "SITE001" {
		t.Errorf("SiteID = %q", site.SiteID)
	}
	if site.StoreName != "CITY CENTRE" {
		t.Errorf("StoreName = %q, label should win", site.StoreName)
	}
	if site.Division != "SOUTH" {
		t.Errorf("Division = %q", site.Division)
	}
	if site.AgreementDate != "15-06-2023" {
		t.Errorf("AgreementDate = %q, want display form", site.AgreementDate)
	}
	if site.PresentRent != "85000" {
		t.Errorf("PresentRent = %q", site.PresentRent)
	}
	if site.HikePercentage != "12.5" {
		t.Errorf("HikePercentage = %q", site.HikePercentage)
	}
	// Untouched fields stay empty; the formatter supplies the sentinel.
	if site.Remarks != "" {
		t.Errorf("Remarks = %q, want empty", site.Remarks)
	}
}

func TestRecordDivisionAlias(t *testing.T) {
	site, err := Record(map[string]any{"site_id": "SITE002", "division": "EAST"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if site.Division != "EAST" {
		t.Errorf("Division = %q, want EAST via division alias", site.Division)
	}
}

func TestRecordNoSiteID(t *testing.T) {
	_, err := Record(map[string]any{"STORE NAME": "ORPHAN"})
	if !errors.Is(err, ErrNoSiteID) {
		t.Errorf("err = %v, want ErrNoSiteID", err)
	}
	_, err = Record(map[string]any{"site_id": ""})
	if !errors.Is(err, ErrNoSiteID) {
		t.Errorf("err = %v, want ErrNoSiteID for empty id", err)
	}
}
