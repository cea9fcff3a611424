package format

import (
	"testing"

	"sitedesk/internal/model"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234567", "₹12,34,567"},
		{"85000", "₹85,000"},
		{"999", "₹999"},
		{"85000.6", "₹85,001"},
		{"0", "₹0"},
		{"", "N/A"},
		{"N/A", "N/A"},
		{"twelve", "N/A"},
	}
	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.5", "12.5%"},
		{"12", "12%"},
		{"0", "0%"},
		{"12.50", "12.5%"},
		{"", "N/A"},
		{"N/A", "N/A"},
		{"abc", "N/A"},
	}
	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripPercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.5%", "12.5"},
		{"12.5", "12.5"},
		{" 12.5% ", "12.5"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripPercent(tt.in); got != tt.want {
			t.Errorf("StripPercent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	if got := Text(""); got != NA {
		t.Errorf("Text(\"\") = %q, want %q", got, NA)
	}
	if got := Text("  "); got != NA {
		t.Errorf("Text blank = %q, want %q", got, NA)
	}
	if got := Text("WEST"); got != "WEST" {
		t.Errorf("Text(WEST) = %q", got)
	}
}

func TestValue(t *testing.T) {
	if got := Value(model.KindCurrency, "85000"); got != "₹85,000" {
		t.Errorf("Value currency = %q", got)
	}
	if got := Value(model.KindPercent, "12.5"); got != "12.5%" {
		t.Errorf("Value percent = %q", got)
	}
	if got := Value(model.KindText, ""); got != NA {
		t.Errorf("Value empty text = %q", got)
	}
	if got := Value(model.KindDate, "07-03-2024"); got != "07-03-2024" {
		t.Errorf("Value date = %q", got)
	}
}
