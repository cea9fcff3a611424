package dateutil

import (
	"testing"
	"time"

	"sitedesk/internal/model"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-07", "07-03-2024"},
		{"07-03-2024", "07-03-2024"},
		{"2024-3-7", "07-03-2024"},
		{"7-3-2024", "07-03-2024"},
		{"2024/03/07", "07-03-2024"},
		{"7/3/2024", "07-03-2024"},
		{"20240307", "07-03-2024"},
		{"2024-03-07T00:00:00", "07-03-2024"},
		{"", ""},
		{"  ", ""},
		{"N/A", ""},
		{"hello", "hello"},
		{"03-2024", "03-2024"},
		{"0 Years, 1 Months, 1 Days", "0 Years, 1 Months, 1 Days"},
	}
	for _, tt := range tests {
		if got := Display(tt.in); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayIdempotent(t *testing.T) {
	for _, in := range []string{"07-03-2024", "2024-03-07", "1/1/2020", "N/A"} {
		once := Display(in)
		if twice := Display(once); twice != once {
			t.Errorf("Display not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestWire(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"07-03-2024", "2024-03-07", false},
		{"7-3-2024", "2024-03-07", false},
		{"31-12-1999", "1999-12-31", false},
		{"2024-03-07", "", true},
		{"31-02-2024", "", true},
		{"0 Years, 1 Months, 1 Days", "", true},
		{"", "", true},
		{"hello", "", true},
	}
	for _, tt := range tests {
		got, err := Wire(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Wire(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Wire(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Wire(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want model.Duration
	}{
		{"same day", date(2024, 3, 7), date(2024, 3, 7), model.Duration{}},
		{"one day", date(2024, 3, 7), date(2024, 3, 8), model.Duration{Days: 1}},
		{"across short month", date(2023, 1, 31), date(2023, 3, 1), model.Duration{Months: 1, Days: 1}},
		{"month end to month end", date(2023, 1, 31), date(2023, 2, 28), model.Duration{Months: 1}},
		{"full year", date(2020, 6, 15), date(2021, 6, 15), model.Duration{Years: 1}},
		{"mixed", date(2020, 1, 15), date(2023, 4, 20), model.Duration{Years: 3, Months: 3, Days: 5}},
		{"leap day anchor", date(2024, 2, 29), date(2025, 3, 1), model.Duration{Years: 1, Days: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Between(tt.a, tt.b); got != tt.want {
				t.Errorf("Between(%v, %v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
			// Argument order must not matter.
			if got := Between(tt.b, tt.a); got != tt.want {
				t.Errorf("Between(%v, %v) = %+v, want %+v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestBetweenDisplay(t *testing.T) {
	d, ok := BetweenDisplay("31-01-2023", "2023-03-01")
	if !ok {
		t.Fatal("BetweenDisplay returned !ok for valid dates")
	}
	if want := (model.Duration{Months: 1, Days: 1}); d != want {
		t.Errorf("BetweenDisplay = %+v, want %+v", d, want)
	}

	if _, ok := BetweenDisplay("garbage", "01-01-2024"); ok {
		t.Error("BetweenDisplay accepted unparseable input")
	}
	if _, ok := BetweenDisplay("01-01-2024", ""); ok {
		t.Error("BetweenDisplay accepted empty input")
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		want    string
		wantErr bool
	}{
		{"07-03-2024", 9, "07-03-2033", false},
		{"2024-03-07", 1, "07-03-2025", false},
		{"29-02-2024", 1, "28-02-2025", false},
		{"29-02-2024", 4, "29-02-2028", false},
		{"not a date", 1, "", true},
	}
	for _, tt := range tests {
		got, err := AddYears(tt.in, tt.n)
		if tt.wantErr {
			if err == nil {
				t.Errorf("AddYears(%q, %d) = %q, want error", tt.in, tt.n, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("AddYears(%q, %d) unexpected error: %v", tt.in, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddYears(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestDurationString(t *testing.T) {
	d := model.Duration{Years: 8, Months: 11, Days: 0}
	if got, want := d.String(), "8 Years, 11 Months, 0 Days"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
