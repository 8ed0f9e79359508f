package format

import (
	"strings"
	"testing"
)

func TestCurrency(t *testing.T) {
	got := Currency(2500, "INR")
	if !strings.Contains(got, "2,500") {
		t.Fatalf("Currency(2500, INR) = %q, want the grouped amount", got)
	}

	usd := Currency(99.6, "USD")
	if !strings.Contains(usd, "100") {
		t.Fatalf("Currency should round to whole units, got %q", usd)
	}

	// Unknown codes fall back to INR rather than erroring.
	fallback := Currency(10, "???")
	if fallback == "" || fallback == Currency(10, "USD") {
		t.Fatalf("unknown code should fall back to INR, got %q", fallback)
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in, style, want string
	}{
		{"2026-02-15", "short", "15 Feb"},
		{"2026-02-15", "long", "Sunday, 15 February 2026"},
		{"2026-02-15", "day", "Sun"},
		{"2026-02-15", "iso", "2026-02-15"},
		{"not-a-date", "short", "not-a-date"},
	}
	for _, tc := range cases {
		if got := Date(tc.in, tc.style); got != tc.want {
			t.Fatalf("Date(%q, %q) = %q, want %q", tc.in, tc.style, got, tc.want)
		}
	}
}

func TestTripDuration(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2026-02-15", "2026-02-15", 1},
		{"2026-02-15", "2026-02-18", 4},
		{"2026-02-18", "2026-02-15", 4},
		{"garbage", "2026-02-15", 0},
		{"2026-02-15", "garbage", 0},
	}
	for _, tc := range cases {
		if got := TripDuration(tc.start, tc.end); got != tc.want {
			t.Fatalf("TripDuration(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDateRange(t *testing.T) {
	got := DateRange("2026-02-27", 3)
	want := []string{"2026-02-27", "2026-02-28", "2026-03-01"}
	if len(got) != len(want) {
		t.Fatalf("DateRange length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DateRange[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if DateRange("bad", 3) != nil {
		t.Fatalf("malformed start should yield nil")
	}
	if DateRange("2026-02-27", 0) != nil {
		t.Fatalf("non-positive day count should yield nil")
	}
}
