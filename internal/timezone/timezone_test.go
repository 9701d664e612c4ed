package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	if got := Location("Not/AZone").String(); got != DefaultTimezone {
		t.Errorf("Location(invalid) = %s, want %s", got, DefaultTimezone)
	}
	if got := Location("").String(); got != DefaultTimezone {
		t.Errorf("Location(empty) = %s, want %s", got, DefaultTimezone)
	}
	if got := Location("America/New_York").String(); got != "America/New_York" {
		t.Errorf("Location(valid) = %s", got)
	}
}

func TestResolve(t *testing.T) {
	cases := map[string]string{
		"":                DefaultTimezone,
		"Mars/Olympus":    DefaultTimezone,
		"Europe/Paris":    "Europe/Paris",
		"America/Toronto": "America/Toronto",
	}
	for in, want := range cases {
		if got := Resolve(in); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDayBounds(t *testing.T) {
	// 23:30 UTC on May 31 is already June 1 in Zurich (UTC+2).
	ts := time.Date(2025, 5, 31, 23, 30, 0, 0, time.UTC)

	start, end := DayBounds(ts, "Europe/Zurich")

	if start.Day() != 1 || start.Month() != time.June || start.Hour() != 0 {
		t.Errorf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("end - start = %v", end.Sub(start))
	}
	if !start.Equal(time.Date(2025, 5, 31, 22, 0, 0, 0, time.UTC)) {
		t.Errorf("start in UTC = %v", start.UTC())
	}
}
