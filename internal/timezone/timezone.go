// Package timezone resolves cabinet time zones. The tz database is embedded
// so containers without /usr/share/zoneinfo still work.
package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Zurich"

// Resolve returns tz when it names a known zone, DefaultTimezone otherwise.
func Resolve(tz string) string {
	if tz == "" {
		return DefaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return DefaultTimezone
	}
	return tz
}

// Location never fails: unknown or empty zones map to DefaultTimezone.
func Location(tz string) *time.Location {
	loc, err := time.LoadLocation(Resolve(tz))
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayBounds returns [start of day, start of next day) for t in tz.
func DayBounds(t time.Time, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
