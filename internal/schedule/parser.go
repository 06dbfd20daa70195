package schedule

import (
	"fmt"
	"strings"
	"time"
)

// CSV layouts. Saving always emits seconds; loading also accepts HH:MM so
// files written by hand or by older tools keep working.
const (
	DateLayout       = "2006-01-02"
	ClockLayout      = "15:04:05"
	clockLayoutShort = "15:04"
)

// Header is the documented column order of the schedule CSV.
var Header = []string{"Date", "Start", "End", "Activity"}

// ParseClock parses a time-of-day in HH:MM:SS or HH:MM form. The result
// carries only the clock fields; callers combine it with a date.
func ParseClock(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{ClockLayout, clockLayoutShort} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected HH:MM:SS or HH:MM)", value)
}

// CombineClock places a parsed clock onto the given calendar day.
func CombineClock(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		date.Location(),
	)
}

// parseRecord converts one CSV record into an Activity, assigning a fresh
// identifier. All times are interpreted in loc.
func parseRecord(record []string, loc *time.Location) (Activity, error) {
	if len(record) != len(Header) {
		return Activity{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(record))
	}

	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(record[0]), loc)
	if err != nil {
		return Activity{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", strings.TrimSpace(record[0]))
	}

	start, err := ParseClock(record[1])
	if err != nil {
		return Activity{}, fmt.Errorf("start: %w", err)
	}

	end, err := ParseClock(record[2])
	if err != nil {
		return Activity{}, fmt.Errorf("end: %w", err)
	}

	description := strings.TrimSpace(record[3])
	if description == "" {
		return Activity{}, fmt.Errorf("activity description is empty")
	}

	return NewActivity(CombineClock(date, start), CombineClock(date, end), description)
}

// formatRecord renders an Activity back into the four CSV columns.
func formatRecord(a Activity) []string {
	return []string{
		a.Starts.Format(DateLayout),
		a.Starts.Format(ClockLayout),
		a.Ends.Format(ClockLayout),
		a.Description,
	}
}

// isHeaderRecord reports whether the record is the documented header row.
func isHeaderRecord(record []string) bool {
	if len(record) != len(Header) {
		return false
	}
	for i, column := range Header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), column) {
			return false
		}
	}
	return true
}
