package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

func TestParseActivityInputWithExplicitDate(t *testing.T) {
	defaultDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	a, err := parseActivityInput("2024-03-10 08:00:00 09:30:00 Free practice", defaultDate)
	if err != nil {
		t.Fatalf("parseActivityInput: %v", err)
	}
	if got := a.Starts.Format("2006-01-02 15:04:05"); got != "2024-03-10 08:00:00" {
		t.Fatalf("Starts = %q", got)
	}
	if got := a.Ends.Format("15:04:05"); got != "09:30:00" {
		t.Fatalf("Ends = %q", got)
	}
	if a.Description != "Free practice" {
		t.Fatalf("Description = %q", a.Description)
	}
}

func TestParseActivityInputDefaultsDate(t *testing.T) {
	defaultDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	a, err := parseActivityInput("08:00 09:00 Briefing", defaultDate)
	if err != nil {
		t.Fatalf("parseActivityInput: %v", err)
	}
	if !a.Date().Equal(defaultDate) {
		t.Fatalf("Date() = %s, want %s", a.Date(), defaultDate)
	}
}

func TestParseActivityInputErrors(t *testing.T) {
	defaultDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	if _, err := parseActivityInput("08:00 09:00", defaultDate); err == nil {
		t.Fatal("expected error for missing description")
	}
	if _, err := parseActivityInput("nonsense", defaultDate); err == nil {
		t.Fatal("expected error for malformed input")
	}
	_, err := parseActivityInput("10:00 09:00 Backwards", defaultDate)
	if !errors.Is(err, schedule.ErrEndNotAfterStart) {
		t.Fatalf("error = %v, want ErrEndNotAfterStart", err)
	}
}

func TestActivityToInputRoundTrip(t *testing.T) {
	defaultDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	original, err := parseActivityInput("2024-03-10 08:00:00 09:30:00 Free practice", defaultDate)
	if err != nil {
		t.Fatalf("parseActivityInput: %v", err)
	}

	reparsed, err := parseActivityInput(activityToInput(original), defaultDate)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reparsed.Starts.Equal(original.Starts) || !reparsed.Ends.Equal(original.Ends) {
		t.Fatalf("round trip changed times: %v vs %v", reparsed, original)
	}
	if reparsed.Description != original.Description {
		t.Fatalf("round trip changed description: %q", reparsed.Description)
	}
}
