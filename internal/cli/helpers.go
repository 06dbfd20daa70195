package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/schedule"
)

func resolveDate(dateFlag string, loc *time.Location) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}

	parsed, err := time.ParseInLocation(schedule.DateLayout, dateFlag, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// resolveNow turns the --at flag into the reference instant for
// classification. Accepted forms: empty (wall clock), "HH:MM[:SS]" (today at
// that time), or "YYYY-MM-DD HH:MM[:SS]".
func resolveNow(atFlag string, loc *time.Location) (time.Time, error) {
	atFlag = strings.TrimSpace(atFlag)
	if atFlag == "" {
		return time.Now().In(loc), nil
	}

	if date, clock, found := strings.Cut(atFlag, " "); found {
		day, err := time.ParseInLocation(schedule.DateLayout, date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date: %w", err)
		}
		parsed, err := schedule.ParseClock(clock)
		if err != nil {
			return time.Time{}, err
		}
		return schedule.CombineClock(day, parsed), nil
	}

	parsed, err := schedule.ParseClock(atFlag)
	if err != nil {
		return time.Time{}, err
	}
	today, _ := resolveDate("", loc)
	return schedule.CombineClock(today, parsed), nil
}

func formatActivity(a schedule.Activity) string {
	var builder strings.Builder
	builder.Grow(48 + len(a.Description))

	builder.WriteString(a.Starts.Format(schedule.DateLayout))
	builder.WriteByte(' ')
	builder.WriteString(a.Starts.Format(schedule.ClockLayout))
	builder.WriteByte('-')
	builder.WriteString(a.Ends.Format(schedule.ClockLayout))
	builder.WriteByte(' ')
	builder.WriteString(a.Description)
	builder.WriteString(" (")
	builder.WriteString(schedule.FormatCountdown(a.Duration()))
	builder.WriteByte(')')

	return builder.String()
}

func printBoard(cmd *cobra.Command, board schedule.Board) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Now: %s %s\n", board.Now.Format(schedule.DateLayout), board.Now.Format(schedule.ClockLayout))

	if len(board.Items) == 0 {
		fmt.Fprintln(out, "(no activities)")
		return
	}

	for i, item := range board.Items {
		fmt.Fprintf(out, "%2d. [%-11s] %s\n", i+1, item.Status, formatActivity(item.Activity))
	}

	if remaining, ok := board.TimeRemaining(); ok {
		fmt.Fprintf(out, "Time remaining: %s\n", schedule.FormatCountdown(remaining))
	}
	if until, ok := board.TimeUntilNext(); ok {
		fmt.Fprintf(out, "Time until next: %s\n", schedule.FormatCountdown(until))
	}
	fmt.Fprintf(out, "Completed: %d/%d\n", board.CompletedCount(), len(board.Items))
}

func printActivities(cmd *cobra.Command, activities []schedule.Activity) {
	out := cmd.OutOrStdout()
	if len(activities) == 0 {
		fmt.Fprintln(out, "(no activities)")
		return
	}
	for i, a := range activities {
		fmt.Fprintf(out, "%2d. %s\n", i+1, formatActivity(a))
	}
}

func printRejected(cmd *cobra.Command, rejected []schedule.RowError) {
	if len(rejected) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Skipped %d row%s:\n", len(rejected), pluralS(len(rejected)))
	for _, r := range rejected {
		fmt.Fprintf(out, "  %s\n", r)
	}
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
