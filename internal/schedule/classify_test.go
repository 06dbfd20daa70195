package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	parsed, err := ParseClock(clock)
	require.NoError(t, err)
	return CombineClock(testDay, parsed)
}

func activity(t *testing.T, start, end, description string) Activity {
	t.Helper()
	a, err := NewActivity(at(t, start), at(t, end), description)
	require.NoError(t, err)
	return a
}

func statuses(board Board) []Status {
	out := make([]Status, len(board.Items))
	for i, item := range board.Items {
		out[i] = item.Status
	}
	return out
}

func TestClassifyMidSchedule(t *testing.T) {
	activities := []Activity{
		activity(t, "08:00", "09:00", "A"),
		activity(t, "09:00", "10:00", "B"),
		activity(t, "10:00", "11:00", "C"),
	}

	board := Classify(activities, at(t, "09:30"))
	require.Equal(t, []Status{StatusCompleted, StatusInProgress, StatusNext}, statuses(board))

	remaining, ok := board.TimeRemaining()
	require.True(t, ok)
	require.Equal(t, 30*time.Minute, remaining)

	until, ok := board.TimeUntilNext()
	require.True(t, ok)
	require.Equal(t, 30*time.Minute, until)
}

func TestClassifyEarlyMorning(t *testing.T) {
	activities := []Activity{
		activity(t, "08:00", "09:00", "A"),
		activity(t, "09:00", "10:00", "B"),
		activity(t, "10:00", "11:00", "C"),
	}

	board := Classify(activities, at(t, "08:30"))
	require.Equal(t, []Status{StatusInProgress, StatusNext, StatusFuture}, statuses(board))

	until, ok := board.TimeUntilNext()
	require.True(t, ok)
	require.Equal(t, 30*time.Minute, until)

	remaining, ok := board.TimeRemaining()
	require.True(t, ok)
	require.Equal(t, 30*time.Minute, remaining)
}

func TestClassifyEmptySchedule(t *testing.T) {
	board := Classify(nil, at(t, "12:00"))
	require.Empty(t, board.Items)

	_, ok := board.TimeRemaining()
	require.False(t, ok)
	_, ok = board.TimeUntilNext()
	require.False(t, ok)
	_, ok = board.Current()
	require.False(t, ok)
	_, ok = board.Next()
	require.False(t, ok)
	_, ok = board.Progress()
	require.False(t, ok)
	require.Zero(t, board.CompletedCount())
}

func TestClassifyOverlappingActivities(t *testing.T) {
	activities := []Activity{
		activity(t, "09:00", "10:00", "A"),
		activity(t, "09:30", "10:30", "B"),
	}

	board := Classify(activities, at(t, "09:45"))
	require.Equal(t, []Status{StatusInProgress, StatusInProgress}, statuses(board))

	// The soonest-ending activity drives the countdown.
	remaining, ok := board.TimeRemaining()
	require.True(t, ok)
	require.Equal(t, 15*time.Minute, remaining)

	current, ok := board.Current()
	require.True(t, ok)
	require.Equal(t, "A", current.Activity.Description)
}

func TestClassifyAllPast(t *testing.T) {
	activities := []Activity{
		activity(t, "08:00", "09:00", "A"),
		activity(t, "09:00", "10:00", "B"),
	}

	board := Classify(activities, at(t, "18:00"))
	require.Equal(t, []Status{StatusCompleted, StatusCompleted}, statuses(board))
	require.Equal(t, 2, board.CompletedCount())

	_, ok := board.TimeRemaining()
	require.False(t, ok)
	_, ok = board.TimeUntilNext()
	require.False(t, ok)
}

func TestClassifyBoundaryInstants(t *testing.T) {
	activities := []Activity{activity(t, "09:00", "10:00", "A")}

	// now == start: the activity is already running.
	board := Classify(activities, at(t, "09:00"))
	require.Equal(t, StatusInProgress, board.Items[0].Status)

	// now == end: the activity is over.
	board = Classify(activities, at(t, "10:00"))
	require.Equal(t, StatusCompleted, board.Items[0].Status)
}

func TestClassifyNextTieKeepsLoadOrder(t *testing.T) {
	first := activity(t, "10:00", "10:30", "first loaded")
	second := activity(t, "10:00", "11:00", "second loaded")

	board := Classify([]Activity{first, second}, at(t, "09:00"))
	require.Equal(t, []Status{StatusNext, StatusFuture}, statuses(board))
	require.Equal(t, "first loaded", board.Items[0].Activity.Description)
}

func TestClassifySortsUnorderedInput(t *testing.T) {
	activities := []Activity{
		activity(t, "10:00", "11:00", "C"),
		activity(t, "08:00", "09:00", "A"),
		activity(t, "09:00", "10:00", "B"),
	}

	board := Classify(activities, at(t, "07:00"))
	require.Equal(t, "A", board.Items[0].Activity.Description)
	require.Equal(t, "B", board.Items[1].Activity.Description)
	require.Equal(t, "C", board.Items[2].Activity.Description)
	require.Equal(t, []Status{StatusNext, StatusFuture, StatusFuture}, statuses(board))

	// The input slice must not be reordered.
	require.Equal(t, "C", activities[0].Description)
}

func TestClassifyIsPure(t *testing.T) {
	activities := []Activity{
		activity(t, "08:00", "09:00", "A"),
		activity(t, "09:00", "10:00", "B"),
	}
	now := at(t, "08:30")

	first := Classify(activities, now)
	second := Classify(activities, now)
	require.Equal(t, first, second)
}

func TestProgress(t *testing.T) {
	activities := []Activity{activity(t, "09:00", "10:00", "A")}

	board := Classify(activities, at(t, "09:15"))
	pct, ok := board.Progress()
	require.True(t, ok)
	require.InDelta(t, 0.25, pct, 1e-9)

	board = Classify(activities, at(t, "08:00"))
	_, ok = board.Progress()
	require.False(t, ok)
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Minute, "30:00"},
		{90*time.Minute + 5*time.Second, "01:30:05"},
		{45 * time.Second, "00:45"},
		{-15 * time.Minute, "-15:00"},
		{0, "00:00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatCountdown(tc.in), "FormatCountdown(%s)", tc.in)
	}
}
