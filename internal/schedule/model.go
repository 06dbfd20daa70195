package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Activity represents a single scheduled track item. Starts and Ends are
// instants on the same calendar day; an activity does not span midnight.
type Activity struct {
	ID          uuid.UUID
	Starts      time.Time
	Ends        time.Time
	Description string
}

// NewActivity validates the time range and assigns a fresh identifier. The
// identifier lives in memory only; the CSV keeps the four documented columns.
func NewActivity(starts, ends time.Time, description string) (Activity, error) {
	a := Activity{
		ID:          uuid.New(),
		Starts:      starts,
		Ends:        ends,
		Description: description,
	}
	if err := a.Validate(); err != nil {
		return Activity{}, err
	}
	return a, nil
}

// Validate enforces the ingestion invariant: the end instant must come after
// the start instant. Nothing that fails here may reach the classifier.
func (a Activity) Validate() error {
	if !a.Ends.After(a.Starts) {
		return ErrEndNotAfterStart
	}
	return nil
}

// Date returns midnight of the activity's calendar day.
func (a Activity) Date() time.Time {
	return time.Date(a.Starts.Year(), a.Starts.Month(), a.Starts.Day(), 0, 0, 0, 0, a.Starts.Location())
}

// Duration returns how long the activity lasts.
func (a Activity) Duration() time.Duration {
	return a.Ends.Sub(a.Starts)
}

// Status expresses an activity's relation to the current time. It is derived
// on every classification cycle and never persisted.
type Status uint8

const (
	// StatusCompleted marks activities whose end has passed.
	StatusCompleted Status = iota
	// StatusInProgress marks activities currently running.
	StatusInProgress
	// StatusNext marks the single earliest activity yet to start.
	StatusNext
	// StatusFuture marks every other activity yet to start.
	StatusFuture
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusInProgress:
		return "in progress"
	case StatusNext:
		return "next"
	case StatusFuture:
		return "future"
	default:
		return "unknown"
	}
}

// SortActivities orders activities by start instant, ascending. The sort is
// stable so activities sharing a start keep their load order, which is also
// the tie-break used when tagging the next activity.
func SortActivities(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Starts.Before(activities[j].Starts)
	})
}
