package schedule

import (
	"fmt"
	"time"
)

// Classified pairs an activity with its status relative to a reference time.
type Classified struct {
	Activity Activity
	Status   Status
}

// Board is the result of one classification cycle: an immutable view of the
// schedule at a single instant. All derived queries read from it without
// touching the original activity set.
type Board struct {
	Now   time.Time
	Items []Classified
}

// Classify computes per-activity statuses for the given reference time. It is
// a pure function of its inputs: the activity slice is copied, stable-sorted
// by start instant, and never mutated.
//
// An activity is completed once now reaches its end, in progress while now is
// inside its range, and upcoming otherwise. Exactly one upcoming activity is
// tagged next: the earliest by start, ties resolved by load order.
func Classify(activities []Activity, now time.Time) Board {
	items := make([]Classified, len(activities))
	sorted := make([]Activity, len(activities))
	copy(sorted, activities)
	SortActivities(sorted)

	nextTagged := false
	for i, a := range sorted {
		status := StatusFuture
		switch {
		case !now.Before(a.Ends):
			status = StatusCompleted
		case !a.Starts.After(now):
			status = StatusInProgress
		case !nextTagged:
			status = StatusNext
			nextTagged = true
		}
		items[i] = Classified{Activity: a, Status: status}
	}

	return Board{Now: now, Items: items}
}

// Current returns the running activity driving the countdown display. With
// overlapping activities all running at once, the soonest-ending one wins.
func (b Board) Current() (Classified, bool) {
	var current Classified
	found := false
	for _, item := range b.Items {
		if item.Status != StatusInProgress {
			continue
		}
		if !found || item.Activity.Ends.Before(current.Activity.Ends) {
			current = item
			found = true
		}
	}
	return current, found
}

// Next returns the activity tagged StatusNext, if any.
func (b Board) Next() (Classified, bool) {
	for _, item := range b.Items {
		if item.Status == StatusNext {
			return item, true
		}
	}
	return Classified{}, false
}

// TimeRemaining reports how long until the current activity ends. The second
// result is false when nothing is in progress.
func (b Board) TimeRemaining() (time.Duration, bool) {
	current, ok := b.Current()
	if !ok {
		return 0, false
	}
	return current.Activity.Ends.Sub(b.Now), true
}

// TimeUntilNext reports how long until the next activity starts. The second
// result is false when no activity is still ahead.
func (b Board) TimeUntilNext() (time.Duration, bool) {
	next, ok := b.Next()
	if !ok {
		return 0, false
	}
	return next.Activity.Starts.Sub(b.Now), true
}

// Progress reports the elapsed fraction of the current activity, clamped to
// [0, 1]. The second result is false when nothing is in progress.
func (b Board) Progress() (float64, bool) {
	current, ok := b.Current()
	if !ok {
		return 0, false
	}
	total := current.Activity.Duration().Seconds()
	if total <= 0 {
		return 0, true
	}
	elapsed := b.Now.Sub(current.Activity.Starts).Seconds()
	pct := elapsed / total
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return pct, true
}

// CompletedCount returns how many activities have finished.
func (b Board) CompletedCount() int {
	count := 0
	for _, item := range b.Items {
		if item.Status == StatusCompleted {
			count++
		}
	}
	return count
}

// FormatCountdown renders a duration as HH:MM:SS, or MM:SS when under an
// hour, with a leading minus for negative values.
func FormatCountdown(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes, seconds)
}
