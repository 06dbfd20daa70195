package schedule

import (
	"errors"
	"fmt"
)

// ErrEndNotAfterStart is returned when an activity's end does not come after its start.
var ErrEndNotAfterStart = errors.New("end must be after start")

// ErrInvalidIndex indicates the caller referenced an activity index outside the schedule bounds.
var ErrInvalidIndex = errors.New("activity index out of range")

// RowError reports one CSV row that could not be ingested. Loading continues
// past it; callers surface the collected rejects to the user.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}
