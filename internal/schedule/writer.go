package schedule

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
)

// Writer handles append, edit, delete, and replace operations on the schedule
// CSV. Every mutation validates its input, then atomically rewrites the whole
// file sorted by start instant — the in-memory set is the document.
type Writer struct {
	manager *files.Manager
	reader  *Reader
}

// NewWriter wires the dependencies required to mutate the schedule file.
func NewWriter(manager *files.Manager, loc *time.Location) *Writer {
	return &Writer{
		manager: manager,
		reader:  NewReader(manager, loc),
	}
}

// Append adds a new activity to the schedule.
func (w *Writer) Append(ctx context.Context, activity Activity) error {
	if err := activity.Validate(); err != nil {
		return err
	}

	path, activities, err := w.load(ctx)
	if err != nil {
		return err
	}

	activities = append(activities, activity)
	return WriteFile(path, activities)
}

// Edit replaces the activity at index (1-based, sorted order) with updated.
func (w *Writer) Edit(ctx context.Context, index int, updated Activity) error {
	if err := updated.Validate(); err != nil {
		return err
	}

	path, activities, err := w.load(ctx)
	if err != nil {
		return err
	}
	if index < 1 || index > len(activities) {
		return ErrInvalidIndex
	}

	// Keep the identity stable across edits.
	updated.ID = activities[index-1].ID
	activities[index-1] = updated
	return WriteFile(path, activities)
}

// Delete removes the activity at index (1-based, sorted order) and returns it.
func (w *Writer) Delete(ctx context.Context, index int) (Activity, error) {
	path, activities, err := w.load(ctx)
	if err != nil {
		return Activity{}, err
	}
	if index < 1 || index > len(activities) {
		return Activity{}, ErrInvalidIndex
	}

	removed := activities[index-1]
	activities = append(activities[:index-1], activities[index:]...)
	return removed, WriteFile(path, activities)
}

// Replace swaps the entire schedule for the provided activities. Used by the
// import command, which validates rows before calling in.
func (w *Writer) Replace(ctx context.Context, activities []Activity) error {
	for _, activity := range activities {
		if err := activity.Validate(); err != nil {
			return err
		}
	}

	path, err := w.manager.EnsureScheduleFile()
	if err != nil {
		return err
	}
	return WriteFile(path, activities)
}

func (w *Writer) load(ctx context.Context) (string, []Activity, error) {
	if w == nil || w.manager == nil {
		return "", nil, errors.New("writer not initialized with file manager")
	}

	path, err := w.manager.EnsureScheduleFile()
	if err != nil {
		return "", nil, err
	}

	activities, _, err := w.reader.LoadFile(ctx, path)
	if err != nil {
		return "", nil, err
	}
	return path, activities, nil
}

// WriteFile serializes activities to path as a four-column CSV, header first,
// rows sorted by start instant. The write goes through a temp file in the
// same directory and a rename so readers never observe a partial file.
func WriteFile(path string, activities []Activity) error {
	sorted := make([]Activity, len(activities))
	copy(sorted, activities)
	SortActivities(sorted)

	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "btz-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	cw := csv.NewWriter(temp)
	if err := cw.Write(Header); err != nil {
		temp.Close()
		return err
	}
	for _, activity := range sorted {
		if err := cw.Write(formatRecord(activity)); err != nil {
			temp.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		temp.Close()
		return err
	}

	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
