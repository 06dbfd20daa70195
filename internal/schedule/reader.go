package schedule

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"time"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
)

// Reader loads activities from the schedule CSV.
type Reader struct {
	manager *files.Manager
	loc     *time.Location
}

// NewReader wires a reader using the shared files.Manager. Times in the file
// are interpreted in loc.
func NewReader(manager *files.Manager, loc *time.Location) *Reader {
	return &Reader{manager: manager, loc: loc}
}

// Load reads the managed schedule file, creating an empty one if needed. Rows
// that cannot be ingested are skipped and reported as RowErrors; the valid
// activities come back sorted by start instant. A partial load is the normal
// outcome for a file with bad rows, not an error.
func (r *Reader) Load(ctx context.Context) ([]Activity, []RowError, error) {
	if r == nil || r.manager == nil {
		return nil, nil, errors.New("reader not initialized with file manager")
	}

	path, err := r.manager.EnsureScheduleFile()
	if err != nil {
		return nil, nil, err
	}

	return r.LoadFile(ctx, path)
}

// LoadFile reads activities from an arbitrary CSV path, with the same
// skip-and-report policy as Load. Used by the import command.
func (r *Reader) LoadFile(ctx context.Context, path string) ([]Activity, []RowError, error) {
	if r == nil || r.loc == nil {
		return nil, nil, errors.New("reader not initialized with a location")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return r.parse(file)
}

func (r *Reader) parse(input io.Reader) ([]Activity, []RowError, error) {
	cr := csv.NewReader(input)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		activities []Activity
		rejected   []RowError
		first      = true
	)

	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			rejected = append(rejected, RowError{Line: line, Err: err})
			first = false
			continue
		}
		line, _ := cr.FieldPos(0)

		if first && isHeaderRecord(record) {
			first = false
			continue
		}
		first = false
		if isBlankRecord(record) {
			continue
		}

		activity, err := parseRecord(record, r.loc)
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: err})
			continue
		}
		activities = append(activities, activity)
	}

	SortActivities(activities)
	return activities, rejected, nil
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if field != "" {
			return false
		}
	}
	return true
}
