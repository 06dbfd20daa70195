package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// DefaultFileName is the CSV the dashboard reads and writes unless
	// configured otherwise.
	DefaultFileName = "schedule.csv"
)

// csvHeader seeds new schedule files with the documented column order.
const csvHeader = "Date,Start,End,Activity\n"

// Manager centralizes where the schedule CSV lives on disk and how it is named.
type Manager struct {
	basePath string
	fileName string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.btz (or another location determined by
// ResolveBasePath). An empty fileName selects DefaultFileName.
func NewManager(basePath, fileName string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	if fileName == "" {
		fileName = DefaultFileName
	}

	return &Manager{basePath: abs, fileName: fileName}, nil
}

// BasePath returns the root directory storing the schedule and its config.
func (m *Manager) BasePath() string {
	return m.basePath
}

// SchedulePath resolves the absolute path to the schedule CSV. The file may
// not exist yet; callers can choose to create it.
func (m *Manager) SchedulePath() string {
	return filepath.Join(m.basePath, m.fileName)
}

// EnsureScheduleFile guarantees the directory tree exists and the schedule
// file is present with the expected header row. It returns the absolute path
// to the file.
func (m *Manager) EnsureScheduleFile() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.SchedulePath()
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open schedule file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat schedule file: %w", err)
	}

	if info.Size() == 0 {
		if _, err := file.WriteString(csvHeader); err != nil {
			return "", fmt.Errorf("write csv header: %w", err)
		}
	}

	return path, nil
}
