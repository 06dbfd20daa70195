// Package config loads the dashboard settings from config.yaml in the data
// directory, creating a default file on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/FavaretoBTZ/BTZ-SCHEDULE/internal/files"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyTimezone        = "timezone"
	cfgKeyRefreshInterval = "refresh_interval"
	cfgKeyScheduleFile    = "schedule_file"

	// The original dashboard pinned the track clock to Brasília.
	defaultTimezone        = "America/Sao_Paulo"
	defaultRefreshInterval = "1s"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# BTZ schedule configuration

# IANA timezone used for parsing activity times and for the live clock.
timezone: America/Sao_Paulo

# How often the dashboard recomputes statuses and countdowns.
refresh_interval: 1s

# Name of the schedule CSV inside the data directory.
schedule_file: schedule.csv
`

// Config holds the resolved settings every surface of the app shares.
type Config struct {
	Location        *time.Location
	RefreshInterval time.Duration
	ScheduleFile    string
}

// Load reads config.yaml from the data directory using Viper, writing a
// default file first if none exists. A missing config.yaml is not an error.
func Load(baseDir string) (*Config, error) {
	if err := ensureConfigDir(baseDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(baseDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyTimezone, defaultTimezone)
	v.SetDefault(cfgKeyRefreshInterval, defaultRefreshInterval)
	v.SetDefault(cfgKeyScheduleFile, files.DefaultFileName)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(baseDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	loc, err := time.LoadLocation(v.GetString(cfgKeyTimezone))
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", v.GetString(cfgKeyTimezone), err)
	}

	interval, err := time.ParseDuration(v.GetString(cfgKeyRefreshInterval))
	if err != nil {
		return nil, fmt.Errorf("parse refresh interval %q: %w", v.GetString(cfgKeyRefreshInterval), err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval %q must be positive", v.GetString(cfgKeyRefreshInterval))
	}

	return &Config{
		Location:        loc,
		RefreshInterval: interval,
		ScheduleFile:    v.GetString(cfgKeyScheduleFile),
	}, nil
}

func ensureConfigDir(baseDir string) error {
	return os.MkdirAll(baseDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the data directory.
func ensureDefaultConfigFile(baseDir string) error {
	path := filepath.Join(baseDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
