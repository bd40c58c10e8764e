package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// Global settings instance (loaded lazily)
	globalSettings     *Settings
	globalSettingsOnce sync.Once
	globalSettingsErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// Settings represents the daemon-wide preferences file (settings.yaml).
// The page tree itself lives in config.json next to it; this file only
// carries knobs that apply to the whole deck session.
type Settings struct {
	Version    int     `yaml:"version"`
	Brightness int     `yaml:"brightness"`          // Backlight level, 0-100
	FontPath   string  `yaml:"font,omitempty"`      // TTF/OTF path; empty = embedded default
	FontSize   float64 `yaml:"font_size"`           // Label font size in points
	LogLevel   string  `yaml:"log_level,omitempty"` // debug, info, warn, error; empty = silent
	AssetDir   string  `yaml:"asset_dir,omitempty"` // Icon root; empty = the config directory

	// Simulator layout, used when running without hardware.
	SimRows int `yaml:"sim_rows"`
	SimCols int `yaml:"sim_cols"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:    1,
		Brightness: 50,
		FontSize:   14,
		SimRows:    3,
		SimCols:    5,
	}
}

// LoadSettings loads the settings from disk. If the file doesn't exist,
// returns defaults. Thread-safe - multiple calls return the same instance.
func LoadSettings() (*Settings, error) {
	globalSettingsOnce.Do(func() {
		path, err := GetSettingsPath()
		if err != nil {
			globalSettingsErr = fmt.Errorf("failed to get settings path: %w", err)
			return
		}
		globalSettings, globalSettingsErr = LoadSettingsFrom(path)
	})
	return globalSettings, globalSettingsErr
}

// LoadSettingsFrom reads a settings file from an explicit path. A
// missing file yields defaults; a malformed one is an error.
func LoadSettingsFrom(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if settings.Version != 1 {
		return nil, fmt.Errorf("unsupported settings version: %d (expected 1)", settings.Version)
	}

	// Fill in zero-valued knobs from defaults
	defaults := NewSettings()
	if settings.Brightness == 0 {
		settings.Brightness = defaults.Brightness
	}
	if settings.FontSize == 0 {
		settings.FontSize = defaults.FontSize
	}
	if settings.SimRows == 0 {
		settings.SimRows = defaults.SimRows
	}
	if settings.SimCols == 0 {
		settings.SimCols = defaults.SimCols
	}

	return &settings, nil
}

// Save saves the settings to disk.
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := ensureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory exists: %w", err)
	}

	path, err := GetSettingsPath()
	if err != nil {
		return fmt.Errorf("failed to get settings path: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	header := []byte(`# deckd settings
# Deck-wide preferences. The page tree itself lives in config.json in
# this directory.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary settings file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings file: %w", err)
	}

	return nil
}
