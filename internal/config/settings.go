package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable part of the configuration.
// Zero values are replaced by defaults in Normalize.
type Settings struct {
	DataDir         string        `yaml:"data_dir"`
	StoreFile       string        `yaml:"store_file"`
	JournalFile     string        `yaml:"journal_file"`
	Language        string        `yaml:"language"`
	UpcomingDays    int           `yaml:"upcoming_days"`
	ReminderTrigger string        `yaml:"reminder_trigger"` // ISO8601 duration, e.g. "-P1D"
	ImportTimeout   time.Duration `yaml:"import_timeout"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		DataDir:       DefaultDataDir,
		StoreFile:     DefaultStoreFile,
		JournalFile:   DefaultJournalFile,
		Language:      DefaultLanguage,
		UpcomingDays:  DefaultUpcomingDays,
		ImportTimeout: DefaultImportTimeout,
	}
}

// LoadSettings reads a YAML settings file.
// A missing file is not an error: defaults are returned instead.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug(MsgSettingsNone,
				LogKeyComponent, CompSettings,
				LogKeyPath, path)
			return s, nil
		}
		return s, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}

	s.Normalize()
	return s, s.Validate()
}

// Normalize fills empty fields with their defaults.
func (s *Settings) Normalize() {
	d := DefaultSettings()
	if s.DataDir == "" {
		s.DataDir = d.DataDir
	}
	if s.StoreFile == "" {
		s.StoreFile = d.StoreFile
	}
	if s.JournalFile == "" {
		s.JournalFile = d.JournalFile
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	if s.UpcomingDays == 0 {
		s.UpcomingDays = d.UpcomingDays
	}
	if s.ImportTimeout == 0 {
		s.ImportTimeout = d.ImportTimeout
	}
}

// Validate reports settings that cannot be used.
func (s Settings) Validate() error {
	if s.UpcomingDays < 0 {
		return fmt.Errorf("%s: upcoming_days must not be negative", ErrSettingsInvalid)
	}
	if s.ImportTimeout < 0 {
		return fmt.Errorf("%s: import_timeout must not be negative", ErrSettingsInvalid)
	}
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: unsupported language %q", ErrSettingsInvalid, s.Language)
	}
	return nil
}

// StorePath is the absolute or data-dir relative path of the address book.
func (s Settings) StorePath() string {
	return resolve(s.DataDir, s.StoreFile)
}

// JournalPath is the path of the append-only session journal.
func (s Settings) JournalPath() string {
	return resolve(s.DataDir, s.JournalFile)
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
