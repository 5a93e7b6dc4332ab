package config_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultStoreFile", config.DefaultStoreFile},
		{"DefaultJournalFile", config.DefaultJournalFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-AddressBook/"), "UserAgent must start with AppName/")
}

// TestPatterns_Compile guards the field patterns against accidental edits.
func TestPatterns_Compile(t *testing.T) {
	phone := regexp.MustCompile(config.PhonePattern)
	assert.True(t, phone.MatchString("+380991234567"))
	assert.False(t, phone.MatchString("+38099123456"))

	date := regexp.MustCompile(config.BirthdayPattern)
	assert.True(t, date.MatchString("01/02/1990"))
	assert.False(t, date.MatchString("1/2/1990"))
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettings_EmptyPath(t *testing.T) {
	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultStoreFile, s.StoreFile)
}

func TestLoadSettings_OverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "addressbook.yaml")
	content := `data_dir: /var/lib/book
language: uk
upcoming_days: 30
reminder_trigger: "-P1D"
import_timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/book", s.DataDir)
	assert.Equal(t, "uk", s.Language)
	assert.Equal(t, 30, s.UpcomingDays)
	assert.Equal(t, "-P1D", s.ReminderTrigger)
	assert.Equal(t, 5*time.Second, s.ImportTimeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, config.DefaultStoreFile, s.StoreFile)
	assert.Equal(t, filepath.Join("/var/lib/book", config.DefaultStoreFile), s.StorePath())
	assert.Equal(t, filepath.Join("/var/lib/book", config.DefaultJournalFile), s.JournalPath())
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Malformed YAML", "language: [en", config.ErrSettingsParse},
		{"Unsupported language", "language: fr", config.ErrSettingsInvalid},
		{"Negative horizon", "upcoming_days: -1", config.ErrSettingsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "s.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), config.FilePermUserRW))

			_, err := config.LoadSettings(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSettings_AbsoluteFileWins(t *testing.T) {
	s := config.DefaultSettings()
	s.StoreFile = "/tmp/elsewhere.bin"
	assert.Equal(t, "/tmp/elsewhere.bin", s.StorePath())
}
