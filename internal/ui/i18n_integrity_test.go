package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// commandNames must match the bot command table; each needs a usage line.
var commandNames = []string{
	config.CmdHelp, config.CmdExit, config.CmdGoodbye, config.CmdClose,
	config.CmdAdd, config.CmdAddPhone, config.CmdRemovePhone, config.CmdChange,
	config.CmdShowAll, config.CmdShow, config.CmdPhone, config.CmdSearch,
	config.CmdDelete, config.CmdBirthday, config.CmdBirthdays, config.CmdEach,
	config.CmdExportICS, config.CmdImport,
}

func loadLocale(t *testing.T, lang string) map[string]any {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
	require.NoErrorf(t, err, "Must load active.%s.json", lang)

	var m map[string]any
	require.NoError(t, json.Unmarshal(content, &m), "JSON must be valid")
	return m
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every locale file.
func TestI18nIntegrity(t *testing.T) {
	keys := []string{
		config.TKeyPrompt,
		config.TKeyGoodbye,
		config.TKeyHelpHeader,
		config.TKeyUnknown,
		config.TKeyAdded,
		config.TKeyPhoneAdded,
		config.TKeyPhoneRemoved,
		config.TKeyChanged,
		config.TKeyNotFound,
		config.TKeyPhoneOf,
		config.TKeyDeleted,
		config.TKeyBirthdayIn,
		config.TKeyBirthdayToday,
		config.TKeyBirthdayUnset,
		config.TKeyUpcomingHeader,
		config.TKeyUpcomingLine,
		config.TKeyUpcomingNone,
		config.TKeyBookEmpty,
		config.TKeyExported,
		config.TKeyImported,
		config.TKeyError,
		config.TKeyEventSummary,
	}
	for _, c := range commandNames {
		keys = append(keys, config.TKeyUsagePrefix+c)
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			m := loadLocale(t, lang)
			for _, k := range keys {
				_, ok := m[k]
				assert.Truef(t, ok, "Key '%s' is missing in active.%s.json", k, lang)
			}
			for k := range m {
				if strings.HasPrefix(k, "_") {
					continue
				}
				assert.Containsf(t, keys, k, "Key '%s' in active.%s.json is never used", k, lang)
			}
		})
	}
}
