// Package ui holds the user-facing text of the bot: the embedded message
// catalogue and the terminal styles.
package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders message keys in one language.
type Translator struct {
	lang      string
	languages []string
	localizer *i18n.Localizer
}

// NewTranslator loads every embedded locale and selects lang, falling back
// to English for unknown tags or missing keys.
func NewTranslator(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	t := &Translator{lang: lang}
	if t.lang == "" {
		t.lang = config.DefaultLanguage
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		t.localizer = i18n.NewLocalizer(bundle, t.lang)
		return t
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		t.languages = append(t.languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	slices.Sort(t.languages)
	t.localizer = i18n.NewLocalizer(bundle, t.lang, config.DefaultLanguage)
	return t
}

// Language returns the requested language code.
func (t *Translator) Language() string {
	return t.lang
}

// Languages lists the locales found in the catalogue.
func (t *Translator) Languages() []string {
	return slices.Clone(t.languages)
}

// Msg translates key, filling template fields from data.
// It returns the key itself when no translation exists.
func (t *Translator) Msg(key string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// EventSummary formats a calendar event title.
func (t *Translator) EventSummary(name string, age int) string {
	return t.Msg(config.TKeyEventSummary, map[string]any{"Name": name, "Age": age})
}
