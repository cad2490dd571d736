// Package i18n renders user-facing text from the embedded locale catalogs.
// The CLI messages and the notification fallback texts share one Translator;
// lookups fall back from the requested locale to the configured default,
// then to the key itself.
package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"baco/internal/ports/output"
)

//go:embed active.*.toml
var catalogFS embed.FS

var catalogFiles = []string{"active.fr.toml", "active.en.toml"}

var _ output.T = (*Translator)(nil)

type Translator struct {
	bundle   *i18n.Bundle
	fallback string
	log      *zap.Logger
}

// NewTranslator loads the embedded catalogs. defaultLocale is the fallback
// for lookups in locales without a translation.
func NewTranslator(defaultLocale string, log *zap.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.Warn("unknown default locale, using French", zap.String("locale", defaultLocale))
		tag = language.French
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range catalogFiles {
		if _, err := bundle.LoadMessageFileFS(catalogFS, file); err != nil {
			log.Error("load locale catalog", zap.String("file", file), zap.Error(err))
		}
	}
	return &Translator{bundle: bundle, fallback: tag.String(), log: log}
}

// T renders the message identified by key for locale. Missing translations
// fall back to the default locale; a key absent from every catalog is
// returned as-is so the caller still has something to show.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	locales := make([]string, 0, 2)
	if locale != "" {
		locales = append(locales, locale)
	}
	locales = append(locales, t.fallback)

	msg, err := i18n.NewLocalizer(t.bundle, locales...).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Warn("missing translation",
			zap.String("key", key),
			zap.Strings("locales", locales))
		return key
	}
	return msg
}
