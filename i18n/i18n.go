// Package i18n loads the embedded translation catalogs and resolves
// message ids into localized text. Unlike a process-global localizer,
// lookups take the caller's locale so concurrent requests can be
// served in different languages.
package i18n

import (
	"fmt"
	"io/fs"

	"embed"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator resolves message ids against the embedded catalogs.
// Safe for concurrent use.
type Translator struct {
	bundle *goi18n.Bundle
}

// NewTranslator parses every embedded locale file into a bundle with
// English as the fallback language.
func NewTranslator() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("reading embedded locales: %w", err)
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parsing locale %s: %w", f.Name(), err)
		}
	}

	return &Translator{bundle: bundle}, nil
}

// Localize translates a message id for the given locale. The locale
// may be a bare tag ("fr") or a full Accept-Language header value;
// unrecognized locales fall back to English. If the id has no
// translation at all, the id itself is returned.
func (t *Translator) Localize(locale, messageID string) string {
	localizer := goi18n.NewLocalizer(t.bundle, locale)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
