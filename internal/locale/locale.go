// Package locale translates the labels printed on exported documents.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var translationFS embed.FS

// Supported lists the languages shipped with the binary.
var Supported = []string{"en", "es"}

// Translator resolves message ids for one language. English is the fallback
// for anything missing.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
	log       *slog.Logger
}

// New returns a Translator for lang ("en", "es", or any BCP 47 tag).
func New(lang string, log *slog.Logger) (*Translator, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := parseTranslationFiles(bundle); err != nil {
		return nil, err
	}

	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", lang, err)
	}

	return &Translator{
		lang:      tag.String(),
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		log:       log,
	}, nil
}

// T localizes id. params are "key==value" pairs passed as template data.
func (t *Translator) T(id string, params ...string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: templateData(params),
	})
	if err != nil {
		t.log.Warn("missing translation", "id", id, "lang", t.lang, "error", err)
		return id
	}

	return msg
}

func templateData(params []string) map[string]any {
	data := make(map[string]any, len(params))

	for _, param := range params {
		key, value, _ := strings.Cut(param, "==")
		data[key] = value
	}

	return data
}

func parseTranslationFiles(bundle *i18n.Bundle) error {
	return fs.WalkDir(translationFS, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		data, err := translationFS.ReadFile(path)
		if err != nil {
			return err
		}

		if _, err := bundle.ParseMessageFileBytes(data, path); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		return nil
	})
}
