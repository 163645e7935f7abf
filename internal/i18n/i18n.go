// Package i18n holds the English and French message catalogs of the client
// and formats locale-aware numbers. It is a thin layer over
// go-playground/universal-translator so the same translators can also back
// validator error messages.
package i18n

import (
	"fmt"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"

	"github.com/MKhiriev/exo-explorer/models"
)

// Bundle resolves message keys for the supported languages. English is the
// fallback for unknown languages.
type Bundle struct {
	uni *ut.UniversalTranslator
}

// NewBundle registers the built-in catalogs.
func NewBundle() (*Bundle, error) {
	english := en.New()
	uni := ut.New(english, english, fr.New())

	catalogs := map[string]map[string]string{
		models.LanguageEnglish: catalogEN,
		models.LanguageFrench:  catalogFR,
	}
	for lang, catalog := range catalogs {
		trans, found := uni.GetTranslator(lang)
		if !found {
			return nil, fmt.Errorf("no locale registered for %q", lang)
		}
		for key, text := range catalog {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("add %s/%s: %w", lang, key, err)
			}
		}
	}

	return &Bundle{uni: uni}, nil
}

// Translator returns the translator of lang, or the English one.
func (b *Bundle) Translator(lang string) ut.Translator {
	trans, _ := b.uni.GetTranslator(lang)
	return trans
}

// T resolves key in lang, substituting {0}, {1}... with params. A missing key
// renders as the key itself so gaps are visible instead of blank.
func (b *Bundle) T(lang, key string, params ...string) (text string) {
	// universal-translator indexes params without a bounds check.
	defer func() {
		if recover() != nil {
			text = key
		}
	}()

	text, err := b.Translator(lang).T(key, params...)
	if err != nil {
		return key
	}
	return text
}

// Number formats v with the given number of decimals using the grouping and
// decimal separators of lang.
func (b *Bundle) Number(lang string, v float64, decimals uint64) string {
	return b.Translator(lang).FmtNumber(v, decimals)
}
