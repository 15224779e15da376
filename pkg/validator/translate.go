package validator

import (
	"context"
	"embed"
	"fmt"

	"github.com/dmitrymomot/rutkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translator resolves a translation key for a language.
// *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// NewTranslator returns an i18n.Translator loaded with the bundled English
// and Spanish messages for every rule in this package.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"), opts...)
}

// Localize returns the translated message of e. When tr has no message for
// the key, the untranslated Message is returned.
func (e ValidationError) Localize(tr Translator, lang string) string {
	if e.TranslationKey == "" {
		return e.Message
	}

	args := make([]string, 0, len(e.TranslationValues)*2)
	for name, value := range e.TranslationValues {
		args = append(args, name, fmt.Sprint(value))
	}

	msg := tr.T(lang, e.TranslationKey, args...)
	if msg == "" || msg == e.TranslationKey {
		return e.Message
	}
	return msg
}

// Localize groups the translated messages by field, keeping failure order
// within each field.
func (ve ValidationErrors) Localize(tr Translator, lang string) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Localize(tr, lang))
	}
	return out
}
