package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/rutkit/pkg/logger"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys in nested translation maps.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}
	t.logger = t.logger.With(logger.Component("i18n"))

	translations, err := adapter.Load(ctx)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return nil, err
	}

	for lang, values := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if values == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrInvalidStructure, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used for unknown language codes.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang has a string or nested value for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from args
// given as name, value pairs:
//
//	// "validation.rut": "%{field} must be a valid RUT"
//	tr.T("en", "validation.rut", "field", "rut") // "rut must be a valid RUT"
//
// An unknown lang falls back to the default language. A missing key returns
// the key itself, or "" when WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.translate(lang, key, args); ok {
		return msg
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td works like T but returns defaultValue, with placeholders substituted,
// when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if msg, ok := t.translate(lang, key, args); ok {
		return msg
	}
	return substitute(defaultValue, args)
}

// Tc translates key using the language stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) translate(lang, key string, args []string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		langMap, ok = t.translations[t.defaultLang]
		if !ok {
			t.logMissing("language not supported", lang, key)
			return "", false
		}
	}

	val, ok := lookup(langMap, key)
	if !ok {
		t.logMissing("translation not found", lang, key)
		return "", false
	}

	switch v := val.(type) {
	case string:
		return substitute(v, args), true
	case fmt.Stringer:
		return substitute(v.String(), args), true
	default:
		t.logMissing("translation is not a string", lang, key)
		return "", false
	}
}

func (t *Translator) logMissing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, logger.Group("translation",
			slog.String("lang", lang),
			slog.String("key", key),
		))
	}
}

// lookup traverses nested maps using dot-separated keys, so
// "validation.rut" reads m["validation"]["rut"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders; unknown names are kept.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
