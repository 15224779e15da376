package i18n_test

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/i18n"
	"github.com/dmitrymomot/rutkit/pkg/logger"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello": "Hello",
			"validation": map[string]any{
				"rut":         "%{field} must be a valid RUT",
				"rut_company": "%{field} must be a company RUT (from %{min})",
			},
		},
		"es": {
			"hello": "Hola",
			"validation": map[string]any{
				"rut": "%{field} debe ser un RUT válido",
			},
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("nil map for language", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}})
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("empty adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"en", "es"}, newTranslator(t).SupportedLanguages())
	})
}

func TestTranslator_T(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Hola", tr.T("es", "hello"))
	assert.Equal(t, "rut must be a valid RUT", tr.T("en", "validation.rut", "field", "rut"))
	assert.Equal(t, "RUT debe ser un RUT válido", tr.T("es", "validation.rut", "field", "RUT"))
	assert.Equal(t, "owner must be a company RUT (from %{min})", tr.T("en", "validation.rut_company", "field", "owner"), "unknown placeholders are kept")
	assert.Equal(t, "owner must be a company RUT (from 50000000)", tr.T("en", "validation.rut_company", "field", "owner", "min", "50000000"))
	assert.Equal(t, "Hello", tr.T("fr", "hello"), "unknown language uses the default")
	assert.Equal(t, "validation.missing", tr.T("en", "validation.missing"), "missing key falls back to the key")
	assert.Equal(t, "validation", tr.T("en", "validation"), "nested maps are not messages")
	assert.Equal(t, "validation.rut_company", tr.T("es", "validation.rut_company"))
}

func TestTranslator_Options(t *testing.T) {
	t.Run("default language", func(t *testing.T) {
		tr := newTranslator(t, i18n.WithDefaultLanguage("es"), i18n.WithDefaultLanguage(""))
		assert.Equal(t, "es", tr.DefaultLanguage())
		assert.Equal(t, "Hola", tr.T("pt", "hello"))
	})

	t.Run("no fallback to key", func(t *testing.T) {
		tr := newTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, tr.T("en", "missing"))
		assert.Equal(t, "Hello", tr.T("en", "hello"))
	})

	t.Run("missing translations logging", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithTextFormatter())
		tr := newTranslator(t, i18n.WithLogger(log), i18n.WithLogger(nil), i18n.WithMissingTranslationsLogging(true))

		assert.Contains(t, buf.String(), "translations loaded")
		assert.Contains(t, buf.String(), "component=i18n")
		tr.T("en", "missing")
		assert.Contains(t, buf.String(), "translation not found")
		assert.Contains(t, buf.String(), "translation.lang=en")
		assert.Contains(t, buf.String(), "translation.key=missing")
	})

	t.Run("load failure is logged", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithTextFormatter())
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "locales")

		_, err := i18n.NewTranslator(context.Background(), adapter, i18n.WithLogger(log))
		require.ErrorIs(t, err, i18n.ErrFailedToReadDir)
		assert.Contains(t, buf.String(), "failed to load translations")
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestTranslator_TdTc(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Hola", tr.Td("es", "hello", "fallback"))
	assert.Equal(t, "rut is wrong", tr.Td("en", "missing", "%{field} is wrong", "field", "rut"))

	ctx := i18n.SetLocale(context.Background(), "es")
	assert.Equal(t, "Hola", tr.Tc(ctx, "hello"))
	assert.Equal(t, "Hello", tr.Tc(context.Background(), "hello"))
}

func TestTranslator_HasTranslation(t *testing.T) {
	tr := newTranslator(t)

	assert.True(t, tr.HasTranslation("en", "validation.rut"))
	assert.True(t, tr.HasTranslation("en", "validation"))
	assert.False(t, tr.HasTranslation("es", "validation.rut_company"))
	assert.False(t, tr.HasTranslation("fr", "hello"))
}

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	assert.Equal(t, "es", i18n.GetLocale(i18n.SetLocale(context.Background(), "es")))
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(i18n.SetLocale(context.Background(), "")))
}

func TestTranslator_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("en:\n  validation:\n    rut: \"%{field} must be a valid RUT\"\n")},
		"locales/es.yml":  {Data: []byte("es:\n  validation:\n    rut: \"%{field} debe ser un RUT válido\"\n")},
		"locales/all.json": {Data: []byte(`{"en": {"hello": "Hello"}}`)},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	assert.Equal(t, "rut debe ser un RUT válido", tr.T("es", "validation.rut", "field", "rut"))
	assert.False(t, tr.HasTranslation("en", "hello"), "json files are skipped by the yaml parser")
}
