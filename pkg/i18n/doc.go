// Package i18n loads nested translation maps from JSON or YAML and resolves
// dot-separated keys with "%{name}" placeholder substitution.
//
// Translations are loaded once through a TranslationAdapter: MapAdapter for
// in-memory data, FSAdapter for a directory in any fs.FS such as an embed.FS.
// Every file is keyed by language at the top level:
//
//	es:
//	  validation:
//	    rut: "%{field} debe ser un RUT válido"
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//	    i18n.WithDefaultLanguage("es"),
//	)
//	msg := tr.T("es", "validation.rut", "field", "RUT")
//
// Requests for a language that was not loaded use the default language. Keys
// that cannot be resolved return the key itself unless
// WithFallbackToKey(false) is set.
//
// A Translator is read-only after construction and safe for concurrent use.
package i18n
