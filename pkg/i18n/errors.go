package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrEmptyLanguage       = errors.New("empty language code")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrInvalidStructure    = errors.New("invalid translation structure")
	ErrLoadingCancelled    = errors.New("loading translations cancelled")
	ErrFailedToReadDir     = errors.New("failed to read translation directory")
	ErrFailedToReadFile    = errors.New("failed to read translation file")
	ErrNoTranslationsFound = errors.New("no translation files found")
)

// StructureError reports a top-level entry that is not a map of translations.
type StructureError struct {
	Lang string
	Got  any
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: language %q holds %T, expected a map", ErrInvalidStructure, e.Lang, e.Got)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}
