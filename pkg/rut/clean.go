package rut

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/rutkit/pkg/sanitizer"
)

// keepRUTChars drops everything except ASCII digits and the letter K.
func keepRUTChars(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == 'k' || r == 'K' {
			return r
		}
		return -1
	}, s)
}

// NFKC folds full-width digits and letters into ASCII before filtering.
var cleanPipeline = sanitizer.Compose(norm.NFKC.String, keepRUTChars)

// CleanCase strips every character that is not a digit or K, keeping order,
// and applies the requested case to K. It returns "" when nothing survives.
func CleanCase(s string, upper bool) string {
	cleaned := cleanPipeline(s)
	if upper {
		return strings.ToUpper(cleaned)
	}
	return strings.ToLower(cleaned)
}

// Clean is CleanCase with an uppercase K.
//
//	rut.Clean("18.300.252-k") // "18300252K"
//	rut.Clean("n/a")          // ""
func Clean(s string) string {
	return CleanCase(s, true)
}

// CleanChecked works like Clean but returns ErrCleaningFailed instead of an empty string.
func CleanChecked(s string) (string, error) {
	cleaned := Clean(s)
	if cleaned == "" {
		return "", fmt.Errorf("%w: %q", ErrCleaningFailed, s)
	}
	return cleaned, nil
}

// Separate cleans s and splits it into its numeric body and check character.
// The last cleaned character is always the check character. Leading zeros in
// the body are insignificant. On failure the zero pair is returned together
// with ErrCleaningFailed or ErrMalformedInput.
func Separate(s string) (int, string, error) {
	cleaned, err := CleanChecked(s)
	if err != nil {
		return 0, "", err
	}
	return split(cleaned)
}

func split(cleaned string) (int, string, error) {
	last := len(cleaned) - 1
	body, vd := cleaned[:last], cleaned[last:]
	if body == "" {
		return 0, "", fmt.Errorf("%w: %q has no body", ErrMalformedInput, cleaned)
	}

	num, err := strconv.Atoi(body)
	if err != nil {
		return 0, "", fmt.Errorf("%w: body %q is not a number", ErrMalformedInput, body)
	}
	return num, vd, nil
}
