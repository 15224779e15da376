package rut

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/rutkit/pkg/sanitizer"
)

// strictRegex matches the canonical punctuated form, e.g. "18.300.252-K".
var strictRegex = regexp.MustCompile(`^\d{1,2}\.\d{3}\.\d{3}-[0-9kK]$`)

// Validate reports whether every candidate is a valid RUT. Candidates are
// evaluated in order and evaluation stops at the first invalid one. A single
// slice argument is unpacked one level, so Validate(list) behaves like
// Validate(list...). Calling Validate with no candidates returns false.
//
// Accepted candidates are string, []byte, RUT, *RUT, Pair, a two element
// []any pair and any fmt.Stringer. Anything else is invalid.
func Validate(ruts ...any) bool {
	return validateAll(unpack(ruts), validCandidate)
}

// ValidateStrict works like Validate but also requires the textual form of
// every candidate to be strictly formatted ("18.300.252-K"). Pairs have no
// textual form and never pass.
func ValidateStrict(ruts ...any) bool {
	return validateAll(unpack(ruts), func(v any) bool {
		text, ok := candidateText(v)
		return ok && strictRegex.MatchString(text) && validCandidate(v)
	})
}

// Filter keeps the candidates that pass Validate, preserving order.
func Filter[T any](ruts ...T) []T {
	return sanitizer.FilterSlice(ruts, func(v T) bool {
		return validCandidate(any(v))
	})
}

// IsPerson reports whether s parses to a body in the person range.
func IsPerson(s string) bool {
	num, _, err := Separate(s)
	return err == nil && isPersonNum(num)
}

// IsCompany reports whether s parses to a body in the company range.
func IsCompany(s string) bool {
	num, _, err := Separate(s)
	return err == nil && isCompanyNum(num)
}

// AreEqual reports whether all values clean to the same non-empty RUT text.
// At least two values are required. A value that cleans to nothing makes the
// set unequal. A single slice argument is unpacked one level.
func AreEqual(ruts ...any) bool {
	return equalCleaned(unpack(ruts))
}

func equalCleaned(values []any) bool {
	if len(values) < 2 {
		return false
	}
	distinct := sanitizer.Deduplicate(sanitizer.TransformSlice(values, cleanedText))
	return len(distinct) == 1 && distinct[0] != ""
}

func validateAll(candidates []any, check func(any) bool) bool {
	if len(candidates) == 0 {
		return false
	}
	for _, c := range candidates {
		if !check(c) {
			return false
		}
	}
	return true
}

func validCandidate(v any) bool {
	num, vd, ok := components(v)
	return ok && matches(num, vd)
}

func matches(num int, vd string) bool {
	return num >= 0 && len(vd) == 1 && strings.ToUpper(vd)[0] == ChecksumByte(num)
}

// unpack flattens a single slice argument one level.
func unpack(args []any) []any {
	if len(args) != 1 {
		return args
	}
	switch list := args[0].(type) {
	case []any:
		return list
	case []string:
		return toAny(list)
	case []RUT:
		return toAny(list)
	case []Pair:
		return toAny(list)
	default:
		return args
	}
}

func toAny[T any](list []T) []any {
	return sanitizer.TransformSlice(list, func(v T) any { return v })
}

// components extracts body and check character from a candidate.
func components(v any) (int, string, bool) {
	switch t := v.(type) {
	case RUT:
		return t.num, t.vd, t.set
	case *RUT:
		if t == nil {
			return 0, "", false
		}
		return t.num, t.vd, t.set
	case Pair:
		return t.Num, t.VD, t.VD != ""
	case []any:
		p, ok := pairFromSlice(t)
		return p.Num, p.VD, ok
	}

	text, ok := candidateText(v)
	if !ok {
		return 0, "", false
	}
	num, vd, err := Separate(text)
	return num, vd, err == nil
}

// candidateText returns the textual form of a candidate.
func candidateText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case *RUT:
		if t == nil {
			return "", false
		}
		return t.String(), true
	case fmt.Stringer:
		if isNilPointer(t) {
			return "", false
		}
		return t.String(), true
	default:
		return "", false
	}
}

// isNilPointer reports whether v holds a typed nil pointer, whose String
// method would usually dereference it.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// cleanedText returns the cleaned raw representation used for equality.
func cleanedText(v any) string {
	switch v.(type) {
	case RUT, *RUT, Pair, []any:
		num, vd, ok := components(v)
		if !ok {
			return ""
		}
		return Clean(strconv.Itoa(num) + vd)
	}
	text, _ := candidateText(v)
	return Clean(text)
}

// pairFromSlice reads a []any{num, vd} pair.
func pairFromSlice(values []any) (Pair, bool) {
	if len(values) != 2 {
		return Pair{}, false
	}

	var num int
	switch n := values[0].(type) {
	case int:
		num = n
	case int64:
		num = int(n)
	case uint32:
		num = int(n)
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return Pair{}, false
		}
		num = parsed
	default:
		return Pair{}, false
	}

	var vd string
	switch d := values[1].(type) {
	case string:
		vd = d
	case rune:
		vd = string(d)
	case byte:
		vd = string(d)
	case int:
		vd = strconv.Itoa(d)
	default:
		return Pair{}, false
	}

	if num < 0 || vd == "" {
		return Pair{}, false
	}
	return Pair{Num: num, VD: strings.ToUpper(vd)}, true
}
