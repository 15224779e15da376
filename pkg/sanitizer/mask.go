package sanitizer

import "strings"

// MaskString replaces the middle of s with asterisks, leaving visibleChars
// runes at each end. Strings too short to keep both ends are masked entirely.
// A negative visibleChars is treated as 1.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	if len(runes) <= visibleChars*2 {
		return strings.Repeat("*", len(runes))
	}

	hidden := len(runes) - visibleChars*2
	return string(runes[:visibleChars]) + strings.Repeat("*", hidden) + string(runes[len(runes)-visibleChars:])
}
