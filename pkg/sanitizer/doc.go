// Package sanitizer provides small, stateless helpers for cleaning and
// reshaping values before they reach domain code.
//
// The helpers fall into three groups:
//
//   - Collections – order-preserving deduplication, filtering and mapping of
//     slices.
//   - Pipelines – Apply and Compose chain single-value transformations into
//     reusable cleaning functions.
//   - Masking – MaskString hides the middle of sensitive identifiers before
//     they are logged or rendered.
//
// # Usage
//
//	import "github.com/dmitrymomot/rutkit/pkg/sanitizer"
//
//	clean := sanitizer.Compose(strings.TrimSpace, strings.ToUpper)
//	clean("  18300252-k ") // "18300252-K"
//
//	sanitizer.Deduplicate([]int{3, 1, 3, 2}) // [3 1 2]
//	sanitizer.MaskString("18.300.252-K", 2) // "18********-K"
//
// # Error handling
//
// None of the helpers returns an error. They never modify their input slices
// and always return a new, non-nil result.
//
// Because there is no global state the helpers are safe for concurrent use.
package sanitizer
