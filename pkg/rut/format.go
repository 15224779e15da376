package rut

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/rutkit/pkg/sanitizer"
)

const groupSeparator = '.'

// Raw returns the body immediately followed by the check character: "18300252K".
func (r RUT) Raw() string {
	if !r.set {
		return ""
	}
	return strconv.Itoa(r.num) + r.casedVD()
}

// Basic returns the body, a hyphen and the check character: "18300252-K".
func (r RUT) Basic() string {
	if !r.set {
		return ""
	}
	return strconv.Itoa(r.num) + "-" + r.casedVD()
}

// Strict returns the body grouped by thousands, a hyphen and the check
// character: "18.300.252-K".
func (r RUT) Strict() string {
	if !r.set {
		return ""
	}
	return groupThousands(r.num) + "-" + r.casedVD()
}

// Format renders r with f. Unknown formats render as FormatRaw.
func (r RUT) Format(f Format) string {
	switch f {
	case FormatStrict:
		return r.Strict()
	case FormatBasic:
		return r.Basic()
	default:
		return r.Raw()
	}
}

// Formatted renders r with its effective format.
func (r RUT) Formatted() string {
	return r.Format(r.Config().Format)
}

// String implements fmt.Stringer using the effective format.
func (r RUT) String() string {
	return r.Formatted()
}

// Structured returns the body and the cased check character.
func (r RUT) Structured() Pair {
	if !r.set {
		return Pair{}
	}
	return Pair{Num: r.num, VD: r.casedVD()}
}

// Masked returns the strict form with everything but the first two and last
// two characters hidden, for logs: "18********-K".
func (r RUT) Masked() string {
	return sanitizer.MaskString(r.Strict(), 2)
}

// LogValue implements slog.LogValuer; logs only see the masked form.
func (r RUT) LogValue() slog.Value {
	return slog.StringValue(r.Masked())
}

func groupThousands(num int) string {
	digits := strconv.Itoa(num)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(groupSeparator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
