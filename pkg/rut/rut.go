package rut

import (
	"errors"
	"fmt"
	"strings"
)

type letterCase uint8

const (
	caseDefault letterCase = iota
	caseUpper
	caseLower
)

// Pair is the structured form of a RUT: its body and check character.
type Pair struct {
	Num int    `json:"num" yaml:"num"`
	VD  string `json:"vd" yaml:"vd"`
}

// RUT is a Chilean national identification number.
//
// The zero value is the absent RUT: it is not valid, formats to "" and
// encodes to JSON null. A RUT may hold a body and check character that do not
// match; validity is a query (IsValid), not a construction precondition.
// RUT values are comparable and safe to copy.
type RUT struct {
	num int
	vd  string
	set bool

	// presentation overrides; zero means "use DefaultConfig"
	format    Format
	letter    letterCase
	jsonShape JSONShape
}

// New returns a RUT holding num and vd as given, without checking the
// checksum. A negative num or a vd that is not exactly one character yields
// the absent RUT.
func New(num int, vd string) RUT {
	if num < 0 || len(vd) != 1 {
		return RUT{}
	}
	return RUT{num: num, vd: strings.ToUpper(vd), set: true}
}

// Parse cleans s and splits it into body and check character. The result may
// still be invalid; use IsValid to check the checksum. Input that does not
// contain a numeric body returns ErrMalformedInput.
func Parse(s string) (RUT, error) {
	num, vd, err := Separate(s)
	if err != nil {
		if errors.Is(err, ErrMalformedInput) {
			return RUT{}, err
		}
		return RUT{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return RUT{num: num, vd: vd, set: true}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) RUT {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Make builds a RUT from a string, []byte, fmt.Stringer, Pair or a two
// element []any pair. A RUT or *RUT is returned as is. Input that cannot be
// parsed yields the absent RUT; Make never panics.
func Make(v any) RUT {
	switch t := v.(type) {
	case RUT:
		return t
	case *RUT:
		if t == nil {
			return RUT{}
		}
		return *t
	case Pair:
		return New(t.Num, t.VD)
	case []any:
		if p, ok := pairFromSlice(t); ok {
			return New(p.Num, p.VD)
		}
		return RUT{}
	}

	text, ok := candidateText(v)
	if !ok {
		return RUT{}
	}
	r, err := Parse(text)
	if err != nil {
		return RUT{}
	}
	return r
}

// MakeOrElse works like Make but calls fallback with the original input when
// construction fails.
func MakeOrElse(v any, fallback func(v any) RUT) RUT {
	r := Make(v)
	if !r.set && fallback != nil {
		return fallback(v)
	}
	return r
}

// MakeOr works like Make but returns def when construction fails.
func MakeOr(v any, def RUT) RUT {
	return MakeOrElse(v, func(any) RUT { return def })
}

// Set parses s into an absent RUT. A RUT can be set only once; later calls
// return ErrAlreadySet. Together with String this makes *RUT a flag.Value.
func (r *RUT) Set(s string) error {
	if r.set {
		return ErrAlreadySet
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	r.num, r.vd, r.set = parsed.num, parsed.vd, true
	return nil
}

// IsSet reports whether the RUT holds a body and check character.
func (r RUT) IsSet() bool { return r.set }

// Num returns the numeric body, 0 for the absent RUT.
func (r RUT) Num() int { return r.num }

// VD returns the check character in the effective letter case.
func (r RUT) VD() string { return r.casedVD() }

// IsValid reports whether the check character matches the body.
func (r RUT) IsValid() bool {
	return r.set && matches(r.num, r.vd)
}

// IsInvalid is the negation of IsValid.
func (r RUT) IsInvalid() bool {
	return !r.IsValid()
}

// IsPerson reports whether the body is in [PersonMin, CompanyMin).
func (r RUT) IsPerson() bool {
	return r.set && isPersonNum(r.num)
}

// IsCompany reports whether the body is at least CompanyMin.
func (r RUT) IsCompany() bool {
	return r.set && isCompanyNum(r.num)
}

// IsEqualTo reports whether r and every other operand clean to the same RUT
// text. Empty operands (nil, "", absent RUTs) are ignored; if fewer than two
// operands remain, including r itself, the result is false. A single slice
// argument is unpacked one level, so compare against a body and check
// character with rut.Pair rather than []any{num, vd}.
func (r RUT) IsEqualTo(others ...any) bool {
	operands := make([]any, 0, len(others)+1)
	if r.set {
		operands = append(operands, r)
	}
	for _, o := range unpack(others) {
		if !isEmptyOperand(o) {
			operands = append(operands, o)
		}
	}
	return equalCleaned(operands)
}

func isEmptyOperand(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []byte:
		return len(t) == 0
	case RUT:
		return !t.set
	case *RUT:
		return t == nil || !t.set
	}
	return false
}

// WithFormat returns a copy of r that formats with f.
func (r RUT) WithFormat(f Format) RUT {
	r.format = f
	return r
}

// Uppercase returns a copy of r that renders K in uppercase.
func (r RUT) Uppercase() RUT {
	r.letter = caseUpper
	return r
}

// Lowercase returns a copy of r that renders K in lowercase.
func (r RUT) Lowercase() RUT {
	r.letter = caseLower
	return r
}

// WithJSONShape returns a copy of r that encodes with s.
func (r RUT) WithJSONShape(s JSONShape) RUT {
	r.jsonShape = s
	return r
}

// WithConfig returns a copy of r that uses every setting of cfg instead of the
// process-wide defaults.
func (r RUT) WithConfig(cfg Config) RUT {
	r.format = cfg.Format
	r.jsonShape = cfg.JSONShape
	if cfg.Uppercase {
		r.letter = caseUpper
	} else {
		r.letter = caseLower
	}
	return r
}

// Config returns the effective presentation settings of r.
func (r RUT) Config() Config {
	cfg := DefaultConfig()
	if r.format.Valid() {
		cfg.Format = r.format
	}
	if r.jsonShape.Valid() {
		cfg.JSONShape = r.jsonShape
	}
	switch r.letter {
	case caseUpper:
		cfg.Uppercase = true
	case caseLower:
		cfg.Uppercase = false
	}
	return cfg
}

func (r RUT) casedVD() string {
	if r.Config().Uppercase {
		return strings.ToUpper(r.vd)
	}
	return strings.ToLower(r.vd)
}
