package rut

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dmitrymomot/rutkit/pkg/config"
)

// Format selects one of the canonical string representations of a RUT.
type Format string

const (
	// FormatStrict groups the body by thousands: "18.300.252-K".
	FormatStrict Format = "strict"
	// FormatBasic keeps the body unpunctuated: "18300252-K".
	FormatBasic Format = "basic"
	// FormatRaw drops every separator: "18300252K".
	FormatRaw Format = "raw"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatStrict, FormatBasic, FormatRaw:
		return true
	}
	return false
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	v := Format(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	*f = v
	return nil
}

// JSONShape selects how a RUT is encoded to JSON and YAML.
type JSONShape string

const (
	// JSONString encodes a RUT as its formatted string.
	JSONString JSONShape = "string"
	// JSONObject encodes a RUT as {"num": 18300252, "vd": "K"}.
	JSONObject JSONShape = "object"
)

// Valid reports whether s is a known JSON shape.
func (s JSONShape) Valid() bool {
	return s == JSONString || s == JSONObject
}

func (s JSONShape) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *JSONShape) UnmarshalText(text []byte) error {
	v := JSONShape(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidJSONShape, text)
	}
	*s = v
	return nil
}

// Config holds the presentation defaults applied to RUT values that do not
// override them.
type Config struct {
	// Uppercase renders the K check character in uppercase.
	Uppercase bool `env:"RUT_UPPERCASE" envDefault:"true"`
	// Format is used by String and Formatted.
	Format Format `env:"RUT_FORMAT" envDefault:"strict"`
	// JSONShape is used by the JSON and YAML encoders.
	JSONShape JSONShape `env:"RUT_JSON_SHAPE" envDefault:"string"`
}

// Validate checks that every field holds a known value.
func (c Config) Validate() error {
	var errs []error
	if !c.Format.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format))
	}
	if !c.JSONShape.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidJSONShape, c.JSONShape))
	}
	return errors.Join(errs...)
}

var builtinConfig = Config{
	Uppercase: true,
	Format:    FormatStrict,
	JSONShape: JSONString,
}

var defaults atomic.Pointer[Config]

func init() {
	ResetDefaultConfig()
}

// DefaultConfig returns the process-wide presentation defaults.
func DefaultConfig() Config {
	return *defaults.Load()
}

// SetDefaultConfig replaces the process-wide presentation defaults.
// Values that carry their own overrides are not affected.
func SetDefaultConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	defaults.Store(&cfg)
	return nil
}

// ResetDefaultConfig restores uppercase, strict format and string JSON shape.
func ResetDefaultConfig() {
	cfg := builtinConfig
	defaults.Store(&cfg)
}

// LoadConfig reads RUT_UPPERCASE, RUT_FORMAT and RUT_JSON_SHAPE from the
// environment. It does not change the process-wide defaults; pass the result
// to SetDefaultConfig for that.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
