package rut

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes r as its formatted string or as a {"num","vd"} object,
// depending on the effective JSON shape. The absent RUT encodes as null.
func (r RUT) MarshalJSON() ([]byte, error) {
	if !r.set {
		return []byte("null"), nil
	}
	if r.Config().JSONShape == JSONObject {
		return json.Marshal(r.Structured())
	}
	return json.Marshal(r.Formatted())
}

// UnmarshalJSON accepts a RUT string, a {"num","vd"} object or null.
// Unlike Set it replaces any value already held; presentation overrides are kept.
func (r *RUT) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return r.replaceText(s)
	case len(data) > 0 && data[0] == '{':
		var p Pair
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		return r.replacePair(p)
	default:
		return fmt.Errorf("%w: unexpected json %s", ErrMalformedInput, data)
	}
}

// MarshalText implements encoding.TextMarshaler using the effective format.
func (r RUT) MarshalText() ([]byte, error) {
	return []byte(r.Formatted()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text leaves r untouched.
func (r *RUT) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	return r.replaceText(string(text))
}

// MarshalYAML implements yaml.Marshaler with the same shapes as MarshalJSON.
func (r RUT) MarshalYAML() (any, error) {
	if !r.set {
		return nil, nil
	}
	if r.Config().JSONShape == JSONObject {
		return r.Structured(), nil
	}
	return r.Formatted(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalars and {num, vd} mappings.
func (r *RUT) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return r.replaceText(node.Value)
	case yaml.MappingNode:
		var p Pair
		if err := node.Decode(&p); err != nil {
			return err
		}
		return r.replacePair(p)
	default:
		return fmt.Errorf("%w: unexpected yaml node at line %d", ErrMalformedInput, node.Line)
	}
}

func (r *RUT) replaceText(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	r.num, r.vd, r.set = parsed.num, parsed.vd, true
	return nil
}

func (r *RUT) replacePair(p Pair) error {
	parsed := New(p.Num, p.VD)
	if !parsed.set {
		return fmt.Errorf("%w: pair %d/%q", ErrMalformedInput, p.Num, p.VD)
	}
	r.num, r.vd, r.set = parsed.num, parsed.vd, true
	return nil
}
