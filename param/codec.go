package param

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/Atlasbruce/olympe/errors"
)

// MarshalJSON encodes the type as its document-level tag ("int", "vec2", ...)
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a document-level type tag
func (t *Type) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return errors.WrapInvalid(err, "Param", "UnmarshalJSON", "type tag decoding")
	}
	parsed, err := ParseType(tag)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the type as its document-level tag
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes a document-level type tag
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var tag string
	if err := node.Decode(&tag); err != nil {
		return errors.WrapInvalid(err, "Param", "UnmarshalYAML", "type tag decoding")
	}
	parsed, err := ParseType(tag)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes the payload without the tag; the tag is recoverable
// from the JSON shape on the way back in.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON scalar, object vector, or array vector.
// Numbers are decoded through json.Number so integer payloads keep the
// int tag instead of collapsing to float64.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return errors.WrapInvalid(err, "Param", "UnmarshalJSON", "payload decoding")
	}

	val, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalYAML encodes the payload as a plain YAML scalar or mapping
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// UnmarshalYAML decodes a YAML scalar, mapping vector, or sequence vector
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return errors.WrapInvalid(err, "Param", "UnmarshalYAML", "payload decoding")
	}

	val, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}
