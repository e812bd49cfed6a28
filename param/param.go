// Package param defines the closed set of value kinds the blueprint schema
// understands, and a tagged-union Value type carrying one payload of that set.
//
// Values cross a textual boundary: blueprint documents (JSON or YAML) decode
// into Go scalars, which FromAny converts into tagged Values. Anything the
// closed set does not recognize is rejected at that boundary with
// ErrUnrecognizedParameterType, before it ever reaches the schema store.
package param

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Atlasbruce/olympe/errors"
)

// Type identifies one of the value kinds the schema understands
type Type int

const (
	// TypeInvalid is the zero Type; no valid Value carries it
	TypeInvalid Type = iota
	// TypeInt is a 64-bit signed integer
	TypeInt
	// TypeFloat is a 64-bit float
	TypeFloat
	// TypeBool is a boolean
	TypeBool
	// TypeString is a string
	TypeString
	// TypeVec2 is a two-component vector composite
	TypeVec2
)

// String returns the document-level tag for the type
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeVec2:
		return "vec2"
	default:
		return "invalid"
	}
}

// Valid reports whether t is a member of the closed set
func (t Type) Valid() bool {
	return t >= TypeInt && t <= TypeVec2
}

// ParseType resolves a document-level type tag to a Type.
// Unknown tags fail with ErrUnrecognizedParameterType.
func ParseType(tag string) (Type, error) {
	switch tag {
	case "int":
		return TypeInt, nil
	case "float":
		return TypeFloat, nil
	case "bool":
		return TypeBool, nil
	case "string":
		return TypeString, nil
	case "vec2":
		return TypeVec2, nil
	default:
		return TypeInvalid, errors.WrapInvalid(
			fmt.Errorf("%w: %q", errors.ErrUnrecognizedParameterType, tag),
			"Param", "ParseType", "type tag resolution")
	}
}

// Vec2 is the vector composite payload
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Value is a tagged union carrying one Type's payload.
// Values are copyable; the zero Value has TypeInvalid and is not usable.
type Value struct {
	typ Type
	i   int64
	f   float64
	b   bool
	s   string
	v   Vec2
}

// Int constructs an integer Value
func Int(v int64) Value { return Value{typ: TypeInt, i: v} }

// Float constructs a float Value
func Float(v float64) Value { return Value{typ: TypeFloat, f: v} }

// Bool constructs a boolean Value
func Bool(v bool) Value { return Value{typ: TypeBool, b: v} }

// String constructs a string Value
func String(v string) Value { return Value{typ: TypeString, s: v} }

// Vec constructs a vector Value
func Vec(x, y float64) Value { return Value{typ: TypeVec2, v: Vec2{X: x, Y: y}} }

// Zero returns the zero Value for a type (0, 0.0, false, "", {0,0}).
// Zero of an invalid type returns the zero Value.
func Zero(t Type) Value {
	switch t {
	case TypeInt:
		return Int(0)
	case TypeFloat:
		return Float(0)
	case TypeBool:
		return Bool(false)
	case TypeString:
		return String("")
	case TypeVec2:
		return Vec(0, 0)
	default:
		return Value{}
	}
}

// Type returns the value's tag
func (v Value) Type() Type { return v.typ }

// Is reports whether the value's tag equals t
func (v Value) Is(t Type) bool { return v.typ == t }

// Equal reports whether two values have the same tag and payload
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeInt:
		return v.i == o.i
	case TypeFloat:
		return v.f == o.f
	case TypeBool:
		return v.b == o.b
	case TypeString:
		return v.s == o.s
	case TypeVec2:
		return v.v == o.v
	default:
		return true
	}
}

// IntValue returns the integer payload, or 0 if the tag differs
func (v Value) IntValue() int64 {
	if v.typ != TypeInt {
		return 0
	}
	return v.i
}

// FloatValue returns the float payload, or 0 if the tag differs
func (v Value) FloatValue() float64 {
	if v.typ != TypeFloat {
		return 0
	}
	return v.f
}

// BoolValue returns the boolean payload, or false if the tag differs
func (v Value) BoolValue() bool {
	if v.typ != TypeBool {
		return false
	}
	return v.b
}

// StringValue returns the string payload, or "" if the tag differs
func (v Value) StringValue() string {
	if v.typ != TypeString {
		return ""
	}
	return v.s
}

// VecValue returns the vector payload, or the zero vector if the tag differs
func (v Value) VecValue() Vec2 {
	if v.typ != TypeVec2 {
		return Vec2{}
	}
	return v.v
}

// Interface returns the payload as an untyped value for field assignment
func (v Value) Interface() any {
	switch v.typ {
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeBool:
		return v.b
	case TypeString:
		return v.s
	case TypeVec2:
		return v.v
	default:
		return nil
	}
}

// GoString formats the value for diagnostics: "int(5)", "string(\"ok\")"
func (v Value) GoString() string {
	switch v.typ {
	case TypeInt:
		return fmt.Sprintf("int(%d)", v.i)
	case TypeFloat:
		return fmt.Sprintf("float(%g)", v.f)
	case TypeBool:
		return fmt.Sprintf("bool(%t)", v.b)
	case TypeString:
		return fmt.Sprintf("string(%q)", v.s)
	case TypeVec2:
		return fmt.Sprintf("vec2(%g,%g)", v.v.X, v.v.Y)
	default:
		return "invalid"
	}
}

// ConvertTo returns the value converted to the target type, when the
// conversion is lossless. JSON decodes every number as float64, so an
// integer-valued float converts to int and an int converts to float; every
// other cross-tag conversion is refused.
func (v Value) ConvertTo(t Type) (Value, bool) {
	if v.typ == t {
		return v, true
	}
	switch {
	case v.typ == TypeFloat && t == TypeInt:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return Int(int64(v.f)), true
		}
	case v.typ == TypeInt && t == TypeFloat:
		return Float(float64(v.i)), true
	}
	return Value{}, false
}

// FromAny converts a decoded document scalar into a tagged Value.
//
// Recognized payloads: bool, string, the Go integer and float kinds,
// json.Number, a Vec2, a map with numeric "x"/"y" entries, and a two-element
// numeric array. An existing Value passes through unchanged. Anything else
// fails with ErrUnrecognizedParameterType.
func FromAny(raw any) (Value, error) {
	switch val := raw.(type) {
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return Value{}, errors.WrapInvalid(
				fmt.Errorf("%w: integer %d overflows", errors.ErrUnrecognizedParameterType, val),
				"Param", "FromAny", "integer conversion")
		}
		return Int(int64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		if val > math.MaxInt64 {
			return Value{}, errors.WrapInvalid(
				fmt.Errorf("%w: integer %d overflows", errors.ErrUnrecognizedParameterType, val),
				"Param", "FromAny", "integer conversion")
		}
		return Int(int64(val)), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return Value{}, errors.WrapInvalid(
				fmt.Errorf("%w: malformed number %q", errors.ErrUnrecognizedParameterType, val.String()),
				"Param", "FromAny", "number conversion")
		}
		return Float(f), nil
	case Vec2:
		return Value{typ: TypeVec2, v: val}, nil
	case map[string]any:
		return vecFromMap(val)
	case []any:
		return vecFromSlice(val)
	default:
		return Value{}, errors.WrapInvalid(
			fmt.Errorf("%w: %T", errors.ErrUnrecognizedParameterType, raw),
			"Param", "FromAny", "payload conversion")
	}
}

// vecFromMap converts {"x": n, "y": n} into a vector Value
func vecFromMap(m map[string]any) (Value, error) {
	x, okX := numeric(m["x"])
	y, okY := numeric(m["y"])
	if !okX || !okY || len(m) != 2 {
		return Value{}, errors.WrapInvalid(
			fmt.Errorf("%w: object is not a vector", errors.ErrUnrecognizedParameterType),
			"Param", "FromAny", "vector conversion")
	}
	return Vec(x, y), nil
}

// vecFromSlice converts [x, y] into a vector Value
func vecFromSlice(s []any) (Value, error) {
	if len(s) != 2 {
		return Value{}, errors.WrapInvalid(
			fmt.Errorf("%w: array of length %d is not a vector", errors.ErrUnrecognizedParameterType, len(s)),
			"Param", "FromAny", "vector conversion")
	}
	x, okX := numeric(s[0])
	y, okY := numeric(s[1])
	if !okX || !okY {
		return Value{}, errors.WrapInvalid(
			fmt.Errorf("%w: non-numeric vector element", errors.ErrUnrecognizedParameterType),
			"Param", "FromAny", "vector conversion")
	}
	return Vec(x, y), nil
}

func numeric(raw any) (float64, bool) {
	switch val := raw.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
