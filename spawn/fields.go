package spawn

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/param"
)

// SetField assigns a validated parameter value onto the named field of a
// component instance. The instance must be a pointer to struct. Fields are
// matched by json tag first, then by case-insensitive Go field name.
//
// Returns false with a nil error when the struct has no matching field:
// permissive validation lets free-form extension parameters through, and
// those simply have nowhere to land on a plain-data record.
func SetField(instance any, name string, value param.Value) (bool, error) {
	val := reflect.ValueOf(instance)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return false, errors.WrapInvalid(
			fmt.Errorf("%w: component must be a pointer to struct, got %T", errors.ErrInvalidConfig, instance),
			"Spawner", "SetField", "instance validation")
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return false, errors.WrapInvalid(
			fmt.Errorf("%w: component is not a struct: %T", errors.ErrInvalidConfig, instance),
			"Spawner", "SetField", "instance validation")
	}

	field, ok := findField(val, name)
	if !ok {
		return false, nil
	}
	if !field.CanSet() {
		return false, errors.WrapInvalid(
			fmt.Errorf("%w: field %q cannot be set", errors.ErrInvalidConfig, name),
			"Spawner", "SetField", "field access")
	}

	if err := assign(field, name, value); err != nil {
		return false, err
	}
	return true, nil
}

// findField locates a struct field by json tag, then by case-insensitive name
func findField(val reflect.Value, name string) (reflect.Value, bool) {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if strings.Split(tag, ",")[0] == name {
			return val.Field(i), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		if strings.EqualFold(t.Field(i).Name, name) {
			return val.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// assign writes a tagged value into a struct field, converting between the
// Go kinds a plain-data component may declare.
func assign(field reflect.Value, name string, value param.Value) error {
	switch value.Type() {
	case param.TypeInt:
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			field.SetInt(value.IntValue())
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if value.IntValue() >= 0 {
				field.SetUint(uint64(value.IntValue()))
				return nil
			}
		case reflect.Float32, reflect.Float64:
			field.SetFloat(float64(value.IntValue()))
			return nil
		}

	case param.TypeFloat:
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			field.SetFloat(value.FloatValue())
			return nil
		}

	case param.TypeBool:
		if field.Kind() == reflect.Bool {
			field.SetBool(value.BoolValue())
			return nil
		}

	case param.TypeString:
		if field.Kind() == reflect.String {
			field.SetString(value.StringValue())
			return nil
		}

	case param.TypeVec2:
		vec := reflect.ValueOf(value.VecValue())
		if vec.Type().AssignableTo(field.Type()) {
			field.Set(vec)
			return nil
		}
	}

	return errors.WrapInvalid(
		fmt.Errorf("%w: cannot assign %s to field %q of kind %s",
			errors.ErrParameterTypeMismatch, value.Type(), name, field.Kind()),
		"Spawner", "SetField", "field assignment")
}
