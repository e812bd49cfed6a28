package component

import (
	stderrors "errors"
	"fmt"

	"github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/param"
)

// Param is one (name, value) pair supplied by a blueprint for a component
type Param struct {
	Name  string
	Value param.Value
}

// TypeMismatchError reports a supplied value whose tag does not satisfy the
// schema entry's expected type.
type TypeMismatchError struct {
	Parameter string
	Expected  param.Type
	Got       param.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter %q expects %s, got %s", e.Parameter, e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return errors.ErrParameterTypeMismatch }

// MissingParameterError reports a required parameter the blueprint did not supply
type MissingParameterError struct {
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %q not supplied", e.Parameter)
}

func (e *MissingParameterError) Unwrap() error { return errors.ErrMissingRequiredParameter }

// UnknownParameterError reports an unschematized parameter rejected by
// strict mode. Permissive mode never produces it.
type UnknownParameterError struct {
	Parameter string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("parameter %q has no schema entry", e.Parameter)
}

func (e *UnknownParameterError) Unwrap() error { return errors.ErrNotFound }

// MapParameters is the validation/mapping engine. Given a component type
// name and the blueprint's supplied parameters, it resolves aliases, checks
// each value against the schema, substitutes defaults for omissions, and
// emits the target-field to value map component construction consumes.
//
// The whole component fails on any violation: the returned error joins
// every diagnostic found (type mismatches, missing required parameters,
// and in strict mode unknown parameters), and no partial map is returned.
// The engine hands back data only; it never touches component memory.
func (s *Store) MapParameters(componentType string, params []Param) (map[string]param.Value, error) {
	s.mu.RLock()
	schema := s.schemas[componentType]

	result := make(map[string]param.Value)
	supplied := make(map[string]struct{}, len(params))
	var issues []error

	for _, p := range params {
		entry, ok := s.resolveEntryLocked(schema, p.Name)
		if !ok {
			if s.mode == Strict {
				issues = append(issues, &UnknownParameterError{Parameter: p.Name})
				continue
			}
			// Unschematized parameters pass through; the target field
			// defaults to the parameter name itself.
			result[p.Name] = p.Value
			continue
		}

		// Supplied means supplied: a mistyped value still counts, so the
		// required check never piles a false "not supplied" onto a mismatch.
		supplied[entry.Parameter] = struct{}{}

		value, convertible := p.Value.ConvertTo(entry.Type)
		if !convertible {
			issues = append(issues, &TypeMismatchError{
				Parameter: p.Name,
				Expected:  entry.Type,
				Got:       p.Value.Type(),
			})
			continue
		}

		result[entry.Field] = value
	}

	if schema != nil {
		for name := range schema.required {
			if _, ok := supplied[name]; !ok {
				issues = append(issues, &MissingParameterError{Parameter: name})
			}
		}
		for name, entry := range schema.entries {
			if _, ok := supplied[name]; ok {
				continue
			}
			if entry.Required {
				continue // already reported as missing
			}
			result[entry.Field] = entry.Default
		}
	}
	s.mu.RUnlock()

	if len(issues) > 0 {
		if s.metrics != nil {
			s.metrics.Validations.WithLabelValues(componentType, "error").Inc()
		}
		s.log.Warn("component validation failed",
			"component", componentType, "issues", len(issues))
		return nil, errors.WrapInvalid(stderrors.Join(issues...),
			"SchemaStore", "MapParameters", fmt.Sprintf("component %q validation", componentType))
	}

	if s.metrics != nil {
		s.metrics.Validations.WithLabelValues(componentType, "ok").Inc()
	}
	return result, nil
}

// resolveEntryLocked resolves a supplied parameter name against one
// component's schema: direct lookup first, then through the alias table.
// Callers hold s.mu.
func (s *Store) resolveEntryLocked(schema *Schema, name string) (Entry, bool) {
	if schema == nil {
		return Entry{}, false
	}
	if e, ok := schema.entries[name]; ok {
		return e, true
	}
	if canonical, ok := s.aliases[name]; ok {
		if e, ok := schema.entries[canonical]; ok {
			return e, true
		}
	}
	return Entry{}, false
}
