package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"duplicate type", ErrDuplicateType, true},
		{"unknown component type", ErrUnknownComponentType, true},
		{"schema type mismatch", ErrSchemaTypeMismatch, true},
		{"alias conflict", ErrAliasConflict, true},
		{"parameter type mismatch", ErrParameterTypeMismatch, true},
		{"missing required parameter", ErrMissingRequiredParameter, true},
		{"unrecognized parameter type", ErrUnrecognizedParameterType, true},
		{"malformed document", ErrMalformedDocument, true},
		{"wrapped sentinel", fmt.Errorf("loading: %w", ErrDuplicateType), true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
		{"plain error", fmt.Errorf("something else"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
		{"sentinel", ErrDuplicateType, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	if Classify(ErrParameterTypeMismatch) != ErrorInvalid {
		t.Error("expected sentinel to classify as invalid")
	}
	if Classify(&ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("boom")}) != ErrorFatal {
		t.Error("expected classified fatal to classify as fatal")
	}
	if Classify(fmt.Errorf("unknown")) != ErrorInvalid {
		t.Error("expected unknown error to default to invalid")
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("boom")

	err := Wrap(base, "SchemaStore", "RegisterParameterSchema", "default type check")
	if err == nil {
		t.Fatal("expected wrapped error")
	}
	expected := "SchemaStore.RegisterParameterSchema: default type check failed: boom"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to base")
	}

	if Wrap(nil, "a", "b", "c") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapInvalid(t *testing.T) {
	err := WrapInvalid(ErrSchemaTypeMismatch, "SchemaStore", "RegisterParameterSchema", "default validation")
	if err == nil {
		t.Fatal("expected error")
	}

	var ce *ClassifiedError
	if !errors.As(err, &ce) {
		t.Fatal("expected ClassifiedError")
	}
	if ce.Class != ErrorInvalid {
		t.Errorf("expected invalid class, got %s", ce.Class)
	}
	if ce.Component != "SchemaStore" || ce.Operation != "RegisterParameterSchema" {
		t.Errorf("unexpected context: %s.%s", ce.Component, ce.Operation)
	}
	if !errors.Is(err, ErrSchemaTypeMismatch) {
		t.Error("classified error should unwrap to sentinel")
	}
	if !strings.Contains(err.Error(), "default validation failed") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	if WrapInvalid(nil, "a", "b", "c") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapFatal(t *testing.T) {
	err := WrapFatal(fmt.Errorf("registry cannot be nil"), "Bootstrap", "Register", "registry validation")
	if !IsFatal(err) {
		t.Error("expected fatal classification")
	}
	if IsInvalid(err) {
		t.Error("fatal error should not classify as invalid")
	}

	if WrapFatal(nil, "a", "b", "c") != nil {
		t.Error("wrapping nil should return nil")
	}
}
