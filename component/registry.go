package component

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/metric"
	"github.com/Atlasbruce/olympe/param"
)

// Factory produces a default-constructed component instance.
// Factories allocate only; they never perform I/O and never read the
// schema store.
type Factory func() any

// Field describes one named field of a plain-data component
type Field struct {
	Name string     `json:"name"`
	Type param.Type `json:"type"`
}

// Registration holds everything a module supplies when registering a
// component type. It maps 1:1 to the Descriptor the registry retains.
type Registration struct {
	Name        string  // Stable type name (e.g. "Health_data"), globally unique
	Factory     Factory // Produces a default-constructed instance
	Fields      []Field // Named fields, in declaration order
	Description string  // Human-readable description
}

// Descriptor identifies one registered component type. Descriptors are
// created once at registration and are immutable afterward; the registry
// owns them for the process lifetime.
type Descriptor struct {
	name        string
	description string
	factory     Factory
	fields      []Field
	fieldIndex  map[string]int
}

// Name returns the stable type name
func (d *Descriptor) Name() string { return d.name }

// Description returns the human-readable description
func (d *Descriptor) Description() string { return d.description }

// New returns a default-constructed instance of the component
func (d *Descriptor) New() any { return d.factory() }

// Fields returns the component's named fields in declaration order.
// The caller must not modify the returned slice.
func (d *Descriptor) Fields() []Field { return d.fields }

// Field looks up a field by name
func (d *Descriptor) Field(name string) (Field, bool) {
	idx, ok := d.fieldIndex[name]
	if !ok {
		return Field{}, false
	}
	return d.fields[idx], true
}

// Registry is the process-wide catalog of component type descriptors.
// It provides thread-safe registration and lookup, and preserves
// registration order for iteration: discovery and tooling rely on stable
// iteration for reproducible schema generation.
type Registry struct {
	byName  map[string]*Descriptor
	ordered []*Descriptor
	metrics *metric.Metrics
	mu      sync.RWMutex
}

// NewRegistry creates a new empty component type registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Descriptor),
	}
}

// SetMetrics attaches platform metrics to the registry. Call before
// registration begins; a nil metrics value disables reporting.
func (r *Registry) SetMetrics(m *metric.Metrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = m
}

// Register registers a component type descriptor.
// Returns ErrDuplicateType if the type name is already registered; a
// duplicate registration is a programming error, never retried. There is
// no unregister operation: entries live until process teardown.
func (r *Registry) Register(reg Registration) error {
	if err := validateTypeName(reg.Name); err != nil {
		return errors.Wrap(err, "Registry", "Register", "type name validation")
	}
	if reg.Factory == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "Register", "factory validation")
	}
	for _, f := range reg.Fields {
		if f.Name == "" || !f.Type.Valid() {
			return errors.WrapInvalid(
				fmt.Errorf("%w: field %q of %q", errors.ErrInvalidConfig, f.Name, reg.Name),
				"Registry", "Register", "field validation")
		}
	}

	desc := &Descriptor{
		name:        reg.Name,
		description: reg.Description,
		factory:     reg.Factory,
		fields:      append([]Field(nil), reg.Fields...),
		fieldIndex:  make(map[string]int, len(reg.Fields)),
	}
	for i, f := range desc.fields {
		if _, dup := desc.fieldIndex[f.Name]; dup {
			return errors.WrapInvalid(
				fmt.Errorf("%w: duplicate field %q of %q", errors.ErrInvalidConfig, f.Name, reg.Name),
				"Registry", "Register", "field validation")
		}
		desc.fieldIndex[f.Name] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[reg.Name]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %q", errors.ErrDuplicateType, reg.Name),
			"Registry", "Register", "duplicate type check")
	}

	r.byName[reg.Name] = desc
	r.ordered = append(r.ordered, desc)
	if r.metrics != nil {
		r.metrics.ComponentTypes.Set(float64(len(r.ordered)))
	}
	return nil
}

// Lookup returns the descriptor for a registered type name.
// Returns ErrUnknownComponentType if no such type is registered.
func (r *Registry) Lookup(typeName string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, exists := r.byName[typeName]
	if !exists {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %q", errors.ErrUnknownComponentType, typeName),
			"Registry", "Lookup", "type lookup")
	}
	return desc, nil
}

// ForEach visits every registered descriptor in registration order.
// The visitor returns false to stop early. Each call restarts from the
// first registration; the sequence is stable across calls.
func (r *Registry) ForEach(visit func(*Descriptor) bool) {
	r.mu.RLock()
	snapshot := make([]*Descriptor, len(r.ordered))
	copy(snapshot, r.ordered)
	r.mu.RUnlock()

	for _, desc := range snapshot {
		if !visit(desc) {
			return
		}
	}
}

// Types returns all registered type names in registration order
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.ordered))
	for i, desc := range r.ordered {
		names[i] = desc.name
	}
	return names
}

// Len returns the number of registered component types
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// MaxNameLength bounds type and parameter names accepted by the registry
const MaxNameLength = 256

// validateTypeName validates component type names
func validateTypeName(name string) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "validateTypeName", "empty name")
	}
	if len(name) > MaxNameLength {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "validateTypeName", "name too long")
	}
	if strings.ContainsAny(name, "\x00\n\r\t ") {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "validateTypeName", "invalid name characters")
	}
	return nil
}
