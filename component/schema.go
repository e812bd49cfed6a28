package component

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/metric"
	"github.com/Atlasbruce/olympe/param"
)

// Mode selects how the store treats parameters that have no schema entry
type Mode int

const (
	// Permissive accepts unschematized parameters as-is. Components may
	// carry free-form extension fields, so openness is the default policy.
	Permissive Mode = iota
	// Strict rejects any parameter without a schema entry
	Strict
)

// String returns the mode name
func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "permissive"
}

// Entry is one mapping rule from a blueprint parameter to a component field.
//
// The default value's tag must equal Type unless the entry is required, in
// which case the default is unused and may be the zero Value.
type Entry struct {
	Parameter string      `json:"parameter"`         // Unique within the owning component's schema
	Component string      `json:"component"`         // Owning component type name (weak reference)
	Field     string      `json:"field"`             // Target field in the component
	Type      param.Type  `json:"type"`              // Expected value type
	Required  bool        `json:"required"`          // Whether the blueprint must supply the parameter
	Default   param.Value `json:"default,omitempty"` // Substituted when the parameter is omitted
}

// Schema aggregates the parameter entries declared for one component type.
// The component key is resolved against the registry on use, never held as
// a hard link: an unresolvable key surfaces as unknown type, not a crash.
type Schema struct {
	Component string
	entries   map[string]Entry
	required  map[string]struct{}
}

// Entry looks up an entry by its canonical parameter name
func (s *Schema) Entry(parameter string) (Entry, bool) {
	e, ok := s.entries[parameter]
	return e, ok
}

// Len returns the number of entries in the schema
func (s *Schema) Len() int { return len(s.entries) }

// Required returns the names of the schema's required parameters.
// The required set is always a subset of the declared entries.
func (s *Schema) Required() []string {
	names := make([]string, 0, len(s.required))
	for name := range s.required {
		names = append(names, name)
	}
	return names
}

// Entries returns a copy of the schema's entries keyed by parameter name
func (s *Schema) Entries() map[string]Entry {
	out := make(map[string]Entry, len(s.entries))
	for name, e := range s.entries {
		out[name] = e
	}
	return out
}

// targetsField reports whether any entry maps onto the given field
func (s *Schema) targetsField(field string) bool {
	for _, e := range s.entries {
		if e.Field == field {
			return true
		}
	}
	return false
}

// StoreConfig configures a schema store. The zero value is usable:
// permissive mode, discarded logs, no metrics.
type StoreConfig struct {
	Mode    Mode
	Logger  *slog.Logger
	Metrics *metric.Metrics
}

// Store is the parameter schema store: per-component schema tables, the
// global alias table, and the reverse index from parameter name to owning
// component type.
//
// Registration and discovery mutate the store during content loading; the
// simulation only reads. All operations are safe for concurrent use, with
// a read-mostly lock so lookups during simulation stay cheap.
type Store struct {
	mode    Mode
	log     *slog.Logger
	metrics *metric.Metrics

	mu      sync.RWMutex
	schemas map[string]*Schema
	reverse map[string]string // parameter name -> owning component type
	aliases map[string]string // alias -> canonical parameter name

	initOnce sync.Once
}

// NewStore creates a new empty schema store
func NewStore(cfg StoreConfig) *Store {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		mode:    cfg.Mode,
		log:     log,
		metrics: cfg.Metrics,
		schemas: make(map[string]*Schema),
		reverse: make(map[string]string),
		aliases: make(map[string]string),
	}
}

// Mode returns the store's validation mode
func (s *Store) Mode() Mode { return s.mode }

// EnsureInitialized populates built-in schemas for every component type the
// registry knows at the time of the first call, by discovering each
// descriptor's fields. Subsequent calls are no-ops; concurrent first callers
// are serialized so initialization runs exactly once.
func (s *Store) EnsureInitialized(reg *Registry) {
	s.initOnce.Do(func() {
		total := 0
		reg.ForEach(func(desc *Descriptor) bool {
			total += s.DiscoverComponentSchema(desc)
			return true
		})
		s.log.Debug("schema store initialized",
			"components", reg.Len(), "synthesized", total)
	})
}

// RegisterParameterSchema inserts or replaces the entry under its
// (component, parameter) key, updating the reverse index and the required
// set. A default whose tag mismatches the expected type is rejected with
// ErrSchemaTypeMismatch. An omitted default on an optional entry is filled
// with the type's zero value.
func (s *Store) RegisterParameterSchema(e Entry) error {
	if e.Parameter == "" || e.Component == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig,
			"SchemaStore", "RegisterParameterSchema", "entry key validation")
	}
	if !e.Type.Valid() {
		return errors.WrapInvalid(
			fmt.Errorf("%w: parameter %q", errors.ErrUnrecognizedParameterType, e.Parameter),
			"SchemaStore", "RegisterParameterSchema", "expected type validation")
	}
	if e.Field == "" {
		e.Field = e.Parameter
	}

	if e.Required {
		// Default is unused for required entries; keep the zero value
		// so the invariant is visible in exports.
		e.Default = param.Zero(e.Type)
	} else {
		if e.Default.Type() == param.TypeInvalid {
			e.Default = param.Zero(e.Type)
		}
		if !e.Default.Is(e.Type) {
			return errors.WrapInvalid(
				fmt.Errorf("%w: parameter %q expects %s, default is %s",
					errors.ErrSchemaTypeMismatch, e.Parameter, e.Type, e.Default.Type()),
				"SchemaStore", "RegisterParameterSchema", "default type check")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	schema, exists := s.schemas[e.Component]
	if !exists {
		schema = &Schema{
			Component: e.Component,
			entries:   make(map[string]Entry),
			required:  make(map[string]struct{}),
		}
		s.schemas[e.Component] = schema
		if s.metrics != nil {
			s.metrics.ComponentSchemas.Inc()
		}
	}

	schema.entries[e.Parameter] = e
	if e.Required {
		schema.required[e.Parameter] = struct{}{}
	} else {
		delete(schema.required, e.Parameter)
	}

	// Parameter names are unique across the catalog by convention, not by
	// hard constraint. The reverse index keeps the first owner on a clash
	// so existing lookups never silently re-target.
	if owner, taken := s.reverse[e.Parameter]; taken && owner != e.Component {
		s.log.Warn("parameter name already indexed for another component",
			"parameter", e.Parameter, "owner", owner, "component", e.Component)
	} else {
		s.reverse[e.Parameter] = e.Component
	}

	if s.metrics != nil {
		s.metrics.SchemaEntries.WithLabelValues(e.Component).Inc()
	}
	return nil
}

// RegisterAlias maps an alternate accepted name onto a canonical parameter
// name. An alias must not equal an existing canonical parameter name, and an
// alias already bound to a different canonical name stays bound to the first
// registration; both conflicts fail with ErrAliasConflict. Re-registering
// the same mapping is a no-op.
func (s *Store) RegisterAlias(alias, canonical string) error {
	if alias == "" || canonical == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig,
			"SchemaStore", "RegisterAlias", "alias validation")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, isCanonical := s.reverse[alias]; isCanonical {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %q is a canonical parameter name", errors.ErrAliasConflict, alias),
			"SchemaStore", "RegisterAlias", "canonical name collision check")
	}
	if existing, bound := s.aliases[alias]; bound {
		if existing == canonical {
			return nil
		}
		return errors.WrapInvalid(
			fmt.Errorf("%w: %q already resolves to %q", errors.ErrAliasConflict, alias, existing),
			"SchemaStore", "RegisterAlias", "rebind check")
	}

	s.aliases[alias] = canonical
	return nil
}

// GetComponentSchema returns the declared schema for a component type, or
// nil when none exists. Absence is not an error: callers treat nil as "no
// declared schema, all fields accepted ad hoc".
func (s *Store) GetComponentSchema(typeName string) *Schema {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schemas[typeName]
}

// FindParameterSchema resolves a parameter name to its entry via the
// reverse index, consulting the alias table when the name is not canonical.
// Aliasing is transparent: an alias and its canonical name return the same
// entry. Returns nil when no entry exists.
func (s *Store) FindParameterSchema(name string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(name)
}

// findLocked resolves a parameter name to its entry; callers hold s.mu
func (s *Store) findLocked(name string) *Entry {
	canonical := name
	owner, ok := s.reverse[canonical]
	if !ok {
		canonical, ok = s.aliases[name]
		if !ok {
			return nil
		}
		owner, ok = s.reverse[canonical]
		if !ok {
			return nil
		}
	}

	schema, ok := s.schemas[owner]
	if !ok {
		return nil
	}
	e, ok := schema.entries[canonical]
	if !ok {
		return nil
	}
	return &e
}

// ValidateParameter checks a supplied value against the parameter's schema
// entry, resolving aliases transparently. A parameter with no entry and no
// alias validates as true in permissive mode and false in strict mode.
func (s *Store) ValidateParameter(name string, value param.Value) bool {
	entry := s.FindParameterSchema(name)
	if entry == nil {
		return s.mode == Permissive
	}
	_, ok := value.ConvertTo(entry.Type)
	return ok
}

// SchemaCount returns the number of distinct component schemas
func (s *Store) SchemaCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schemas)
}
