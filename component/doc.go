// Package component provides the core entity construction infrastructure
// for Olympe: the component type registry and the parameter schema store.
//
// # Overview
//
// Components are plain-data records describing one facet of an entity.
// Each component-owning module registers a type descriptor (a stable name,
// a factory for default-constructed instances, and the component's named
// fields) with the Registry. The Store keeps the parameter schemas that
// govern how blueprint parameters map onto those fields: expected types,
// required-ness, defaults, and aliases.
//
// # Component Registration Pattern
//
// Olympe uses EXPLICIT registration rather than init() self-registration.
// This provides:
//   - Testability: isolated registries for testing
//   - Explicitness: a declared, ordered bootstrap instead of link-order luck
//   - Control: the composition root decides what gets registered
//   - No side effects: no global state modification during package init
//
// Registration Flow:
//
//  1. Each component-owning package exports a Register(*Registry, *Store) error function
//  2. builtin.Register orchestrates the built-in registrations in declared order
//  3. The application entry point calls it once, before any blueprint loads
//  4. Component types are now available for schema discovery and instantiation
//
// Example:
//
//	reg := component.NewRegistry()
//	store := component.NewStore(component.StoreConfig{})
//	if err := builtin.Register(reg, store); err != nil {
//		return err
//	}
//	store.EnsureInitialized(reg)
//
// # Validation and Mapping
//
// During entity instantiation the Store's MapParameters resolves each
// supplied blueprint parameter (aliases included) against the component's
// schema, type-checks it, substitutes defaults for omissions, and emits a
// target-field to value map. Component construction applies that map; the
// engine itself never touches component memory.
//
// Validation is permissive by default: parameters without a schema entry
// pass through unchanged, since components may accept free-form extension
// fields. Strict mode rejects them instead; both policies are explicit via
// StoreConfig.Mode so hosts and test suites can assert either behavior.
package component
