// Package olympe is a data-driven entity construction layer for real-time
// simulations: a component type registry and a parameter schema engine that
// together turn declarative blueprints into validated component field maps
// and live entity instances.
//
// # Architecture
//
// The module is organized around three cooperating stages:
//
//	┌─────────────────────────────────────┐
//	│        Blueprint Loader             │  JSON/YAML documents,
//	│   (parse, discover, instantiate)    │  per-component results
//	└─────────────────────────────────────┘
//	           ↓ validates through
//	┌─────────────────────────────────────┐
//	│   Registry + Schema Store           │  type descriptors,
//	│ (types, entries, aliases, mapping)  │  parameter schemas
//	└─────────────────────────────────────┘
//	           ↓ feeds
//	┌─────────────────────────────────────┐
//	│           Spawner                   │  component instances,
//	│  (construct, assign, report)        │  entity identity
//	└─────────────────────────────────────┘
//
// The component package owns the registry, the schema store, discovery and
// the validation/mapping engine. The blueprint package parses documents and
// drives validation per component block. The spawn package constructs
// component instances and assigns validated fields by reflection. The
// builtin package registers a standard component set, and metric exposes
// Prometheus instrumentation for every stage.
//
// # Registration
//
// Component types register explicitly, in order, during host bootstrap:
//
//	reg := component.NewRegistry()
//	store := component.NewStore(component.StoreConfig{})
//	if err := builtin.Register(reg, store); err != nil {
//		log.Fatal(err)
//	}
//	store.EnsureInitialized(reg)
//
// Registration order is observable: Registry.ForEach and the schema export
// tool both enumerate types in the order they were registered, so exports
// stay reproducible across runs.
//
// # Validation Modes
//
// The schema store runs permissive by default: parameters without a schema
// entry pass through to the component untouched, which lets blueprints
// carry free-form extension data. Strict mode rejects anything a schema
// does not name. Either way a component's diagnostics are complete; every
// problem in a block is reported, not just the first.
package olympe
