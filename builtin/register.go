package builtin

import (
	stderrors "errors"

	"github.com/Atlasbruce/olympe/component"
	pkgerrors "github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/param"
)

// Component type names. Blueprints reference components by these keys.
const (
	PositionType  = "Position_data"
	MovementType  = "Movement_data"
	HealthType    = "Health_data"
	SpriteType    = "Sprite_data"
	ColliderType  = "Collider_data"
	InventoryType = "Inventory_data"
	LifetimeType  = "Lifetime_data"
)

// Register registers the built-in component types and their hand-authored
// schema entries with the provided registry and store, in declared order.
// The order is observable through Registry.ForEach and kept stable so
// schema exports are reproducible.
func Register(reg *component.Registry, store *component.Store) error {
	// CRITICAL: Nil collaborators are a programming error (fatal), not invalid input
	if reg == nil {
		return pkgerrors.WrapFatal(
			stderrors.New("registry cannot be nil"),
			"Builtin", "Register", "registry validation")
	}
	if store == nil {
		return pkgerrors.WrapFatal(
			stderrors.New("schema store cannot be nil"),
			"Builtin", "Register", "schema store validation")
	}

	if err := registerTypes(reg); err != nil {
		return err
	}
	if err := registerSchemas(store); err != nil {
		return err
	}
	return registerAliases(store)
}

// registerTypes registers the component type descriptors in declared order
func registerTypes(reg *component.Registry) error {
	registrations := []component.Registration{
		{
			Name:        PositionType,
			Factory:     func() any { return &Position{} },
			Description: "World-space position",
			Fields: []component.Field{
				{Name: "x", Type: param.TypeFloat},
				{Name: "y", Type: param.TypeFloat},
			},
		},
		{
			Name:        MovementType,
			Factory:     func() any { return &Movement{} },
			Description: "Velocity and speed cap",
			Fields: []component.Field{
				{Name: "velocity", Type: param.TypeVec2},
				{Name: "maxSpeed", Type: param.TypeFloat},
			},
		},
		{
			Name:        HealthType,
			Factory:     func() any { return &Health{} },
			Description: "Hit points and regeneration",
			Fields: []component.Field{
				{Name: "health", Type: param.TypeInt},
				{Name: "maxHealth", Type: param.TypeInt},
				{Name: "regen", Type: param.TypeFloat},
			},
		},
		{
			Name:        SpriteType,
			Factory:     func() any { return &Sprite{} },
			Description: "Visual representation",
			Fields: []component.Field{
				{Name: "texture", Type: param.TypeString},
				{Name: "layer", Type: param.TypeInt},
				{Name: "visible", Type: param.TypeBool},
			},
		},
		{
			Name:        ColliderType,
			Factory:     func() any { return &Collider{} },
			Description: "Axis-aligned collision box",
			Fields: []component.Field{
				{Name: "size", Type: param.TypeVec2},
				{Name: "trigger", Type: param.TypeBool},
			},
		},
		{
			Name:        InventoryType,
			Factory:     func() any { return &Inventory{} },
			Description: "Item slots",
			Fields: []component.Field{
				{Name: "capacity", Type: param.TypeInt},
				{Name: "maxStack", Type: param.TypeInt},
			},
		},
		{
			Name:        LifetimeType,
			Factory:     func() any { return &Lifetime{} },
			Description: "Timed despawn",
			Fields: []component.Field{
				{Name: "duration", Type: param.TypeFloat},
			},
		},
	}

	for _, r := range registrations {
		if err := reg.Register(r); err != nil {
			return pkgerrors.Wrap(err, "Builtin", "Register", r.Name+" registration")
		}
	}
	return nil
}

// registerSchemas registers the hand-authored entries. Discovery fills in
// optional entries for every remaining field when the store initializes.
func registerSchemas(store *component.Store) error {
	entries := []component.Entry{
		{
			Parameter: "health",
			Component: HealthType,
			Field:     "health",
			Type:      param.TypeInt,
			Required:  true,
		},
		{
			Parameter: "maxHealth",
			Component: HealthType,
			Field:     "maxHealth",
			Type:      param.TypeInt,
			Default:   param.Int(100),
		},
		{
			Parameter: "texture",
			Component: SpriteType,
			Field:     "texture",
			Type:      param.TypeString,
			Required:  true,
		},
		{
			Parameter: "visible",
			Component: SpriteType,
			Field:     "visible",
			Type:      param.TypeBool,
			Default:   param.Bool(true),
		},
		{
			Parameter: "maxSpeed",
			Component: MovementType,
			Field:     "maxSpeed",
			Type:      param.TypeFloat,
			Default:   param.Float(1),
		},
		{
			Parameter: "maxStack",
			Component: InventoryType,
			Field:     "maxStack",
			Type:      param.TypeInt,
			Default:   param.Int(64),
		},
	}

	for _, e := range entries {
		if err := store.RegisterParameterSchema(e); err != nil {
			return pkgerrors.Wrap(err, "Builtin", "Register", e.Parameter+" schema registration")
		}
	}
	return nil
}

// registerAliases registers the accepted alternate parameter names
func registerAliases(store *component.Store) error {
	aliases := map[string]string{
		"hp":    "health",
		"maxHp": "maxHealth",
		"tex":   "texture",
		"speed": "maxSpeed",
	}

	for alias, canonical := range aliases {
		if err := store.RegisterAlias(alias, canonical); err != nil {
			return pkgerrors.Wrap(err, "Builtin", "Register", alias+" alias registration")
		}
	}
	return nil
}
