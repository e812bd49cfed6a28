package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlasbruce/olympe/param"
)

func TestDiscoverComponentSchema(t *testing.T) {
	reg := newTestRegistry(t)
	store := NewStore(StoreConfig{})

	desc, err := reg.Lookup("Health_data")
	require.NoError(t, err)

	synthesized := store.DiscoverComponentSchema(desc)
	assert.Equal(t, 2, synthesized)

	schema := store.GetComponentSchema("Health_data")
	require.NotNil(t, schema)
	assert.Equal(t, 2, schema.Len())

	// Synthesized entries are optional with zero-value defaults
	entry, ok := schema.Entry("health")
	require.True(t, ok)
	assert.False(t, entry.Required)
	assert.True(t, entry.Default.Equal(param.Int(0)))
	assert.Equal(t, "health", entry.Field)

	entry, ok = schema.Entry("regen")
	require.True(t, ok)
	assert.Equal(t, param.TypeFloat, entry.Type)
	assert.True(t, entry.Default.Equal(param.Float(0)))
}

func TestDiscoverComponentSchema_Idempotent(t *testing.T) {
	reg := newTestRegistry(t)
	store := NewStore(StoreConfig{})

	desc, err := reg.Lookup("Health_data")
	require.NoError(t, err)

	require.Equal(t, 2, store.DiscoverComponentSchema(desc))
	before := store.GetComponentSchema("Health_data").Entries()

	// A second pass synthesizes nothing and alters nothing
	assert.Equal(t, 0, store.DiscoverComponentSchema(desc))
	assert.Equal(t, before, store.GetComponentSchema("Health_data").Entries())
}

func TestDiscoverComponentSchema_FillsGapsOnly(t *testing.T) {
	reg := newTestRegistry(t)
	store := NewStore(StoreConfig{})

	// Hand-authored entry: required, custom parameter name onto the health field
	require.NoError(t, store.RegisterParameterSchema(Entry{
		Parameter: "startingHealth",
		Component: "Health_data",
		Field:     "health",
		Type:      param.TypeInt,
		Required:  true,
	}))

	desc, err := reg.Lookup("Health_data")
	require.NoError(t, err)

	// Only the untargeted regen field gains a synthesized entry
	assert.Equal(t, 1, store.DiscoverComponentSchema(desc))

	schema := store.GetComponentSchema("Health_data")
	entry, ok := schema.Entry("startingHealth")
	require.True(t, ok)
	assert.True(t, entry.Required, "declared entries survive discovery untouched")

	_, ok = schema.Entry("health")
	assert.False(t, ok, "a targeted field gains no second entry")

	_, ok = schema.Entry("regen")
	assert.True(t, ok)
}

func TestDiscoverComponentSchema_Nil(t *testing.T) {
	store := NewStore(StoreConfig{})
	assert.Equal(t, 0, store.DiscoverComponentSchema(nil))
}

func TestDiscoverSchemasFromBlueprint(t *testing.T) {
	store := NewStore(StoreConfig{})

	params := []Param{
		{Name: "damage", Value: param.Int(12)},
		{Name: "knockback", Value: param.Float(0.5)},
		{Name: "element", Value: param.String("fire")},
	}

	assert.Equal(t, 3, store.DiscoverSchemasFromBlueprint("Attack_data", params))

	schema := store.GetComponentSchema("Attack_data")
	require.NotNil(t, schema)
	entry, ok := schema.Entry("damage")
	require.True(t, ok)
	assert.Equal(t, param.TypeInt, entry.Type, "expected type inferred from the observed value")
	assert.False(t, entry.Required)

	// Already-schematized parameters are skipped on later loads
	assert.Equal(t, 0, store.DiscoverSchemasFromBlueprint("Attack_data", params))
}

func TestDiscoverSchemasFromBlueprint_SkipsAliased(t *testing.T) {
	store := NewStore(StoreConfig{})
	require.NoError(t, store.RegisterParameterSchema(Entry{
		Parameter: "health",
		Component: "Health_data",
		Type:      param.TypeInt,
	}))
	require.NoError(t, store.RegisterAlias("hp", "health"))

	// A parameter reachable through an alias is already schematized
	assert.Equal(t, 0, store.DiscoverSchemasFromBlueprint("Health_data", []Param{
		{Name: "hp", Value: param.Int(5)},
	}))
}

func TestDiscoverSchemasFromBlueprint_SkipsUntyped(t *testing.T) {
	store := NewStore(StoreConfig{})
	assert.Equal(t, 0, store.DiscoverSchemasFromBlueprint("X_data", []Param{
		{Name: "mystery", Value: param.Value{}},
	}))
	assert.Nil(t, store.GetComponentSchema("X_data"))
}
