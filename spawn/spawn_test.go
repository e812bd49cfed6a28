package spawn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlasbruce/olympe/blueprint"
	"github.com/Atlasbruce/olympe/builtin"
	"github.com/Atlasbruce/olympe/component"
	"github.com/Atlasbruce/olympe/errors"
	"github.com/Atlasbruce/olympe/param"
)

func newTestSpawner(t *testing.T) (*Spawner, *blueprint.Loader) {
	t.Helper()

	reg := component.NewRegistry()
	store := component.NewStore(component.StoreConfig{})
	require.NoError(t, builtin.Register(reg, store))
	store.EnsureInitialized(reg)

	loader, err := blueprint.NewLoader(blueprint.LoaderConfig{Registry: reg, Store: store})
	require.NoError(t, err)

	spawner, err := NewSpawner(Config{Registry: reg, Loader: loader})
	require.NoError(t, err)
	return spawner, loader
}

func loadBlueprint(t *testing.T, loader *blueprint.Loader, doc string) *blueprint.Blueprint {
	t.Helper()
	bp, err := loader.Load(strings.NewReader(doc), blueprint.FormatYAML)
	require.NoError(t, err)
	return bp
}

func TestNewSpawner_NilCollaborators(t *testing.T) {
	_, err := NewSpawner(Config{})
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestSpawner_Spawn(t *testing.T) {
	spawner, loader := newTestSpawner(t)

	bp := loadBlueprint(t, loader, `
name: goblin
components:
  - type: Health_data
    params:
      hp: 30
      regen: 1.5
  - type: Position_data
    params:
      x: 4
      y: 2.5
  - type: Sprite_data
    params:
      texture: goblin.png
      layer: 3
`)

	entity, results, err := spawner.Spawn(bp)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.NoError(t, res.Err)
	}

	assert.NotEqual(t, [16]byte{}, [16]byte(entity.ID), "every entity gets an identifier")
	assert.Equal(t, "goblin", entity.Name)
	require.Len(t, entity.Components, 3)

	raw, ok := entity.Component(builtin.HealthType)
	require.True(t, ok)
	health, ok := raw.(*builtin.Health)
	require.True(t, ok)
	assert.Equal(t, int64(30), health.Current, "hp alias lands on the health field")
	assert.Equal(t, int64(100), health.Max, "default maxHealth applies")
	assert.Equal(t, 1.5, health.Regen)

	raw, ok = entity.Component(builtin.PositionType)
	require.True(t, ok)
	pos := raw.(*builtin.Position)
	assert.Equal(t, 4.0, pos.X, "whole numbers coerce onto float fields")
	assert.Equal(t, 2.5, pos.Y)

	raw, ok = entity.Component(builtin.SpriteType)
	require.True(t, ok)
	sprite := raw.(*builtin.Sprite)
	assert.Equal(t, "goblin.png", sprite.Texture)
	assert.Equal(t, int64(3), sprite.Layer)
	assert.True(t, sprite.Visible, "default visible applies")
}

func TestSpawner_SpawnPartialFailure(t *testing.T) {
	spawner, loader := newTestSpawner(t)

	bp := loadBlueprint(t, loader, `
name: broken
components:
  - type: Sprite_data
    params:
      layer: 1
  - type: Lifetime_data
    params:
      duration: 12.5
`)

	entity, results, err := spawner.Spawn(bp)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.ErrorIs(t, results[0].Err, errors.ErrMissingRequiredParameter)
	assert.NoError(t, results[1].Err)

	_, ok := entity.Component(builtin.SpriteType)
	assert.False(t, ok, "a rejected component is not constructed")

	raw, ok := entity.Component(builtin.LifetimeType)
	require.True(t, ok)
	assert.Equal(t, 12.5, raw.(*builtin.Lifetime).Duration)
}

func TestSpawner_SpawnDropsExtensionParameters(t *testing.T) {
	spawner, loader := newTestSpawner(t)

	bp := loadBlueprint(t, loader, `
name: glowing
components:
  - type: Lifetime_data
    params:
      duration: 3.0
      glowColor: green
`)

	entity, results, err := spawner.Spawn(bp)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)

	raw, ok := entity.Component(builtin.LifetimeType)
	require.True(t, ok)
	assert.Equal(t, 3.0, raw.(*builtin.Lifetime).Duration,
		"parameters with no struct field are dropped without failing the component")
}

func TestSpawner_SpawnNilBlueprint(t *testing.T) {
	spawner, _ := newTestSpawner(t)
	_, _, err := spawner.Spawn(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestSetField(t *testing.T) {
	type record struct {
		Count    int64      `json:"count"`
		Ratio    float64    `json:"ratio"`
		Label    string     `json:"label"`
		Active   bool       `json:"active"`
		Offset   param.Vec2 `json:"offset"`
		Untagged uint32
	}

	t.Run("by tag and by name", func(t *testing.T) {
		var r record
		set, err := SetField(&r, "count", param.Int(7))
		require.NoError(t, err)
		assert.True(t, set)
		assert.Equal(t, int64(7), r.Count)

		set, err = SetField(&r, "untagged", param.Int(9))
		require.NoError(t, err)
		assert.True(t, set)
		assert.Equal(t, uint32(9), r.Untagged)
	})

	t.Run("kind conversions", func(t *testing.T) {
		var r record
		set, err := SetField(&r, "ratio", param.Int(2))
		require.NoError(t, err)
		assert.True(t, set)
		assert.Equal(t, 2.0, r.Ratio)

		set, err = SetField(&r, "offset", param.Vec(1, 2))
		require.NoError(t, err)
		assert.True(t, set)
		assert.Equal(t, param.Vec2{X: 1, Y: 2}, r.Offset)

		set, err = SetField(&r, "active", param.Bool(true))
		require.NoError(t, err)
		assert.True(t, set)
		assert.True(t, r.Active)

		set, err = SetField(&r, "label", param.String("x"))
		require.NoError(t, err)
		assert.True(t, set)
		assert.Equal(t, "x", r.Label)
	})

	t.Run("no matching field", func(t *testing.T) {
		var r record
		set, err := SetField(&r, "missing", param.Int(1))
		require.NoError(t, err)
		assert.False(t, set)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		var r record
		set, err := SetField(&r, "count", param.String("seven"))
		require.Error(t, err)
		assert.False(t, set)
		assert.ErrorIs(t, err, errors.ErrParameterTypeMismatch)
	})

	t.Run("negative into unsigned", func(t *testing.T) {
		var r record
		_, err := SetField(&r, "untagged", param.Int(-1))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrParameterTypeMismatch)
	})

	t.Run("not a pointer", func(t *testing.T) {
		var r record
		_, err := SetField(r, "count", param.Int(1))
		require.Error(t, err)
	})
}
