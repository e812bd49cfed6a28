// Package builtin provides the component types the engine ships with and
// their hand-authored parameter schemas. Registration is explicit and
// ordered: the application entry point calls Register once, before any
// blueprint is loaded.
package builtin

import (
	"github.com/Atlasbruce/olympe/param"
)

// Position places an entity in world space
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Movement carries velocity and the entity's speed cap
type Movement struct {
	Velocity param.Vec2 `json:"velocity"`
	MaxSpeed float64    `json:"maxSpeed"`
}

// Health tracks current and maximum hit points
type Health struct {
	Current int64   `json:"health"`
	Max     int64   `json:"maxHealth"`
	Regen   float64 `json:"regen"`
}

// Sprite describes the entity's visual
type Sprite struct {
	Texture string `json:"texture"`
	Layer   int64  `json:"layer"`
	Visible bool   `json:"visible"`
}

// Collider is an axis-aligned collision box
type Collider struct {
	Size    param.Vec2 `json:"size"`
	Trigger bool       `json:"trigger"`
}

// Inventory holds item slots
type Inventory struct {
	Capacity int64 `json:"capacity"`
	MaxStack int64 `json:"maxStack"`
}

// Lifetime despawns the entity after a duration in seconds
type Lifetime struct {
	Duration float64 `json:"duration"`
}
