// Package engine implements the fixed-tick game loop and the entities that
// live in its world.
//
// A Game owns a flat list of entities. Each tick it clears the surface, then
// for every entity in insertion order calls Update followed by Render, and
// finally runs the per-frame callbacks. All calls happen on the host's event
// queue; nothing in this package is safe for concurrent use.
package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

// Entity is anything placed in the world.
type Entity interface {
	// Update advances the entity by one tick. Movement and collision
	// handling belong here.
	Update(w World)

	// Render draws the entity. It must not change any state.
	Render(s Surface)

	// Bounds returns the entity's rectangle in world coordinates.
	Bounds() core.Rect

	// Passable reports whether other entities may overlap this one
	// without being pushed back.
	Passable() bool

	// Visible reports whether the entity takes part in rendering and
	// touch tests.
	Visible() bool
}

// World is the view of the game world handed to entities during Update.
type World struct {
	Width    float64
	Height   float64
	entities []Entity
}

// NewWorld returns a world of the given size holding entities.
func NewWorld(width, height float64, entities ...Entity) World {
	return World{Width: width, Height: height, entities: entities}
}

// Entities returns the entities in the world in insertion order.
// The returned slice must not be modified.
func (w World) Entities() []Entity {
	return w.entities
}

// Direction is a movement direction.
type Direction string

// Movement directions.
const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(s)); d {
	case DirUp, DirDown, DirLeft, DirRight:
		return d, nil
	}
	return "", fmt.Errorf("engine: unknown direction %q", s)
}
