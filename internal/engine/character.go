package engine

import (
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/gamebuilder/internal/core"
)

// CharacterOptions configures a new Character.
type CharacterOptions struct {
	X, Y          float64
	Width, Height float64
	Image         string // Asset drawn at the character's rectangle
	Solid         bool   // Blocks other characters when true
}

// destination is a scripted linear movement consumed across ticks.
type destination struct {
	direction Direction
	remaining float64
	speed     float64
}

// Character is a movable sprite with collision handling.
//
// Every Update it follows its scripted destination, reverts to the previous
// tick's position if it ended up inside a blocking entity, and is clamped into
// the world bounds.
type Character struct {
	pos     f64.Vec2
	prev    f64.Vec2
	hasPrev bool // prev holds a snapshot from an earlier tick

	width, height float64
	image         string
	visible       bool
	solid         bool
	moving        bool
	dest          *destination
}

// NewCharacter creates a visible character.
func NewCharacter(opts CharacterOptions) *Character {
	return &Character{
		pos:     f64.Vec2{opts.X, opts.Y},
		width:   opts.Width,
		height:  opts.Height,
		image:   opts.Image,
		visible: true,
		solid:   opts.Solid,
	}
}

// Position returns the current top-left corner.
func (c *Character) Position() (x, y float64) {
	return c.pos[0], c.pos[1]
}

// SetPosition teleports the character. The previous-tick snapshot is kept,
// so a teleport into a wall is still reverted on the next Update.
func (c *Character) SetPosition(x, y float64) {
	c.pos = f64.Vec2{x, y}
}

// Size returns the character's width and height.
func (c *Character) Size() (w, h float64) {
	return c.width, c.height
}

// Bounds returns the character's rectangle.
func (c *Character) Bounds() core.Rect {
	return core.NewRect(c.pos[0], c.pos[1], c.width, c.height)
}

// Passable reports whether other characters may walk through this one.
func (c *Character) Passable() bool {
	return !c.solid
}

// Visible reports whether the character is shown.
func (c *Character) Visible() bool {
	return c.visible
}

// Hide makes the character invisible. Hidden characters are not drawn and
// never touch anything.
func (c *Character) Hide() {
	c.visible = false
}

// Show makes the character visible again.
func (c *Character) Show() {
	c.visible = true
}

// Image returns the asset drawn for the character.
func (c *Character) Image() string {
	return c.image
}

// SetImage changes the asset drawn for the character.
func (c *Character) SetImage(image string) {
	c.image = image
}

// IsMoving reports whether the last Update changed the character's position.
func (c *Character) IsMoving() bool {
	return c.moving
}

// Move shifts the character by amount in the given direction.
// An amount of zero moves by one unit. Unknown directions are ignored.
func (c *Character) Move(dir Direction, amount float64) {
	if amount == 0 {
		amount = 1
	}

	switch dir {
	case DirUp:
		c.pos[1] -= amount
	case DirDown:
		c.pos[1] += amount
	case DirLeft:
		c.pos[0] -= amount
	case DirRight:
		c.pos[0] += amount
	}
}

// MoveUp moves the character up by amount.
func (c *Character) MoveUp(amount float64) { c.Move(DirUp, amount) }

// MoveDown moves the character down by amount.
func (c *Character) MoveDown(amount float64) { c.Move(DirDown, amount) }

// MoveLeft moves the character left by amount.
func (c *Character) MoveLeft(amount float64) { c.Move(DirLeft, amount) }

// MoveRight moves the character right by amount.
func (c *Character) MoveRight(amount float64) { c.Move(DirRight, amount) }

// SetDestination scripts a linear movement of amount units in direction,
// covered at speed units per tick. It replaces any active destination.
func (c *Character) SetDestination(dir Direction, amount, speed float64) {
	c.dest = &destination{direction: dir, remaining: amount, speed: speed}
}

// HasDestination reports whether a scripted movement is still active.
func (c *Character) HasDestination() bool {
	return c.dest != nil
}

// ClearDestination cancels any scripted movement.
func (c *Character) ClearDestination() {
	c.dest = nil
}

// IsTouching reports whether the character overlaps other. Hidden entities
// never touch, and rectangles that only share an edge do not overlap.
func (c *Character) IsTouching(other Entity) bool {
	if !c.visible || !other.Visible() {
		return false
	}
	return c.Bounds().Intersects(other.Bounds())
}

// Update advances scripted movement, resolves collisions and clamps the
// character into the world.
func (c *Character) Update(w World) {
	if c.dest != nil {
		c.Move(c.dest.direction, c.dest.speed)
		c.dest.remaining -= c.dest.speed
		if c.dest.remaining <= 0 {
			c.dest = nil
		}
	}

	// No snapshot exists before the first Update, so there is nothing to
	// revert to yet.
	if c.hasPrev {
		for _, e := range w.Entities() {
			if e == Entity(c) || e.Passable() {
				continue
			}
			if c.IsTouching(e) {
				c.pos = c.prev
				c.moving = false
				return
			}
		}
	}

	if c.pos[0] < 0 {
		c.pos[0] = 0
	} else if c.pos[0]+c.width > w.Width {
		c.pos[0] = w.Width - c.width
	}

	if c.pos[1] < 0 {
		c.pos[1] = 0
	} else if c.pos[1]+c.height > w.Height {
		c.pos[1] = w.Height - c.height
	}

	c.moving = !c.hasPrev || c.pos != c.prev
	c.prev = c.pos
	c.hasPrev = true
}

// Render draws the character's image when it is visible.
func (c *Character) Render(s Surface) {
	if !c.visible || c.image == "" {
		return
	}
	s.DrawImage(c.image, c.pos[0], c.pos[1], c.width, c.height)
}
