// Package object contains the game entities and their update/draw logic.
package object

import (
	"math"
	"time"

	"asteroids/internal/draw"
	"asteroids/internal/input"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	Screen  Screen
	Spawner Spawner
	Objects []Object
}

// DrawContext provides drawing resources for objects. Shapes go to the
// canvas; text and glyph overlays go to the writer.
type DrawContext struct {
	Canvas *draw.Canvas
	Writer *draw.ChunkWriter
}

// Screen represents the logical playfield dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen with precomputed center.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}
}

// WrapPosition wraps x and y coordinates around screen boundaries.
func (s Screen) WrapPosition(x, y *float64) {
	w := float64(s.Width)
	h := float64(s.Height)

	if w > 0 {
		*x = math.Mod(*x, w)
		if *x < 0 {
			*x += w
		}
	}
	if h > 0 {
		*y = math.Mod(*y, h)
		if *y < 0 {
			*y += h
		}
	}
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object state. Returns true if the object should
	// be removed from the world.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object.
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next update cycle.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ReleaseObject releases an object back to its pool if it is pooled.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// ShouldRenderBlink returns true if an object with remaining protection
// time should be rendered this frame (for the blinking effect).
// Always true when remainingTime <= 0.
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
