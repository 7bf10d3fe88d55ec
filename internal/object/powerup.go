package object

import (
	"asteroids/internal/config"
)

// PowerUpKind identifies what a power-up grants on pickup.
type PowerUpKind int

const (
	// PowerUpSpread raises the ship's attack spread by one level.
	PowerUpSpread PowerUpKind = iota
	// PowerUpShield grants a one-hit shield.
	PowerUpShield
)

// Glyph animation frames per kind, cycled for a flicker effect.
var powerUpGlyphs = map[PowerUpKind][]rune{
	PowerUpSpread: {'▲', '△', '◮'},
	PowerUpShield: {'◉', '○', '◎'},
}

// powerUpFlickerRate is glyph frames per second.
const powerUpFlickerRate = 6.0

// PowerUp is a pickup dropped by a destroyed asteroid. It sits where it
// dropped, flickering, until the ship flies through its pickup circle.
type PowerUp struct {
	X, Y      float64
	Kind      PowerUpKind
	Radius    float64 // Pickup circle radius
	phase     float64 // Animation clock
	collected bool
}

// NewPowerUp creates a power-up of the given kind at (x, y).
func NewPowerUp(x, y float64, kind PowerUpKind) *PowerUp {
	return &PowerUp{
		X:      x,
		Y:      y,
		Kind:   kind,
		Radius: config.PowerUpRadius,
	}
}

// MarkDestroyed marks the power-up as collected (implements Destructible).
func (u *PowerUp) MarkDestroyed() {
	u.collected = true
}

// IsDestroyed returns true once the power-up has been collected.
func (u *PowerUp) IsDestroyed() bool {
	return u.collected
}

// GetPosition returns the power-up's position.
func (u *PowerUp) GetPosition() (float64, float64) {
	return u.X, u.Y
}

// GetRadius returns the pickup circle radius.
func (u *PowerUp) GetRadius() float64 {
	return u.Radius
}

// Update advances the flicker animation.
func (u *PowerUp) Update(ctx UpdateContext) (bool, error) {
	if u.collected {
		return true, nil
	}
	u.phase += ctx.Delta.Seconds() * powerUpFlickerRate
	return false, nil
}

// Draw renders the pickup circle on the canvas and the flickering glyph at
// its center.
func (u *PowerUp) Draw(ctx DrawContext) error {
	ctx.Canvas.DrawCircle(u.X, u.Y, u.Radius, 12)

	glyphs := powerUpGlyphs[u.Kind]
	glyph := glyphs[int(u.phase)%len(glyphs)]

	col, row := ctx.Canvas.LogicalToTerminal(u.X, u.Y)
	ctx.Writer.MoveCursor(col, row)
	ctx.Writer.WriteRune(glyph)
	return nil
}
