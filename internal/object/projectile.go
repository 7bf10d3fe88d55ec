package object

import (
	"math"
)

// ProjectileSpeed is the base speed of projectiles.
const ProjectileSpeed = 50.0

// ProjectileLifetime is how long projectiles last before disappearing.
const ProjectileLifetime = 2.0

// Projectile is a shot fired by the ship.
type Projectile struct {
	X, Y      float64
	VX, VY    float64
	Lifetime  float64 // Seconds remaining before removal
	destroyed bool
}

// NewProjectile creates a projectile at (x, y) traveling in direction angle.
// The projectile inherits the shooter's velocity on top of its own speed.
func NewProjectile(x, y, angle, shooterVX, shooterVY float64) *Projectile {
	return &Projectile{
		X:        x,
		Y:        y,
		VX:       shooterVX + math.Cos(angle)*ProjectileSpeed,
		VY:       shooterVY + math.Sin(angle)*ProjectileSpeed,
		Lifetime: ProjectileLifetime,
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
	p.Lifetime = 0
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed || p.Lifetime <= 0
}

// Update moves the projectile and checks lifetime.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.IsDestroyed() {
		return true, nil
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	ctx.Screen.WrapPosition(&p.X, &p.Y)

	return false, nil
}

// Draw renders the projectile as a single pixel.
func (p *Projectile) Draw(ctx DrawContext) error {
	ctx.Canvas.SetFloat(p.X, p.Y)
	return nil
}
