package object

import (
	"math"
	"math/rand"
	"sync"
)

// particlePool reuses Particle objects to keep explosions allocation-free.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime, for fade calculation
	Drag        float64 // Velocity decay (1.0 = no drag)
	Fade        bool    // Whether to fade out over lifetime
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Fade = true
	return p
}

// Release returns the particle to the pool. Call when the particle is
// removed from the world.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles in a circular burst pattern.
func SpawnExplosion(x, y float64, count int, speed, lifetime float64, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)

		p := NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life)
		spawner.Spawn(p)
	}
}

// SpawnThrust creates exhaust particles behind a thrusting ship.
func SpawnThrust(x, y, angle float64, spawner Spawner) {
	if spawner == nil {
		return
	}

	count := 1 + rand.Intn(2)
	for i := 0; i < count; i++ {
		// Opposite the ship's facing, with some spread
		thrustAngle := angle + math.Pi + (rand.Float64()-0.5)*0.5
		speed := 8.0 + rand.Float64()*4.0
		lifetime := 0.1 + rand.Float64()*0.15

		p := NewParticle(x, y, math.Cos(thrustAngle)*speed, math.Sin(thrustAngle)*speed, lifetime)
		p.Drag = 0.85
		spawner.Spawn(p)
	}
}

// Update moves the particle and checks lifetime. Particles don't wrap;
// they just die wherever they end up.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Drag tuned against a 60fps frame
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt

	return false, nil
}

// Draw renders the particle as a pixel, dropping the last quarter of its
// life for a fade-out.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.Fade && p.MaxLifetime > 0 {
		if p.Lifetime/p.MaxLifetime < 0.25 {
			return nil
		}
	}

	ctx.Canvas.SetFloat(p.X, p.Y)
	return nil
}
