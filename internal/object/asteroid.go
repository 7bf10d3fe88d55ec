package object

import (
	"math"
	"math/rand"

	"asteroids/internal/config"
	"asteroids/internal/draw"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  1.5,
	AsteroidMedium: 3.0,
	AsteroidLarge:  5.0,
}

var asteroidSpeeds = map[AsteroidSize]float64{
	AsteroidSmall:  15.0,
	AsteroidMedium: 10.0,
	AsteroidLarge:  6.0,
}

// Weight returns the weighted population count for a size: a large rock
// eventually yields four small ones, a medium two.
func (s AsteroidSize) Weight() int {
	switch s {
	case AsteroidLarge:
		return 4
	case AsteroidMedium:
		return 2
	case AsteroidSmall:
		return 1
	}
	return 0
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y            float64
	VX, VY          float64
	Angle           float64
	RotationSpeed   float64 // Radians per second
	Size            AsteroidSize
	Radius          float64   // Collision/draw radius
	Vertices        []float64 // Vertex distances from center, for the irregular shape
	Destroyed       bool      // Marked for removal and splitting
	SpawnProtection float64   // Seconds of invulnerability remaining after spawn
}

// NewAsteroid creates an asteroid at (x, y) with the given size, drifting
// in direction angle. Direction is random if angle < 0.
func NewAsteroid(x, y float64, size AsteroidSize, angle float64) *Asteroid {
	radius := asteroidRadii[size]
	speed := asteroidSpeeds[size]

	if angle < 0 {
		angle = rand.Float64() * 2 * math.Pi
	}

	rotSpeed := (rand.Float64() - 0.5) * 2.0

	// Irregular polygon: 8-12 vertices with ±30% radius jitter
	numVerts := 8 + rand.Intn(5)
	vertices := make([]float64, numVerts)
	for i := 0; i < numVerts; i++ {
		vertices[i] = radius * (0.7 + rand.Float64()*0.6)
	}

	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle) * speed,
		Angle:         rand.Float64() * 2 * math.Pi,
		RotationSpeed: rotSpeed,
		Size:          size,
		Radius:        radius,
		Vertices:      vertices,
	}
}

// NewAsteroidAtEdge creates an asteroid at a random screen edge, aimed
// loosely toward the center.
func NewAsteroidAtEdge(screen Screen, size AsteroidSize) *Asteroid {
	var x, y float64
	w := float64(screen.Width)
	h := float64(screen.Height)

	switch rand.Intn(4) {
	case 0: // Top
		x = rand.Float64() * w
		y = 1
	case 1: // Bottom
		x = rand.Float64() * w
		y = h - 1
	case 2: // Left
		x = 1
		y = rand.Float64() * h
	case 3: // Right
		x = w - 1
		y = rand.Float64() * h
	}

	angle := math.Atan2(h/2-y, w/2-x)
	angle += (rand.Float64() - 0.5) * math.Pi / 2 // ±45° variation

	return NewAsteroid(x, y, size, angle)
}

// IsProtected returns true while the asteroid has spawn protection.
func (a *Asteroid) IsProtected() bool {
	return a.SpawnProtection > 0
}

// Update moves the asteroid, rotating it, and splits it when destroyed.
func (a *Asteroid) Update(ctx UpdateContext) (bool, error) {
	if a.Destroyed {
		particleCount := int(a.Size) * 4
		SpawnExplosion(a.X, a.Y, particleCount, 20.0, 0.5, ctx.Spawner)

		// Split into two smaller rocks unless already smallest
		if a.Size > AsteroidSmall && ctx.Spawner != nil {
			newSize := a.Size - 1
			for i := 0; i < 2; i++ {
				child := NewAsteroid(a.X, a.Y, newSize, rand.Float64()*2*math.Pi)
				ctx.Spawner.Spawn(child)
			}
		}
		return true, nil
	}

	dt := ctx.Delta.Seconds()

	if a.SpawnProtection > 0 {
		a.SpawnProtection -= dt
		if a.SpawnProtection < 0 {
			a.SpawnProtection = 0
		}
	}

	a.Angle += a.RotationSpeed * dt

	a.X += a.VX * dt
	a.Y += a.VY * dt

	ctx.Screen.WrapPosition(&a.X, &a.Y)

	return false, nil
}

// Draw renders the asteroid as an irregular polygon, blinking while the
// spawn protection is active.
func (a *Asteroid) Draw(ctx DrawContext) error {
	if !ShouldRenderBlink(a.SpawnProtection, config.AsteroidBlinkFreq) {
		return nil
	}

	numVerts := len(a.Vertices)
	points := ctx.Canvas.BorrowPoints(numVerts)

	for i, dist := range a.Vertices {
		vertAngle := a.Angle + float64(i)*2*math.Pi/float64(numVerts)
		points[i] = draw.Point{
			X: a.X + math.Cos(vertAngle)*dist,
			Y: a.Y + math.Sin(vertAngle)*dist,
		}
	}

	ctx.Canvas.DrawPolygon(points, false)
	return nil
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction.
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}

// GetPosition returns the asteroid's center position.
func (a *Asteroid) GetPosition() (float64, float64) {
	return a.X, a.Y
}

// GetRadius returns the asteroid's collision radius.
func (a *Asteroid) GetRadius() float64 {
	return a.Radius
}
