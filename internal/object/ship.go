package object

import (
	"math"

	"asteroids/internal/config"
	"asteroids/internal/draw"
)

// Terminal characters are roughly 2:1 (height:width), so X extents are
// doubled when building shapes.
const shipAspectRatio = 2.0

// Wing mount angle relative to the heading (~143 degrees).
const wingAngle = 2.5

// Ship is the player-controlled vessel.
type Ship struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity (momentum)
	Angle  float64 // Heading in radians (0 = right, -π/2 = up)

	ThrustPower   float64 // Forward acceleration
	ReversePower  float64 // Backward acceleration
	RotationSpeed float64 // Radians per second
	MaxSpeed      float64
	Drag          float64 // Fraction of speed kept per second when coasting
	Size          float64

	SpreadLevel int  // Attack spread level, 0..MaxSpreadLevel
	Shielded    bool // One-hit shield from a power-up

	FireRate     float64 // Minimum seconds between volleys
	fireCooldown float64
}

// NewShip creates a ship at the given position, pointing up.
func NewShip(x, y float64) *Ship {
	return &Ship{
		X:             x,
		Y:             y,
		Angle:         -math.Pi / 2,
		ThrustPower:   config.ShipThrustPower,
		ReversePower:  config.ShipReversePower,
		RotationSpeed: config.ShipRotationSpeed,
		MaxSpeed:      config.ShipMaxSpeed,
		Drag:          config.ShipDrag,
		Size:          config.ShipSize,
		FireRate:      config.ShipFireRate,
	}
}

// Update handles rotation, thrust, momentum physics, and firing.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	if ctx.Input.Left {
		s.Angle -= s.RotationSpeed * dt
	}
	if ctx.Input.Right {
		s.Angle += s.RotationSpeed * dt
	}

	// Normalize angle to [-π, π]
	for s.Angle > math.Pi {
		s.Angle -= 2 * math.Pi
	}
	for s.Angle < -math.Pi {
		s.Angle += 2 * math.Pi
	}

	thrusting := false
	if ctx.Input.Up {
		s.VX += math.Cos(s.Angle) * s.ThrustPower * dt
		s.VY += math.Sin(s.Angle) * s.ThrustPower * dt
		thrusting = true

		// Exhaust particles from the back of the ship
		backX := s.X - math.Cos(s.Angle)*s.Size*shipAspectRatio*0.5
		backY := s.Y - math.Sin(s.Angle)*s.Size*0.5
		SpawnThrust(backX, backY, s.Angle, ctx.Spawner)
	}
	if ctx.Input.Down {
		s.VX -= math.Cos(s.Angle) * s.ReversePower * dt
		s.VY -= math.Sin(s.Angle) * s.ReversePower * dt
		thrusting = true
	}

	// Velocity decay when coasting
	if !thrusting {
		dragFactor := math.Pow(s.Drag, dt)
		s.VX *= dragFactor
		s.VY *= dragFactor
	}

	// Clamp to max speed
	speed := math.Sqrt(s.VX*s.VX + s.VY*s.VY)
	if speed > s.MaxSpeed {
		scale := s.MaxSpeed / speed
		s.VX *= scale
		s.VY *= scale
	}

	s.X += s.VX * dt
	s.Y += s.VY * dt

	ctx.Screen.WrapPosition(&s.X, &s.Y)

	// Firing
	s.fireCooldown -= dt
	if ctx.Input.Fire && s.fireCooldown <= 0 && ctx.Spawner != nil {
		s.fireCooldown = s.FireRate
		s.FireVolley(ctx.Spawner)
	}

	return false, nil
}

// FireVolley spawns the projectile volley for the current spread level.
// All projectiles inherit the ship's velocity.
func (s *Ship) FireVolley(spawner Spawner) {
	for _, shot := range SpreadVolley(s.SpreadLevel) {
		mountAngle := s.Angle + shot.Mount
		mx := s.X + math.Cos(mountAngle)*s.Size*shipAspectRatio
		my := s.Y + math.Sin(mountAngle)*s.Size

		p := NewProjectile(mx, my, s.Angle+shot.Fire, s.VX, s.VY)
		spawner.Spawn(p)
	}
}

// RaiseSpread increases the attack spread by one level, up to the cap.
func (s *Ship) RaiseSpread() {
	if s.SpreadLevel < config.MaxSpreadLevel {
		s.SpreadLevel++
	}
}

// GrantShield gives the ship a one-hit shield.
func (s *Ship) GrantShield() {
	s.Shielded = true
}

// AbsorbHit consumes the shield if present. Returns true if the hit was
// absorbed, false if the ship takes the hit.
func (s *Ship) AbsorbHit() bool {
	if !s.Shielded {
		return false
	}
	s.Shielded = false
	return true
}

// GetPosition returns the ship's center position.
func (s *Ship) GetPosition() (float64, float64) {
	return s.X, s.Y
}

// GetRadius returns the ship's collision radius.
func (s *Ship) GetRadius() float64 {
	return s.Size
}

// Draw renders the ship as a triangle pointing along its heading, with a
// ring around it while the shield is up.
func (s *Ship) Draw(ctx DrawContext) error {
	noseAngle := s.Angle
	leftAngle := s.Angle + wingAngle
	rightAngle := s.Angle - wingAngle

	size := s.Size

	triangle := ctx.Canvas.BorrowPoints(3)
	triangle[0] = draw.Point{X: s.X + math.Cos(noseAngle)*size*shipAspectRatio, Y: s.Y + math.Sin(noseAngle)*size}
	triangle[1] = draw.Point{X: s.X + math.Cos(leftAngle)*size*0.7*shipAspectRatio, Y: s.Y + math.Sin(leftAngle)*size*0.7}
	triangle[2] = draw.Point{X: s.X + math.Cos(rightAngle)*size*0.7*shipAspectRatio, Y: s.Y + math.Sin(rightAngle)*size*0.7}

	ctx.Canvas.DrawPolygon(triangle, true)

	if s.Shielded {
		ctx.Canvas.DrawCircle(s.X, s.Y, size*config.ShieldRadiusScale, 24)
	}

	return nil
}

// VolleyShot describes one projectile in a spread volley: the mount point
// on the ship (angle relative to heading) and the firing angle offset.
type VolleyShot struct {
	Mount float64
	Fire  float64
}

// SpreadVolley returns the volley fired at the given spread level.
//
// The fan grows with each level: a nose shot, then wingtip pairs angled
// progressively outward, and finally a rear shot so the top level fires in
// all directions. Level 1 trades the nose shot for the wingtip pair.
// Volley sizes per level 0..7: 1, 2, 3, 5, 7, 9, 10, 10.
func SpreadVolley(level int) []VolleyShot {
	volley := make([]VolleyShot, 0, 10)

	if level != 1 {
		volley = append(volley, VolleyShot{Mount: 0, Fire: 0})
	}
	if level >= 1 {
		volley = append(volley,
			VolleyShot{Mount: wingAngle, Fire: 0},
			VolleyShot{Mount: -wingAngle, Fire: 0},
		)
	}
	if level >= 3 {
		volley = append(volley,
			VolleyShot{Mount: wingAngle, Fire: math.Pi / 4},
			VolleyShot{Mount: -wingAngle, Fire: -math.Pi / 4},
		)
	}
	if level >= 4 {
		volley = append(volley,
			VolleyShot{Mount: wingAngle, Fire: math.Pi / 2},
			VolleyShot{Mount: -wingAngle, Fire: -math.Pi / 2},
		)
	}
	if level >= 5 {
		volley = append(volley,
			VolleyShot{Mount: wingAngle, Fire: 3 * math.Pi / 4},
			VolleyShot{Mount: -wingAngle, Fire: -3 * math.Pi / 4},
		)
	}
	if level >= 6 {
		volley = append(volley, VolleyShot{Mount: math.Pi, Fire: math.Pi})
	}

	return volley
}
