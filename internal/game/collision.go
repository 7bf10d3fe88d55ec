package game

import (
	"asteroids/internal/config"
	"asteroids/internal/object"
	"asteroids/internal/physics"
)

// collectCollidables extracts projectiles and asteroids from the object
// list into pre-allocated slices.
func collectCollidables(objects []object.Object, projectiles *[]*object.Projectile, asteroids *[]*object.Asteroid) {
	*projectiles = (*projectiles)[:0]
	*asteroids = (*asteroids)[:0]

	for _, obj := range objects {
		switch o := obj.(type) {
		case *object.Projectile:
			*projectiles = append(*projectiles, o)
		case *object.Asteroid:
			*asteroids = append(*asteroids, o)
		}
	}
}

// checkCollisions detects and handles all collisions for the frame.
// Broad phase uses the wrapping spatial grids; narrow phase is circle math.
func checkCollisions(state *State) {
	collectCollidables(state.Objects, &state.projectileCache, &state.asteroidCache)
	projectiles := state.projectileCache
	asteroids := state.asteroidCache

	state.asteroidGrid.Clear()
	for i, a := range asteroids {
		state.asteroidGrid.Insert(a.X, a.Y, i)
	}

	checkProjectileAsteroidCollisions(state, projectiles, asteroids)
	checkAsteroidAsteroidCollisions(asteroids, state.asteroidGrid)
	checkPowerUpPickup(state)
	checkShipCollisions(state, asteroids)
}

// checkProjectileAsteroidCollisions handles projectile hits on asteroids.
func checkProjectileAsteroidCollisions(state *State, projectiles []*object.Projectile, asteroids []*object.Asteroid) {
	for _, p := range projectiles {
		if p.IsDestroyed() {
			continue
		}
		state.asteroidGrid.QueryAround(p.X, p.Y, func(j int) bool {
			a := asteroids[j]
			if a.IsDestroyed() || a.IsProtected() {
				return false
			}
			if physics.PointInCircle(p.X, p.Y, a.X, a.Y, a.GetRadius()) {
				p.MarkDestroyed()
				a.MarkDestroyed()
				onAsteroidDestroyed(state, a)
				return true // Projectile spent, stop checking
			}
			return false
		})
	}
}

// onAsteroidDestroyed applies scoring and power-up drop logic for a kill.
func onAsteroidDestroyed(state *State, a *object.Asteroid) {
	state.Score += asteroidScore(a.Size)
	state.Kills++
	state.sound.Explosion(int(a.Size))

	// One power-up on the field at a time; the kill counter re-arms only
	// after the previous drop is collected.
	if state.Kills >= config.PowerUpKillCount && state.powerUp == nil {
		kind := object.PowerUpSpread
		if state.Ship != nil && state.Ship.SpreadLevel >= config.MaxSpreadLevel {
			kind = object.PowerUpShield
		}
		drop := object.NewPowerUp(a.X, a.Y, kind)
		state.powerUp = drop
		state.Spawn(drop)
		state.logger.Debug("power-up dropped", "kind", kind, "x", a.X, "y", a.Y)
	}
}

// asteroidScore returns the score for destroying an asteroid of the given size.
func asteroidScore(size object.AsteroidSize) int {
	switch size {
	case object.AsteroidLarge:
		return config.ScoreLargeAsteroid
	case object.AsteroidMedium:
		return config.ScoreMediumAsteroid
	case object.AsteroidSmall:
		return config.ScoreSmallAsteroid
	default:
		return 0
	}
}

// checkAsteroidAsteroidCollisions handles bouncing between asteroids using
// the spatial grid to limit checks to nearby pairs.
func checkAsteroidAsteroidCollisions(asteroids []*object.Asteroid, grid *physics.SpatialGrid) {
	for i, a1 := range asteroids {
		if a1.IsDestroyed() {
			continue
		}
		grid.QueryAround(a1.X, a1.Y, func(j int) bool {
			if j <= i {
				return false // Skip self and already-checked pairs
			}
			a2 := asteroids[j]
			if a2.IsDestroyed() {
				return false
			}
			dist := physics.Distance(a1.X, a1.Y, a2.X, a2.Y)
			minDist := a1.GetRadius() + a2.GetRadius()
			if dist < minDist && dist > 0 {
				bounceAsteroids(a1, a2, dist)
			}
			return false
		})
	}
}

// checkPowerUpPickup applies the active power-up when the ship flies
// through its pickup circle.
func checkPowerUpPickup(state *State) {
	pu := state.powerUp
	if pu == nil || pu.IsDestroyed() || state.Ship == nil {
		return
	}

	sx, sy := state.Ship.GetPosition()
	if !physics.CirclesOverlap(sx, sy, state.Ship.GetRadius(), pu.X, pu.Y, pu.GetRadius()) {
		return
	}

	switch pu.Kind {
	case object.PowerUpSpread:
		state.Ship.RaiseSpread()
	case object.PowerUpShield:
		state.Ship.GrantShield()
	}

	pu.MarkDestroyed()
	state.powerUp = nil
	state.Kills = 0
	state.sound.PowerUp()
	state.logger.Info("power-up collected", "kind", pu.Kind, "spread", state.Ship.SpreadLevel, "shielded", state.Ship.Shielded)
}

// checkShipCollisions checks the ship against asteroids. A shielded ship
// absorbs one hit; otherwise the ship is destroyed.
func checkShipCollisions(state *State, asteroids []*object.Asteroid) {
	if state.Ship == nil || state.InvincibleTime > 0 {
		return
	}

	sx, sy := state.Ship.GetPosition()
	sr := state.Ship.GetRadius()

	hit := false
	state.asteroidGrid.QueryAround(sx, sy, func(j int) bool {
		a := asteroids[j]
		if a.IsDestroyed() || a.IsProtected() {
			return false
		}
		if physics.CirclesOverlap(sx, sy, sr, a.X, a.Y, a.GetRadius()) {
			hit = true
			return true
		}
		return false
	})

	if !hit {
		return
	}

	if state.Ship.AbsorbHit() {
		// Shield took the hit; grant a short vulnerability window
		state.InvincibleTime = config.ShieldBreakProtection
		state.sound.ShieldBreak()
		state.logger.Info("shield absorbed hit")
		return
	}

	killShip(state)
}

// killShip handles ship destruction: explosion, life loss, state change.
func killShip(state *State) {
	x, y := state.Ship.GetPosition()
	object.SpawnExplosion(x, y, 20, 25.0, 1.0, state)

	// Remove the ship from the world
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		if obj != state.Ship {
			kept = append(kept, obj)
		}
	}
	state.Objects = kept

	state.Ship = nil
	state.Lives--
	state.Kills = 0
	state.GameState = GameStateDead
	state.sound.ShipDestroyed()
	state.logger.Info("ship destroyed", "lives", state.Lives, "score", state.Score)
}

// bounceAsteroids handles elastic collision between two asteroids, using
// radius squared as an area-based mass.
func bounceAsteroids(a1, a2 *object.Asteroid, dist float64) {
	// Collision normal (from a1 to a2)
	nx := (a2.X - a1.X) / dist
	ny := (a2.Y - a1.Y) / dist

	// Relative velocity along the normal
	dvx := a1.VX - a2.VX
	dvy := a1.VY - a2.VY
	dvn := dvx*nx + dvy*ny

	// Don't resolve if velocities are separating
	if dvn < 0 {
		return
	}

	m1 := a1.Radius * a1.Radius
	m2 := a2.Radius * a2.Radius
	totalMass := m1 + m2

	impulse := 2 * dvn / totalMass

	a1.VX -= impulse * m2 * nx
	a1.VY -= impulse * m2 * ny
	a2.VX += impulse * m1 * nx
	a2.VY += impulse * m1 * ny

	// Separate overlapping rocks proportionally to mass
	overlap := (a1.Radius + a2.Radius) - dist
	if overlap > 0 {
		sep1 := overlap * m2 / totalMass
		sep2 := overlap * m1 / totalMass
		a1.X -= nx * sep1
		a1.Y -= ny * sep1
		a2.X += nx * sep2
		a2.Y += ny * sep2
	}
}
