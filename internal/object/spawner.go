package object

import (
	"asteroids/internal/config"
)

// AsteroidSpawner refills the asteroid field in waves. Once the field is
// cleared a respawn delay runs, then a fresh wave spawns at the screen
// edges. Population is weighted by size so a wave of large rocks counts
// for the small rocks they will split into.
type AsteroidSpawner struct {
	target int
	delay  float64 // Remaining respawn delay; a wave spawns when it hits zero
}

// NewAsteroidSpawner creates a spawner with a target weighted population.
// The first wave spawns on the first update.
func NewAsteroidSpawner(target int) *AsteroidSpawner {
	if target < 0 {
		target = 0
	}
	return &AsteroidSpawner{
		target: target,
	}
}

// Update counts the field and spawns the next wave when it is cleared and
// the respawn delay has elapsed.
func (s *AsteroidSpawner) Update(ctx UpdateContext) (bool, error) {
	if s.target == 0 {
		return false, nil
	}

	count := countAsteroids(ctx.Objects)
	if count > 0 {
		s.delay = config.AsteroidRespawnDelay
		return false, nil
	}

	s.delay -= ctx.Delta.Seconds()
	if s.delay > 0 {
		return false, nil
	}

	for count < s.target {
		var size AsteroidSize
		switch remaining := s.target - count; {
		case remaining >= AsteroidLarge.Weight():
			size = AsteroidLarge
		case remaining >= AsteroidMedium.Weight():
			size = AsteroidMedium
		default:
			size = AsteroidSmall
		}
		count += size.Weight()

		asteroid := NewAsteroidAtEdge(ctx.Screen, size)
		asteroid.SpawnProtection = config.AsteroidSpawnProtect
		ctx.Spawner.Spawn(asteroid)
	}

	return false, nil
}

// Draw is a no-op; the spawner is not visible.
func (s *AsteroidSpawner) Draw(_ DrawContext) error {
	return nil
}

// countAsteroids returns the weighted count of live asteroids.
func countAsteroids(objects []Object) int {
	total := 0
	for _, obj := range objects {
		if asteroid, ok := obj.(*Asteroid); ok && !asteroid.Destroyed {
			total += asteroid.Size.Weight()
		}
	}
	return total
}
