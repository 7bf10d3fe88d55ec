package object

import (
	"testing"
	"time"

	"asteroids/internal/config"
)

func spawnerCtx(dt time.Duration, objects []Object, spawner Spawner) UpdateContext {
	return UpdateContext{
		Delta:   dt,
		Screen:  NewScreen(120, 80),
		Spawner: spawner,
		Objects: objects,
	}
}

func TestSpawnerFirstWaveFillsTarget(t *testing.T) {
	s := NewAsteroidSpawner(20)
	spawner := &recordSpawner{}

	if _, err := s.Update(spawnerCtx(16*time.Millisecond, nil, spawner)); err != nil {
		t.Fatal(err)
	}

	weight := 0
	for _, a := range spawner.asteroids() {
		weight += a.Size.Weight()
		if !a.IsProtected() {
			t.Error("wave asteroids should spawn with protection")
		}
	}
	if weight < 20 {
		t.Errorf("expected weighted population >= 20, got %d", weight)
	}
}

func TestSpawnerWeightedFill(t *testing.T) {
	s := NewAsteroidSpawner(7)
	spawner := &recordSpawner{}

	if _, err := s.Update(spawnerCtx(16*time.Millisecond, nil, spawner)); err != nil {
		t.Fatal(err)
	}

	// 7 = one large (4) + one medium (2) + one small (1)
	counts := map[AsteroidSize]int{}
	for _, a := range spawner.asteroids() {
		counts[a.Size]++
	}
	if counts[AsteroidLarge] != 1 || counts[AsteroidMedium] != 1 || counts[AsteroidSmall] != 1 {
		t.Errorf("expected 1 large, 1 medium, 1 small; got %v", counts)
	}
}

func TestSpawnerWaitsWhileFieldLive(t *testing.T) {
	s := NewAsteroidSpawner(20)
	spawner := &recordSpawner{}

	live := []Object{NewAsteroid(50, 40, AsteroidLarge, 0)}
	if _, err := s.Update(spawnerCtx(16*time.Millisecond, live, spawner)); err != nil {
		t.Fatal(err)
	}

	if len(spawner.asteroids()) != 0 {
		t.Error("spawner should not add asteroids while the field is live")
	}
	if s.delay != config.AsteroidRespawnDelay {
		t.Errorf("expected respawn delay reset to %f, got %f", config.AsteroidRespawnDelay, s.delay)
	}
}

func TestSpawnerRespawnDelay(t *testing.T) {
	s := NewAsteroidSpawner(20)
	spawner := &recordSpawner{}

	// Arm the delay, then clear the field
	live := []Object{NewAsteroid(50, 40, AsteroidLarge, 0)}
	if _, err := s.Update(spawnerCtx(16*time.Millisecond, live, spawner)); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Update(spawnerCtx(time.Second, nil, spawner)); err != nil {
		t.Fatal(err)
	}
	if len(spawner.asteroids()) != 0 {
		t.Error("wave should not spawn before the delay has elapsed")
	}

	if _, err := s.Update(spawnerCtx(time.Second, nil, spawner)); err != nil {
		t.Fatal(err)
	}
	if len(spawner.asteroids()) == 0 {
		t.Error("wave should spawn after the delay has elapsed")
	}
}

func TestSpawnerIgnoresDestroyedAsteroids(t *testing.T) {
	s := NewAsteroidSpawner(20)
	spawner := &recordSpawner{}

	dead := NewAsteroid(50, 40, AsteroidLarge, 0)
	dead.MarkDestroyed()

	if _, err := s.Update(spawnerCtx(16*time.Millisecond, []Object{dead}, spawner)); err != nil {
		t.Fatal(err)
	}

	if len(spawner.asteroids()) == 0 {
		t.Error("destroyed asteroids should not count toward the population")
	}
}
