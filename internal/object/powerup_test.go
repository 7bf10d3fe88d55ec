package object

import (
	"testing"
	"time"

	"asteroids/internal/config"
)

func TestPowerUpRemovedOnceCollected(t *testing.T) {
	pu := NewPowerUp(50, 40, PowerUpSpread)

	remove, err := pu.Update(testCtx(16*time.Millisecond, Input{}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if remove {
		t.Error("uncollected power-up should stay in the world")
	}

	pu.MarkDestroyed()
	remove, err = pu.Update(testCtx(16*time.Millisecond, Input{}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !remove {
		t.Error("collected power-up should be removed")
	}
}

func TestPowerUpPickupRadius(t *testing.T) {
	pu := NewPowerUp(50, 40, PowerUpShield)
	if pu.GetRadius() != config.PowerUpRadius {
		t.Errorf("expected radius %f, got %f", config.PowerUpRadius, pu.GetRadius())
	}

	x, y := pu.GetPosition()
	if x != 50 || y != 40 {
		t.Errorf("expected position (50, 40), got (%f, %f)", x, y)
	}
}
