package object

import (
	"math"
	"testing"
	"time"
)

func TestNewProjectileVelocity(t *testing.T) {
	p := NewProjectile(10, 10, 0, 3, -2) // Firing right from a moving shooter

	if math.Abs(p.VX-(3+ProjectileSpeed)) > 0.01 {
		t.Errorf("expected VX ~%f, got %f", 3+ProjectileSpeed, p.VX)
	}
	if math.Abs(p.VY-(-2)) > 0.01 {
		t.Errorf("expected VY ~-2, got %f", p.VY)
	}
	if p.Lifetime != ProjectileLifetime {
		t.Errorf("expected lifetime %f, got %f", ProjectileLifetime, p.Lifetime)
	}
}

func TestProjectileMoves(t *testing.T) {
	p := NewProjectile(10, 40, 0, 0, 0)

	dt := 100 * time.Millisecond
	if _, err := p.Update(testCtx(dt, Input{}, nil)); err != nil {
		t.Fatal(err)
	}

	wantX := 10 + ProjectileSpeed*dt.Seconds()
	if math.Abs(p.X-wantX) > 0.01 {
		t.Errorf("expected X ~%f, got %f", wantX, p.X)
	}
}

func TestProjectileExpires(t *testing.T) {
	p := NewProjectile(10, 40, 0, 0, 0)
	p.Lifetime = 0.01

	remove, err := p.Update(testCtx(20*time.Millisecond, Input{}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !remove {
		t.Error("projectile should be removed after lifetime expires")
	}
}

func TestProjectileMarkDestroyed(t *testing.T) {
	p := NewProjectile(10, 40, 0, 0, 0)
	p.MarkDestroyed()

	if !p.IsDestroyed() {
		t.Error("projectile should report destroyed")
	}

	remove, err := p.Update(testCtx(time.Millisecond, Input{}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !remove {
		t.Error("destroyed projectile should be removed on next update")
	}
}

func TestProjectileWrapsAroundScreen(t *testing.T) {
	p := NewProjectile(119, 40, 0, 0, 0)

	if _, err := p.Update(testCtx(100*time.Millisecond, Input{}, nil)); err != nil {
		t.Fatal(err)
	}

	if p.X >= 119 {
		t.Errorf("expected projectile to wrap, got X %f", p.X)
	}
}
