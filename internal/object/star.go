package object

import (
	"math/rand"

	"asteroids/internal/draw"
)

// star is a single background star with oscillating brightness.
type star struct {
	x, y       float64
	brightness float64
	rate       float64 // Brightness change per second; sign flips at the limits
}

// Starfield is the twinkling background. One object holds all stars so the
// world list doesn't carry hundreds of entries.
type Starfield struct {
	stars []star
}

// NewStarfield scatters count stars across the screen with random
// brightness and twinkle rates.
func NewStarfield(count int, screen Screen) *Starfield {
	stars := make([]star, count)
	for i := range stars {
		rate := 0.3 + rand.Float64()*0.8
		if rand.Intn(2) == 0 {
			rate = -rate
		}
		stars[i] = star{
			x:          rand.Float64() * float64(screen.Width),
			y:          rand.Float64() * float64(screen.Height),
			brightness: rand.Float64(),
			rate:       rate,
		}
	}
	return &Starfield{stars: stars}
}

// Update twinkles each star, reversing direction at the brightness limits.
func (f *Starfield) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	for i := range f.stars {
		s := &f.stars[i]
		s.brightness += s.rate * dt
		if s.brightness > 1 {
			s.brightness = 1
			s.rate = -s.rate
		} else if s.brightness < 0 {
			s.brightness = 0
			s.rate = -s.rate
		}
	}
	return false, nil
}

// Draw renders stars as shade-ramp glyphs behind the canvas content.
// The faintest stars are skipped entirely, which reads as twinkling.
func (f *Starfield) Draw(ctx DrawContext) error {
	for i := range f.stars {
		s := &f.stars[i]
		if s.brightness < 0.2 {
			continue
		}
		col, row := ctx.Canvas.LogicalToTerminal(s.x, s.y)
		ctx.Writer.MoveCursor(col, row)
		ctx.Writer.WriteRune(draw.ShadeLevel(s.brightness))
	}
	return nil
}
