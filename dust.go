package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"circleshooter/game"
)

// dustParticle is a background speck drifting across the playfield
type dustParticle struct {
	pos   game.Vector2D
	speed float64 // multiplier on dustBaseSpeed
	size  float32
}

// newDust scatters dust particles over the playfield
func newDust(rng *rand.Rand) []dustParticle {
	dust := make([]dustParticle, dustCount)
	for i := range dust {
		dust[i] = dustParticle{
			pos:   game.Vector2D{X: rng.Float64(), Y: rng.Float64()},
			speed: 0.3 + rng.Float64(),
			size:  0.5 + rng.Float32()*dustMaxSize,
		}
	}
	return dust
}

// updateDust drifts dust downwards and wraps it. Dust holds still while enemies are frozen.
func updateDust(dust []dustParticle, dt float64, frozen bool) {
	if frozen {
		return
	}
	for i := range dust {
		dust[i].pos.Y += dustBaseSpeed * dust[i].speed * dt
		if dust[i].pos.Y > 1 {
			dust[i].pos.Y -= 1
		}
	}
}

// drawDust draws the dust particles
func drawDust(dst *ebiten.Image, v *Viewport, dust []dustParticle) {
	for i := range dust {
		x, y := v.PlayfieldToScreen(dust[i].pos)
		vector.DrawFilledCircle(dst, x, y, dust[i].size, colorDust, false)
	}
}
