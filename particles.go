package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"circleshooter/game"
)

// Particle emission tuning, in playfield units
const (
	maxParticles      = 400
	trailRate         = 60.0 // particles per second while the ship moves
	trailMinSpeed     = 0.02
	trailSpeed        = 0.15
	trailSpread       = math.Pi / 6
	burstSpeedMin     = 0.05
	burstSpeedMax     = 0.25
	particleLifeMin   = 0.2
	particleLifeMax   = 0.6
	particleSizeMin   = 1.0
	particleSizeMax   = 2.5
	enemyBurstCount   = 24
	shipBurstCount    = 48
	powerUpBurstCount = 16
)

// particle is a short-lived spark drawn on top of the playfield
type particle struct {
	pos      game.Vector2D
	vel      game.Vector2D
	age      float64
	lifetime float64
	color    color.NRGBA
	size     float32
}

// alive reports whether the particle should still be drawn
func (p *particle) alive() bool {
	return p.age < p.lifetime
}

// particleSystem emits engine trails and debris bursts.
// It is purely cosmetic and never feeds back into the simulation.
type particleSystem struct {
	particles     []particle
	rng           *rand.Rand
	emissionTimer float64
}

func newParticleSystem(rng *rand.Rand) *particleSystem {
	return &particleSystem{
		particles: make([]particle, 0, maxParticles),
		rng:       rng,
	}
}

// subscribe emits bursts for destruction and pickup events
func (ps *particleSystem) subscribe(events *game.Dispatcher) {
	events.Subscribe(game.EventEnemyDestroyed, game.ListenerFunc(func(e game.Event) {
		ps.burst(e.Position, enemyBurstCount, colorRed)
	}))
	events.Subscribe(game.EventShipDestroyed, game.ListenerFunc(func(e game.Event) {
		ps.burst(e.Position, shipBurstCount, colorSilver)
	}))
	events.Subscribe(game.EventPowerUpCollected, game.ListenerFunc(func(e game.Event) {
		ps.burst(e.Position, powerUpBurstCount, colorWhite)
	}))
	events.Subscribe(game.EventLevelStarted, game.ListenerFunc(func(game.Event) {
		ps.clear()
	}))
}

// burst throws count particles in every direction from pos
func (ps *particleSystem) burst(pos game.Vector2D, count int, base color.NRGBA) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := burstSpeedMin + ps.rng.Float64()*(burstSpeedMax-burstSpeedMin)
		ps.emit(pos, game.Vector2D{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}, base)
	}
}

// trail emits exhaust behind a moving ship
func (ps *particleSystem) trail(ship game.Sprite, dt float64) {
	speed := ship.Velocity.Length()
	if speed < trailMinSpeed {
		ps.emissionTimer = 0
		return
	}

	ps.emissionTimer += dt
	count := int(trailRate * ps.emissionTimer)
	if count == 0 {
		return
	}
	ps.emissionTimer -= float64(count) / trailRate

	heading := math.Atan2(-ship.Velocity.Y, -ship.Velocity.X)
	for i := 0; i < count; i++ {
		angle := heading + (ps.rng.Float64()-0.5)*trailSpread*2
		vel := game.Vector2D{X: math.Cos(angle) * trailSpeed, Y: math.Sin(angle) * trailSpeed}
		ps.emit(ship.Position, vel, colorBlue)
	}
}

func (ps *particleSystem) emit(pos, vel game.Vector2D, base color.NRGBA) {
	if len(ps.particles) >= maxParticles {
		return
	}
	ps.particles = append(ps.particles, particle{
		pos:      pos,
		vel:      vel,
		lifetime: particleLifeMin + ps.rng.Float64()*(particleLifeMax-particleLifeMin),
		color:    base,
		size:     float32(particleSizeMin + ps.rng.Float64()*(particleSizeMax-particleSizeMin)),
	})
}

// update ages and moves particles, dropping dead ones
func (ps *particleSystem) update(dt float64) {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos.X += p.vel.X * dt
		p.pos.Y += p.vel.Y * dt
		if p.alive() {
			live = append(live, p)
		}
	}
	ps.particles = live
}

func (ps *particleSystem) clear() {
	ps.particles = ps.particles[:0]
	ps.emissionTimer = 0
}

// draw renders particles fading out over their lifetime
func (ps *particleSystem) draw(dst *ebiten.Image, v *Viewport) {
	for i := range ps.particles {
		p := &ps.particles[i]
		fade := math.Max(0, math.Min(1, 1-p.age/p.lifetime))
		c := p.color
		c.A = uint8(float64(c.A) * fade * 0.8)

		x, y := v.PlayfieldToScreen(p.pos)
		vector.DrawFilledCircle(dst, x, y, p.size, c, false)
	}
}
