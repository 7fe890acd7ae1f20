package main

import (
	"math/rand"
	"testing"

	"circleshooter/game"
)

func TestViewportRoundTrip(t *testing.T) {
	v := &Viewport{X: 10, Y: 20, Size: 400}

	x, y := v.ScreenToPlayfield(210, 120)
	if x != 0.5 || y != 0.25 {
		t.Fatalf("got (%v, %v), want (0.5, 0.25)", x, y)
	}

	sx, sy := v.PlayfieldToScreen(game.Vector2D{X: x, Y: y})
	if sx != 210 || sy != 120 {
		t.Fatalf("got (%v, %v), want (210, 120)", sx, sy)
	}
	if got := v.Length(0.1); got != 40 {
		t.Fatalf("got length %v, want 40", got)
	}
}

func TestDustStopsWhileFrozen(t *testing.T) {
	dust := newDust(rand.New(rand.NewSource(1)))
	if len(dust) != dustCount {
		t.Fatalf("got %d particles, want %d", len(dust), dustCount)
	}

	before := dust[0].pos
	updateDust(dust, 1, true)
	if dust[0].pos != before {
		t.Fatalf("frozen dust moved")
	}

	updateDust(dust, 1, false)
	if dust[0].pos == before {
		t.Fatalf("dust did not move")
	}
	for i := range dust {
		if dust[i].pos.Y < 0 || dust[i].pos.Y > 1 {
			t.Fatalf("particle %d left the playfield: %+v", i, dust[i].pos)
		}
	}
}

func TestParticlesFollowGameEvents(t *testing.T) {
	g, err := game.NewGame(game.DefaultConfig(), game.NewSession(), game.NewRandom(1))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	ps := newParticleSystem(rand.New(rand.NewSource(1)))
	ps.subscribe(g.Events())

	g.Events().Dispatch(game.Event{Type: game.EventEnemyDestroyed, Position: game.Vector2D{X: 0.3, Y: 0.3}})
	if len(ps.particles) != enemyBurstCount {
		t.Fatalf("got %d particles, want %d", len(ps.particles), enemyBurstCount)
	}

	ps.update(particleLifeMax + 0.01)
	if len(ps.particles) != 0 {
		t.Fatalf("%d particles outlived their lifetime", len(ps.particles))
	}

	ps.burst(game.Vector2D{}, maxParticles+10, colorRed)
	if len(ps.particles) != maxParticles {
		t.Fatalf("got %d particles, want cap %d", len(ps.particles), maxParticles)
	}
	g.StartGame()
	if len(ps.particles) != 0 {
		t.Fatalf("new level kept %d particles", len(ps.particles))
	}
}

func TestTrailNeedsMovingShip(t *testing.T) {
	ps := newParticleSystem(rand.New(rand.NewSource(1)))

	ps.trail(game.Sprite{Kind: game.EntityKindShip}, 1)
	if len(ps.particles) != 0 {
		t.Fatalf("resting ship left a trail")
	}

	ps.trail(game.Sprite{Kind: game.EntityKindShip, Velocity: game.Vector2D{X: 0.1}}, 0.5)
	if len(ps.particles) != 30 {
		t.Fatalf("got %d trail particles, want 30", len(ps.particles))
	}
	for _, p := range ps.particles {
		if p.vel.X >= 0 {
			t.Fatalf("trail particle moving forward: %+v", p.vel)
		}
	}
}
