package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"circleshooter/game"
)

// App adapts the simulation to ebiten's Game interface
type App struct {
	game     *game.Game
	input    game.InputProvider
	viewport *Viewport
	renderer *Renderer
	profiler *Profiler
	logger   *log.Logger

	dust           []dustParticle
	particles      *particleSystem
	snapshot       game.Snapshot
	lastUpdateTime time.Time
	showHitboxes   bool
}

// NewApp wires a game to the keyboard, mouse and ebiten renderer.
// A non-nil pilot is polled after the player's own input.
// Cosmetic effects draw from their own generator so a seeded game replays identically.
func NewApp(g *game.Game, pilot game.InputProvider, logger *log.Logger) *App {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	viewport := NewViewport(playfieldSize)
	var input game.InputProvider = NewPlayerInput(viewport)
	if pilot != nil {
		input = game.MultiInput{input, pilot}
	}

	particles := newParticleSystem(rng)
	particles.subscribe(g.Events())

	return &App{
		game:      g,
		input:     input,
		viewport:  viewport,
		renderer:  NewRenderer(viewport),
		profiler:  NewProfiler("profiles", logger),
		logger:    logger,
		dust:      newDust(rng),
		particles: particles,
		snapshot:  g.Snapshot(),
	}
}

// Update advances the simulation by the wall time since the previous tick
func (a *App) Update() error {
	now := time.Now()
	if a.lastUpdateTime.IsZero() {
		a.lastUpdateTime = now
	}
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now

	a.profiler.RecordFrame(deltaTime)
	a.handleDebugKeys()

	snap, quit := game.RunFrame(a.game, a.input, deltaTime)
	if quit {
		return ebiten.Termination
	}
	a.snapshot = snap

	if !snap.Paused {
		updateDust(a.dust, deltaTime, snap.FreezeTimer > 0)
		if ship, ok := snap.Ship(); ok {
			a.particles.trail(ship, deltaTime)
		}
		a.particles.update(deltaTime)
	}
	return nil
}

// Draw renders the last snapshot
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBlack)
	a.renderer.Render(screen, &a.snapshot, a.dust, a.particles, a.showHitboxes)
	drawMessages(screen, &a.snapshot)
	drawSideBar(screen, &a.snapshot)
	if a.showHitboxes {
		drawDebugInfo(screen, &a.snapshot, a.profiler.FPS())
	}
}

// Layout keeps a fixed logical resolution and lets ebiten scale it
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
