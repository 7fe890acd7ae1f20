package game

import (
	"fmt"
	"math"
)

// Game owns every entity and advances the simulation one step at a time.
// It is not safe for concurrent use; frontends drive it from a single loop.
type Game struct {
	config  Config
	rng     Random
	events  *Dispatcher
	session Session

	// Current statistics
	lives int
	level int
	score int

	// Time management
	deathTimer  float64
	finishTimer float64
	freezeTimer float64
	paused      bool

	// Game objects, each owned by exactly one slot or list
	ship       *Ship
	bullet     *Bullet
	enemies    []*Enemy
	powerUps   []*PowerUp   // oldest first
	explosions []*Explosion // oldest first
}

// NewGame creates a game in the title state.
// The session carries high score and max level across games.
func NewGame(config Config, session Session, rng Random) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("game: nil random source")
	}

	return &Game{
		config:  config,
		rng:     rng,
		events:  NewDispatcher(),
		session: session,
		lives:   config.InitialLives,
	}, nil
}

// Events returns the dispatcher the game reports to
func (g *Game) Events() *Dispatcher {
	return g.events
}

// Session returns the persistent statistics
func (g *Game) Session() Session {
	return g.session
}

// Config returns the tuning the game runs with
func (g *Game) Config() Config {
	return g.config
}

// Level returns the current level; 0 is the title screen
func (g *Game) Level() int {
	return g.level
}

// Lives returns the remaining lives
func (g *Game) Lives() int {
	return g.lives
}

// Score returns the score of the current game
func (g *Game) Score() int {
	return g.score
}

// Paused reports whether the simulation is paused
func (g *Game) Paused() bool {
	return g.paused
}

// Phase derives the state machine position from the counters
func (g *Game) Phase() Phase {
	switch {
	case g.level <= 0:
		return PhaseTitle
	case g.ship == nil && g.lives <= 0:
		return PhaseGameOver
	case g.ship == nil:
		return PhaseShipDestroyed
	case len(g.enemies) == 0:
		return PhaseLevelClearing
	default:
		return PhasePlaying
	}
}

// StartGame resets score and lives and starts level 1
func (g *Game) StartGame() {
	g.score = 0
	g.lives = g.config.InitialLives
	g.StartLevel(1)
}

// ReturnToTitle abandons the current game
func (g *Game) ReturnToTitle() {
	g.StartLevel(0)
}

// StartLevel clears the playfield and spawns level big enemies and a new ship.
// A level of 0 or less enters the title state with an empty playfield.
func (g *Game) StartLevel(level int) {
	if level < 0 {
		level = 0
	}
	g.level = level
	g.session.RecordLevel(level)

	// Remove all objects
	g.ship = nil
	g.bullet = nil
	g.enemies = g.enemies[:0]
	g.powerUps = g.powerUps[:0]
	g.explosions = g.explosions[:0]

	g.deathTimer = 0
	g.finishTimer = 0
	g.freezeTimer = 0
	g.paused = false

	if level == 0 {
		return
	}

	// Spawn new objects
	g.ship = NewShip(g.config)
	for i := 0; i < level; i++ {
		g.enemies = append(g.enemies, NewEnemy(g.config, EnemyKindBig, g.rng))
	}

	g.dispatch(EventLevelStarted, Vector2D{X: 0.5, Y: 0.5})
}

// TogglePause flips the paused flag
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// ShootAt fires a bullet from the ship towards target.
// Ignored while a bullet is in flight or when there is no ship.
func (g *Game) ShootAt(target Vector2D) {
	if g.bullet != nil || g.ship == nil {
		return
	}
	g.bullet = NewBullet(g.config, g.ship.Position, target)
}

// FlyTo steers the ship towards target
func (g *Game) FlyTo(target Vector2D) {
	if g.ship == nil {
		return
	}
	g.ship.FlyTo(target)
}

// StopFlying cancels steering
func (g *Game) StopFlying() {
	if g.ship == nil {
		return
	}
	g.ship.StopFlying()
}

// Update advances the simulation by deltaTime seconds.
// The order of the stages is fixed; later stages see the results of earlier ones.
func (g *Game) Update(deltaTime float64) {
	if g.level <= 0 || g.paused {
		return
	}
	deltaTime, ok := g.sanitizeDelta(deltaTime)
	if !ok {
		return
	}

	g.handleCollisions(deltaTime)

	g.removeInactiveObjects()

	g.updateExplosions(deltaTime)
	g.updatePowerUps(deltaTime)

	// Update freeze timer
	if g.freezeTimer > 0 {
		g.freezeTimer -= deltaTime
	}

	if len(g.enemies) == 0 {
		// Update finish timer
		if g.finishTimer > 0 {
			g.finishTimer -= deltaTime
		} else {
			g.levelUp()
			return
		}
	} else if g.freezeTimer <= 0 {
		for _, enemy := range g.enemies {
			enemy.Step(deltaTime)
		}
	}

	if g.bullet != nil {
		g.bullet.Step(deltaTime)
	}

	// Ship spawn
	if g.ship == nil {
		if g.deathTimer > 0 {
			g.deathTimer -= deltaTime
		} else if g.lives > 0 {
			g.ship = NewShip(g.config)
			g.dispatch(EventShipRespawned, g.ship.Position)
		} else {
			g.gameOver()
		}
		return
	}

	g.ship.TickShield(deltaTime)
	g.ship.Step(deltaTime)
}

// sanitizeDelta rejects negative or NaN steps and clamps large ones
func (g *Game) sanitizeDelta(deltaTime float64) (float64, bool) {
	if math.IsNaN(deltaTime) || deltaTime < 0 {
		return 0, false
	}
	if deltaTime > g.config.MaxDeltaTime {
		deltaTime = g.config.MaxDeltaTime
	}
	return deltaTime, true
}

// levelUp grants a life and starts the next level
func (g *Game) levelUp() {
	g.level++
	g.lives++
	g.dispatch(EventLevelCleared, Vector2D{})
	g.StartLevel(g.level)
}

// gameOver returns to the title state once the last life is gone
func (g *Game) gameOver() {
	g.dispatch(EventGameOver, Vector2D{})
	g.StartLevel(0)
}

// removeInactiveObjects drops a bullet that left the playfield
func (g *Game) removeInactiveObjects() {
	if g.bullet != nil && !g.bullet.Active {
		g.bullet = nil
	}
}

// updateExplosions retires the oldest explosion once it is fully grown,
// then grows the rest. Only the front of the queue is checked per step.
func (g *Game) updateExplosions(deltaTime float64) {
	if len(g.explosions) > 0 && g.explosions[0].Radius > g.config.MaxExplosionSize {
		g.explosions[0] = nil
		g.explosions = g.explosions[1:]
	}
	for _, explosion := range g.explosions {
		explosion.Step(deltaTime)
	}
}

// updatePowerUps expires the oldest power-up once it is too old,
// then ages the rest. Only the front of the queue is checked per step.
func (g *Game) updatePowerUps(deltaTime float64) {
	if len(g.powerUps) > 0 && g.powerUps[0].Age > g.config.PowerUpMaxAge {
		g.powerUps[0] = nil
		g.powerUps = g.powerUps[1:]
	}
	for _, powerUp := range g.powerUps {
		powerUp.Step(deltaTime)
	}
}

// entities lists every live entity in draw order
func (g *Game) entities() []Entity {
	all := make([]Entity, 0, 2+len(g.enemies)+len(g.powerUps)+len(g.explosions))
	if g.ship != nil {
		all = append(all, g.ship)
	}
	if g.bullet != nil {
		all = append(all, g.bullet)
	}
	for _, enemy := range g.enemies {
		all = append(all, enemy)
	}
	for _, powerUp := range g.powerUps {
		all = append(all, powerUp)
	}
	for _, explosion := range g.explosions {
		all = append(all, explosion)
	}
	return all
}

// dispatch reports an event with the current counters
func (g *Game) dispatch(eventType EventType, position Vector2D) {
	g.events.Dispatch(Event{
		Type:     eventType,
		Level:    g.level,
		Lives:    g.lives,
		Score:    g.score,
		Position: position,
	})
}
