package game

import (
	"math"
	"testing"
)

// scriptedRandom replays a fixed sequence of floats and ints, repeating the last value
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

// newTestGame creates a game whose random source always returns 0.5,
// which spawns enemies at the centre with zero velocity
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(DefaultConfig(), NewSession(), &scriptedRandom{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// placeEnemy creates a motionless enemy of kind at (x, y)
func placeEnemy(g *Game, kind EnemyKind, x, y float64) *Enemy {
	enemy := &Enemy{Bubble: newBubble(g.config.Enemy(kind).Size), Kind: kind}
	enemy.Position = Vector2D{X: x, Y: y}
	return enemy
}

// placeBullet creates a motionless bullet at (x, y)
func placeBullet(g *Game, x, y float64) *Bullet {
	bullet := &Bullet{Bubble: newBubble(g.config.BulletRadius)}
	bullet.Position = Vector2D{X: x, Y: y}
	return bullet
}

// recordEvents collects every event the game dispatches
func recordEvents(g *Game) *[]Event {
	var events []Event
	g.Events().SubscribeAll(ListenerFunc(func(event Event) {
		events = append(events, event)
	}))
	return &events
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
