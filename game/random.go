package game

import (
	"math/rand"
	"time"
)

// Random is the source of randomness for spawning.
// *rand.Rand satisfies it; tests substitute a scripted sequence.
type Random interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64

	// Intn returns an integer in [0, n)
	Intn(n int) int
}

// NewRandom returns a seeded generator.
// A zero seed uses the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomSpan returns a value in [-magnitude, magnitude)
func randomSpan(rng Random, magnitude float64) float64 {
	return rng.Float64()*magnitude*2 - magnitude
}

// randomSpawnCoordinate returns a coordinate in [-1, 2).
// Spawns outside the playfield snap to an edge on their first wrap.
func randomSpawnCoordinate(rng Random) float64 {
	return (rng.Float64()-0.5)*3 + 0.5
}
