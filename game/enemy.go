package game

// Enemy is a drifting bubble that splits when shot
type Enemy struct {
	Bubble

	Kind EnemyKind

	// ColorIndex picks one of EnemyPaletteSize display colours
	ColorIndex int
}

// NewEnemy spawns an enemy of the given kind at a random position
// with a random velocity bounded by the kind's speed.
func NewEnemy(config Config, kind EnemyKind, rng Random) *Enemy {
	kindConfig := config.Enemy(kind)

	enemy := &Enemy{
		Bubble:     newBubble(kindConfig.Size),
		Kind:       kind,
		ColorIndex: rng.Intn(EnemyPaletteSize),
	}
	enemy.Position = Vector2D{
		X: randomSpawnCoordinate(rng),
		Y: randomSpawnCoordinate(rng),
	}
	enemy.Velocity = Vector2D{
		X: randomSpan(rng, kindConfig.Speed),
		Y: randomSpan(rng, kindConfig.Speed),
	}
	return enemy
}

// Physics returns the enemy's bubble
func (e *Enemy) Physics() *Bubble {
	return &e.Bubble
}

// Step moves the enemy and wraps it around the playfield
func (e *Enemy) Step(deltaTime float64) {
	e.Integrate(deltaTime)
	e.Wrap()
}

// Describe returns the render description of the enemy
func (e *Enemy) Describe() Sprite {
	sprite := describeBubble(EntityKindEnemy, &e.Bubble)
	sprite.Velocity = e.Velocity
	sprite.EnemyKind = e.Kind
	sprite.ColorIndex = e.ColorIndex
	return sprite
}
