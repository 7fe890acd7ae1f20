package game

// Phase is the externally visible state of the game
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseLevelClearing
	PhaseShipDestroyed
	PhaseGameOver
)

// String returns the lowercase name of the phase
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseLevelClearing:
		return "level_clearing"
	case PhaseShipDestroyed:
		return "ship_destroyed"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Sprite is the render description of one entity
type Sprite struct {
	Kind     EntityKind
	Position Vector2D
	Velocity Vector2D
	Radius   float64

	// Ship only
	Shielded bool

	// Enemy only
	EnemyKind  EnemyKind
	ColorIndex int

	// PowerUp only
	PowerUp PowerUpVariant
}

// Snapshot is a copy of everything a renderer or input provider may read.
// It shares no memory with the game and stays valid after further updates.
type Snapshot struct {
	Phase       Phase
	Level       int
	Lives       int
	Score       int
	HighScore   int
	MaxLevel    int
	Paused      bool
	DeathTimer  float64
	FinishTimer float64
	FreezeTimer float64

	// Sprites in draw order: ship, bullet, enemies, power-ups, explosions
	Sprites []Sprite
}

// Ship returns the ship sprite, if the ship is alive
func (s Snapshot) Ship() (Sprite, bool) {
	return s.first(EntityKindShip)
}

// BulletLive reports whether a bullet is in flight
func (s Snapshot) BulletLive() bool {
	_, ok := s.first(EntityKindBullet)
	return ok
}

// Count returns the number of sprites of a kind
func (s Snapshot) Count(kind EntityKind) int {
	n := 0
	for i := range s.Sprites {
		if s.Sprites[i].Kind == kind {
			n++
		}
	}
	return n
}

func (s Snapshot) first(kind EntityKind) (Sprite, bool) {
	for i := range s.Sprites {
		if s.Sprites[i].Kind == kind {
			return s.Sprites[i], true
		}
	}
	return Sprite{}, false
}

// Snapshot captures the current state of the game
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       g.Phase(),
		Level:       g.level,
		Lives:       g.lives,
		Score:       g.score,
		HighScore:   g.session.HighScore,
		MaxLevel:    g.session.MaxLevel,
		Paused:      g.paused,
		DeathTimer:  g.deathTimer,
		FinishTimer: g.finishTimer,
		FreezeTimer: g.freezeTimer,
	}

	entities := g.entities()
	snap.Sprites = make([]Sprite, 0, len(entities))
	for _, entity := range entities {
		snap.Sprites = append(snap.Sprites, entity.Describe())
	}
	return snap
}
