package game

// Bubble holds the physics state shared by every entity in the playfield.
// Positions live in the normalized [0,1]x[0,1] playfield.
type Bubble struct {
	// Position in playfield coordinates
	Position Vector2D

	// Velocity in playfield units per second
	Velocity Vector2D

	// Collision radius in playfield units
	Radius float64

	// Whether this entity is still live
	Active bool
}

// newBubble creates an active bubble of the given radius at the origin
func newBubble(radius float64) Bubble {
	return Bubble{Radius: radius, Active: true}
}

// Integrate advances the position by velocity * deltaTime
func (b *Bubble) Integrate(deltaTime float64) {
	b.Position.X += b.Velocity.X * deltaTime
	b.Position.Y += b.Velocity.Y * deltaTime
}

// Wrap moves a coordinate that left the playfield to the opposite edge.
// The coordinate is reassigned to exactly 0 or 1; overshoot is discarded.
func (b *Bubble) Wrap() {
	pos := &b.Position
	if pos.X < 0 {
		pos.X = 1
	}
	if pos.Y < 0 {
		pos.Y = 1
	}
	if pos.X > 1 {
		pos.X = 0
	}
	if pos.Y > 1 {
		pos.Y = 0
	}
}

// IsOut reports whether any coordinate is outside the playfield
func (b *Bubble) IsOut() bool {
	pos := b.Position
	return pos.X < 0 || pos.Y < 0 || pos.X > 1 || pos.Y > 1
}

// IsColliding checks if this bubble overlaps another one
func (b *Bubble) IsColliding(other *Bubble) bool {
	distance := b.Position.Distance(other.Position)
	return distance < (b.Radius + other.Radius)
}

// EntityKind identifies the variant of an entity
type EntityKind int

const (
	EntityKindShip EntityKind = iota
	EntityKindBullet
	EntityKindEnemy
	EntityKindPowerUp
	EntityKindExplosion
)

// String returns the lowercase name of the kind
func (k EntityKind) String() string {
	switch k {
	case EntityKindShip:
		return "ship"
	case EntityKindBullet:
		return "bullet"
	case EntityKindEnemy:
		return "enemy"
	case EntityKindPowerUp:
		return "powerup"
	case EntityKindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Steppable is anything the simulation advances once per frame
type Steppable interface {
	Step(deltaTime float64)
}

// Describer produces the read-only render description of an entity
type Describer interface {
	Describe() Sprite
}

// Entity is implemented by Ship, Bullet, Enemy, PowerUp and Explosion
type Entity interface {
	Steppable
	Describer

	// Physics exposes the shared bubble state
	Physics() *Bubble
}

// describeBubble fills the fields of a Sprite that every variant shares
func describeBubble(kind EntityKind, b *Bubble) Sprite {
	return Sprite{
		Kind:     kind,
		Position: b.Position,
		Radius:   b.Radius,
	}
}
