package game

// Explosion is a purely visual ring that grows until it is retired.
// Its radius doubles as its age.
type Explosion struct {
	Bubble
}

// NewExplosion creates a zero-radius explosion at position
func NewExplosion(position Vector2D) *Explosion {
	explosion := &Explosion{Bubble: newBubble(0)}
	explosion.Position.CopyFrom(position)
	return explosion
}

// Physics returns the explosion's bubble
func (x *Explosion) Physics() *Bubble {
	return &x.Bubble
}

// Step grows the explosion
func (x *Explosion) Step(deltaTime float64) {
	x.Radius += deltaTime
}

// Describe returns the render description of the explosion
func (x *Explosion) Describe() Sprite {
	return describeBubble(EntityKindExplosion, &x.Bubble)
}
