package game

// Ship is the player-controlled bubble
type Ship struct {
	Bubble

	// Acceleration applied to velocity every step, set by FlyTo
	Acceleration Vector2D

	// ShieldTimer counts down; the ship ignores enemies while it is positive
	ShieldTimer float64

	accelMultiplier float64
	resistance      float64
}

// NewShip creates a ship in the middle of the playfield with a fresh shield
func NewShip(config Config) *Ship {
	ship := &Ship{
		Bubble:          newBubble(config.ShipRadius),
		ShieldTimer:     config.ShieldTime,
		accelMultiplier: config.ShipAccelMultiplier,
		resistance:      config.ShipResistance,
	}
	ship.Position = Vector2D{X: 0.5, Y: 0.5}
	return ship
}

// Physics returns the ship's bubble
func (s *Ship) Physics() *Bubble {
	return &s.Bubble
}

// Shielded reports whether the ship is currently invulnerable
func (s *Ship) Shielded() bool {
	return s.ShieldTimer > 0
}

// FlyTo adds a steering push towards target.
// Calls accumulate until StopFlying.
func (s *Ship) FlyTo(target Vector2D) {
	target.Subtract(s.Position)
	s.Acceleration.X += target.X * s.accelMultiplier
	s.Acceleration.Y += target.Y * s.accelMultiplier
}

// StopFlying clears the steering acceleration
func (s *Ship) StopFlying() {
	s.Acceleration.Zero()
}

// TickShield counts the shield down by deltaTime
func (s *Ship) TickShield(deltaTime float64) {
	if s.ShieldTimer > 0 {
		s.ShieldTimer -= deltaTime
	}
}

// Step accelerates, applies resistance, moves and wraps the ship.
// Resistance is applied once per step regardless of deltaTime.
func (s *Ship) Step(deltaTime float64) {
	s.Velocity.Add(s.Acceleration)
	s.Velocity.Scale(Vector2D{X: s.resistance, Y: s.resistance})
	s.Integrate(deltaTime)
	s.Wrap()
}

// Describe returns the render description of the ship
func (s *Ship) Describe() Sprite {
	sprite := describeBubble(EntityKindShip, &s.Bubble)
	sprite.Velocity = s.Velocity
	sprite.Shielded = s.Shielded()
	return sprite
}
