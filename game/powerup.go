package game

import "fmt"

// PowerUpVariant selects the effect of a power-up
type PowerUpVariant int

const (
	PowerUpShield PowerUpVariant = iota
	PowerUpFreeze
)

// String returns the lowercase name of the variant
func (v PowerUpVariant) String() string {
	switch v {
	case PowerUpShield:
		return "shield"
	case PowerUpFreeze:
		return "freeze"
	default:
		return fmt.Sprintf("PowerUpVariant(%d)", int(v))
	}
}

// RandomPowerUpVariant picks Shield or Freeze with equal odds
func RandomPowerUpVariant(rng Random) PowerUpVariant {
	if rng.Float64() > 0.5 {
		return PowerUpShield
	}
	return PowerUpFreeze
}

// PowerUp is a collectible left behind by small enemies
type PowerUp struct {
	Bubble

	Variant PowerUpVariant

	// Age in seconds since the power-up appeared
	Age float64
}

// NewPowerUp creates a stationary power-up at position
func NewPowerUp(config Config, variant PowerUpVariant, position Vector2D) *PowerUp {
	powerUp := &PowerUp{
		Bubble:  newBubble(config.PowerUpRadius),
		Variant: variant,
	}
	powerUp.Position.CopyFrom(position)
	return powerUp
}

// Physics returns the power-up's bubble
func (p *PowerUp) Physics() *Bubble {
	return &p.Bubble
}

// Step ages the power-up
func (p *PowerUp) Step(deltaTime float64) {
	p.Age += deltaTime
}

// Use applies the effect to the game
func (p *PowerUp) Use(g *Game) {
	switch p.Variant {
	case PowerUpShield:
		if g.ship != nil {
			g.ship.ShieldTimer += g.config.ShieldPowerUpTime
		}
	case PowerUpFreeze:
		g.freezeTimer += g.config.FreezeTime
	default:
		panic(fmt.Sprintf("game: unknown power-up variant %d", int(p.Variant)))
	}
}

// Describe returns the render description of the power-up
func (p *PowerUp) Describe() Sprite {
	sprite := describeBubble(EntityKindPowerUp, &p.Bubble)
	sprite.PowerUp = p.Variant
	return sprite
}
