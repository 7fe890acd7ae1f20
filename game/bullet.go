package game

import "math"

// Bullet is the single projectile the ship may have in flight
type Bullet struct {
	Bubble
}

// NewBullet fires a bullet from origin towards target.
// Speed is proportional to the distance; targets inside the point-blank
// range around the origin get a large boost so close taps still travel.
func NewBullet(config Config, origin, target Vector2D) *Bullet {
	bullet := &Bullet{Bubble: newBubble(config.BulletRadius)}
	bullet.Position.CopyFrom(origin)

	target.Subtract(origin)
	bullet.Velocity.X = target.X * config.BulletSpeedMultiplier
	bullet.Velocity.Y = target.Y * config.BulletSpeedMultiplier

	if math.Abs(target.X) < config.BulletPointBlankRange && math.Abs(target.Y) < config.BulletPointBlankRange {
		boost := config.BulletPointBlankBoost
		bullet.Velocity.Scale(Vector2D{X: boost, Y: boost})
	}

	return bullet
}

// Physics returns the bullet's bubble
func (b *Bullet) Physics() *Bubble {
	return &b.Bubble
}

// Step moves the bullet and deactivates it once it leaves the playfield
func (b *Bullet) Step(deltaTime float64) {
	b.Integrate(deltaTime)
	if b.IsOut() {
		b.Active = false
	}
}

// Describe returns the render description of the bullet
func (b *Bullet) Describe() Sprite {
	sprite := describeBubble(EntityKindBullet, &b.Bubble)
	sprite.Velocity = b.Velocity
	return sprite
}
