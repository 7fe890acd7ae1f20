package game

import "math"

// BulletFlightTime returns how long a bullet fired from origin takes to reach aim.
// Bullet speed scales with the aim distance, so the time is constant
// outside the point-blank zone and much shorter inside it.
func BulletFlightTime(config Config, origin, aim Vector2D) float64 {
	t := 1 / config.BulletSpeedMultiplier
	if math.Abs(aim.X-origin.X) < config.BulletPointBlankRange && math.Abs(aim.Y-origin.Y) < config.BulletPointBlankRange {
		t /= config.BulletPointBlankBoost
	}
	return t
}

// PredictiveAim returns the point to fire at so that the bullet meets a
// target moving in a straight line. Wrapping is not taken into account.
func PredictiveAim(config Config, origin, target, velocity Vector2D) Vector2D {
	t := BulletFlightTime(config, origin, target)

	// The flight time only changes when the lead crosses the point-blank edge
	aim := target
	for i := 0; i < 3; i++ {
		aim = Vector2D{X: target.X + velocity.X*t, Y: target.Y + velocity.Y*t}
		next := BulletFlightTime(config, origin, aim)
		if next == t {
			break
		}
		t = next
	}
	return aim
}
