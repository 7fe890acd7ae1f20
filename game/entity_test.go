package game

import "testing"

func TestWrapSnapsToOppositeEdge(t *testing.T) {
	tests := []struct {
		name string
		in   Vector2D
		want Vector2D
	}{
		{"inside", Vector2D{X: 0.3, Y: 0.7}, Vector2D{X: 0.3, Y: 0.7}},
		{"left", Vector2D{X: -0.2, Y: 0.5}, Vector2D{X: 1, Y: 0.5}},
		{"right", Vector2D{X: 1.3, Y: 0.5}, Vector2D{X: 0, Y: 0.5}},
		{"top", Vector2D{X: 0.5, Y: -0.01}, Vector2D{X: 0.5, Y: 1}},
		{"bottom corner", Vector2D{X: 1.1, Y: 1.1}, Vector2D{X: 0, Y: 0}},
		{"edges stay", Vector2D{X: 0, Y: 1}, Vector2D{X: 0, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBubble(0.1)
			b.Position = tt.in
			b.Wrap()
			if b.Position != tt.want {
				t.Fatalf("got %+v, want %+v", b.Position, tt.want)
			}
			if b.IsOut() {
				t.Fatalf("wrapped bubble is still out")
			}
		})
	}
}

func TestIntegrate(t *testing.T) {
	b := newBubble(0.1)
	b.Position = Vector2D{X: 0.5, Y: 0.5}
	b.Velocity = Vector2D{X: 1, Y: -2}
	b.Integrate(0.1)
	if !almostEqual(b.Position.X, 0.6) || !almostEqual(b.Position.Y, 0.3) {
		t.Fatalf("got %+v, want (0.6, 0.3)", b.Position)
	}
}

func TestIsCollidingIsStrictAndSymmetric(t *testing.T) {
	a := newBubble(0.25)
	b := newBubble(0.25)
	a.Position = Vector2D{X: 0, Y: 0.5}
	b.Position = Vector2D{X: 0.5, Y: 0.5}

	// Exactly touching does not count
	if a.IsColliding(&b) {
		t.Fatalf("touching bubbles reported as colliding")
	}

	b.Position.X = 0.49
	if !a.IsColliding(&b) || !b.IsColliding(&a) {
		t.Fatalf("overlapping bubbles not colliding both ways")
	}
}

func TestShipSteeringAndResistance(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(cfg)

	if ship.Position != (Vector2D{X: 0.5, Y: 0.5}) || !ship.Shielded() {
		t.Fatalf("new ship: got %+v shielded=%v", ship.Position, ship.Shielded())
	}

	ship.FlyTo(Vector2D{X: 1, Y: 0.5})
	ship.FlyTo(Vector2D{X: 1, Y: 0.5})
	if !almostEqual(ship.Acceleration.X, 2*0.5*cfg.ShipAccelMultiplier) {
		t.Fatalf("FlyTo does not accumulate: got %+v", ship.Acceleration)
	}

	ship.Step(0.1)
	wantVX := ship.Acceleration.X * cfg.ShipResistance
	if !almostEqual(ship.Velocity.X, wantVX) {
		t.Fatalf("velocity: got %v, want %v", ship.Velocity.X, wantVX)
	}
	if !almostEqual(ship.Position.X, 0.5+wantVX*0.1) {
		t.Fatalf("position: got %v, want %v", ship.Position.X, 0.5+wantVX*0.1)
	}

	ship.StopFlying()
	if ship.Acceleration != (Vector2D{}) {
		t.Fatalf("StopFlying: got %+v", ship.Acceleration)
	}
}

func TestShieldTicksDown(t *testing.T) {
	ship := NewShip(DefaultConfig())
	ship.ShieldTimer = 0.05
	ship.TickShield(0.1)
	if ship.Shielded() {
		t.Fatalf("shield still up at %v", ship.ShieldTimer)
	}
	ship.TickShield(0.1)
	if !almostEqual(ship.ShieldTimer, -0.05) {
		t.Fatalf("expired shield kept counting: %v", ship.ShieldTimer)
	}
}

func TestBulletVelocity(t *testing.T) {
	cfg := DefaultConfig()

	far := NewBullet(cfg, Vector2D{X: 0.5, Y: 0.5}, Vector2D{X: 0.9, Y: 0.3})
	if !almostEqual(far.Velocity.X, 0.4*3) || !almostEqual(far.Velocity.Y, -0.2*3) {
		t.Fatalf("far bullet: got %+v", far.Velocity)
	}

	near := NewBullet(cfg, Vector2D{X: 0.5, Y: 0.5}, Vector2D{X: 0.55, Y: 0.45})
	if !almostEqual(near.Velocity.X, 0.05*3*30) || !almostEqual(near.Velocity.Y, -0.05*3*30) {
		t.Fatalf("point-blank bullet: got %+v", near.Velocity)
	}
}

func TestBulletDeactivatesWhenOut(t *testing.T) {
	bullet := NewBullet(DefaultConfig(), Vector2D{X: 0.5, Y: 0.5}, Vector2D{X: 1, Y: 0.5})
	bullet.Step(0.1)
	if !bullet.Active {
		t.Fatalf("bullet deactivated inside the playfield")
	}
	bullet.Step(1)
	if bullet.Active {
		t.Fatalf("bullet still active at %+v", bullet.Position)
	}
}

func TestNewEnemyDrawsFromRandom(t *testing.T) {
	rng := &scriptedRandom{floats: []float64{0, 1, 0.25, 0.75}, ints: []int{4}}
	enemy := NewEnemy(DefaultConfig(), EnemyKindMedium, rng)

	if enemy.ColorIndex != 4 {
		t.Fatalf("colour: got %d, want 4", enemy.ColorIndex)
	}
	if !almostEqual(enemy.Position.X, -1) || !almostEqual(enemy.Position.Y, 2) {
		t.Fatalf("position: got %+v, want (-1, 2)", enemy.Position)
	}
	if !almostEqual(enemy.Velocity.X, -0.075) || !almostEqual(enemy.Velocity.Y, 0.075) {
		t.Fatalf("velocity: got %+v, want (-0.075, 0.075)", enemy.Velocity)
	}
	if enemy.Radius != 0.075 {
		t.Fatalf("radius: got %v, want 0.075", enemy.Radius)
	}
}

func TestExplosionGrowsAndPowerUpAges(t *testing.T) {
	explosion := NewExplosion(Vector2D{X: 0.2, Y: 0.2})
	explosion.Step(0.1)
	explosion.Step(0.1)
	if !almostEqual(explosion.Radius, 0.2) {
		t.Fatalf("explosion radius: got %v", explosion.Radius)
	}

	powerUp := NewPowerUp(DefaultConfig(), PowerUpFreeze, Vector2D{X: 0.2, Y: 0.2})
	powerUp.Step(0.5)
	if powerUp.Age != 0.5 || powerUp.Position != (Vector2D{X: 0.2, Y: 0.2}) {
		t.Fatalf("power-up: got age %v at %+v", powerUp.Age, powerUp.Position)
	}
}

func TestRandomPowerUpVariant(t *testing.T) {
	if v := RandomPowerUpVariant(&scriptedRandom{floats: []float64{0.51}}); v != PowerUpShield {
		t.Fatalf("0.51: got %v, want shield", v)
	}
	if v := RandomPowerUpVariant(&scriptedRandom{floats: []float64{0.5}}); v != PowerUpFreeze {
		t.Fatalf("0.5: got %v, want freeze", v)
	}
}

func TestEnemyKindNext(t *testing.T) {
	if next, ok := EnemyKindBig.Next(); !ok || next != EnemyKindMedium {
		t.Fatalf("big: got %v %v", next, ok)
	}
	if next, ok := EnemyKindMedium.Next(); !ok || next != EnemyKindSmall {
		t.Fatalf("medium: got %v %v", next, ok)
	}
	if _, ok := EnemyKindSmall.Next(); ok {
		t.Fatalf("small should not split")
	}
}
