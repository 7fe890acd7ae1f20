package game

// spawnEnemies splits a destroyed enemy into two of the next kind at its position.
// Small enemies do not split but may drop a power-up instead.
func (g *Game) spawnEnemies(parent *Enemy) {
	next, ok := parent.Kind.Next()
	if !ok {
		if g.rng.Float64() < g.config.PowerUpChance {
			g.spawnPowerUp(parent.Position)
		}
		return
	}

	for i := 0; i < 2; i++ {
		enemy := NewEnemy(g.config, next, g.rng)
		enemy.Position.CopyFrom(parent.Position)
		g.enemies = append(g.enemies, enemy)
	}
}

// spawnExplosion queues an explosion at position
func (g *Game) spawnExplosion(position Vector2D) {
	g.explosions = append(g.explosions, NewExplosion(position))
}

// spawnPowerUp queues a random power-up at position
func (g *Game) spawnPowerUp(position Vector2D) {
	variant := RandomPowerUpVariant(g.rng)
	g.powerUps = append(g.powerUps, NewPowerUp(g.config, variant, position))
}
