package game

// handleCollisions resolves bullet, ship and power-up contacts for one step.
// The bullet kills at most one enemy per step; the first hit in list order wins.
func (g *Game) handleCollisions(deltaTime float64) {
	for i := 0; i < len(g.enemies); i++ {
		enemy := g.enemies[i]

		if g.bullet != nil && enemy.IsColliding(&g.bullet.Bubble) {
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			g.bullet.Step(deltaTime * g.config.BulletKillNudge)
			g.spawnEnemies(enemy)
			g.spawnExplosion(enemy.Position)
			g.markScore(enemy)
			if len(g.enemies) == 0 {
				g.finishTimer = g.config.FinishTime
			}
			break
		}

		if g.ship == nil {
			continue
		}
		if !enemy.IsColliding(&g.ship.Bubble) || g.ship.Shielded() {
			continue
		}
		g.destroyShip()
	}

	if g.ship == nil {
		return
	}

	// Power-ups are collectible regardless of the shield
	remaining := g.powerUps[:0]
	for _, powerUp := range g.powerUps {
		if powerUp.IsColliding(&g.ship.Bubble) {
			g.applyPowerUp(powerUp)
			continue
		}
		remaining = append(remaining, powerUp)
	}
	for i := len(remaining); i < len(g.powerUps); i++ {
		g.powerUps[i] = nil
	}
	g.powerUps = remaining
}

// destroyShip removes the ship, takes a life and starts the respawn countdown
func (g *Game) destroyShip() {
	position := g.ship.Position
	g.spawnExplosion(position)
	g.ship = nil
	g.lives--
	g.deathTimer = g.config.DeathTime
	g.dispatch(EventShipDestroyed, position)
}

// markScore credits the kill and raises the high score if needed
func (g *Game) markScore(enemy *Enemy) {
	g.score += g.config.Enemy(enemy.Kind).Score
	g.session.RecordScore(g.score)

	g.events.Dispatch(Event{
		Type:      EventEnemyDestroyed,
		Level:     g.level,
		Lives:     g.lives,
		Score:     g.score,
		Position:  enemy.Position,
		EnemyKind: enemy.Kind,
	})
}

// applyPowerUp uses the power-up and awards the level bonus
func (g *Game) applyPowerUp(powerUp *PowerUp) {
	powerUp.Use(g)
	g.score += g.level * g.config.LevelScoreMultiplier
	g.session.RecordScore(g.score)

	g.events.Dispatch(Event{
		Type:     EventPowerUpCollected,
		Level:    g.level,
		Lives:    g.lives,
		Score:    g.score,
		Position: powerUp.Position,
		PowerUp:  powerUp.Variant,
	})
}
