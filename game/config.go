package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is returned when a Config fails validation
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the gameplay tuning of the simulation.
// All distances are in playfield units, all times in seconds.
type Config struct {
	// FreezeTime is added to the freeze timer by a Freeze power-up
	FreezeTime float64 `json:"freezeTime"`

	// FinishTime is the level-clear countdown once the last enemy dies
	FinishTime float64 `json:"finishTime"`

	// DeathTime is the respawn countdown after the ship is destroyed
	DeathTime float64 `json:"deathTime"`

	// ShieldTime is the shield a freshly spawned ship starts with
	ShieldTime float64 `json:"shieldTime"`

	// ShieldPowerUpTime is added to the ship shield by a Shield power-up
	ShieldPowerUpTime float64 `json:"shieldPowerUpTime"`

	// InitialLives is the number of lives at the start of a game
	InitialLives int `json:"initialLives"`

	// Ship physics
	ShipRadius          float64 `json:"shipRadius"`
	ShipAccelMultiplier float64 `json:"shipAccelMultiplier"`
	ShipResistance      float64 `json:"shipResistance"`

	// Bullet physics
	BulletRadius          float64 `json:"bulletRadius"`
	BulletSpeedMultiplier float64 `json:"bulletSpeedMultiplier"`
	BulletPointBlankRange float64 `json:"bulletPointBlankRange"` // per-axis dead zone around the ship
	BulletPointBlankBoost float64 `json:"bulletPointBlankBoost"`
	BulletKillNudge       float64 `json:"bulletKillNudge"` // extra step, in frames, after a kill

	// Power-ups
	PowerUpRadius        float64 `json:"powerUpRadius"`
	PowerUpMaxAge        float64 `json:"powerUpMaxAge"`
	PowerUpChance        float64 `json:"powerUpChance"`
	LevelScoreMultiplier int     `json:"levelScoreMultiplier"`

	// MaxExplosionSize is the radius at which an explosion is retired
	MaxExplosionSize float64 `json:"maxExplosionSize"`

	// MaxDeltaTime clamps a single simulation step
	MaxDeltaTime float64 `json:"maxDeltaTime"`

	// Enemies is indexed by EnemyKind
	Enemies []EnemyKindConfig `json:"enemies"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		FreezeTime:        6,
		FinishTime:        3,
		DeathTime:         3,
		ShieldTime:        6,
		ShieldPowerUpTime: 6,
		InitialLives:      3,

		ShipRadius:          1.0 / 25.0,
		ShipAccelMultiplier: 0.03,
		ShipResistance:      0.99,

		BulletRadius:          0.01,
		BulletSpeedMultiplier: 3,
		BulletPointBlankRange: 0.1,
		BulletPointBlankBoost: 30,
		BulletKillNudge:       5,

		PowerUpRadius:        0.03,
		PowerUpMaxAge:        9,
		PowerUpChance:        0.25,
		LevelScoreMultiplier: 10,

		MaxExplosionSize: 0.5,
		MaxDeltaTime:     0.1,

		Enemies: []EnemyKindConfig{
			GetEnemyKindConfig(EnemyKindBig),
			GetEnemyKindConfig(EnemyKindMedium),
			GetEnemyKindConfig(EnemyKindSmall),
		},
	}
}

// Enemy returns the tuning for an enemy kind.
// An unknown kind is a programming error and panics.
func (c Config) Enemy(kind EnemyKind) EnemyKindConfig {
	if int(kind) < 0 || int(kind) >= len(c.Enemies) {
		panic(fmt.Sprintf("game: no config for enemy kind %d", kind))
	}
	return c.Enemies[kind]
}

// Validate checks that every field is usable by the simulation
func (c Config) Validate() error {
	nonNegative := map[string]float64{
		"freezeTime":        c.FreezeTime,
		"finishTime":        c.FinishTime,
		"deathTime":         c.DeathTime,
		"shieldTime":        c.ShieldTime,
		"shieldPowerUpTime": c.ShieldPowerUpTime,
		"bulletKillNudge":   c.BulletKillNudge,
		"powerUpMaxAge":     c.PowerUpMaxAge,
		"bulletPointBlank":  c.BulletPointBlankRange,
		"shipAccel":         c.ShipAccelMultiplier,
	}
	for name, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, name, v)
		}
	}

	positive := map[string]float64{
		"shipRadius":            c.ShipRadius,
		"bulletRadius":          c.BulletRadius,
		"bulletSpeedMultiplier": c.BulletSpeedMultiplier,
		"bulletPointBlankBoost": c.BulletPointBlankBoost,
		"powerUpRadius":         c.PowerUpRadius,
		"maxExplosionSize":      c.MaxExplosionSize,
		"maxDeltaTime":          c.MaxDeltaTime,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v)
		}
	}

	if c.LevelScoreMultiplier < 0 {
		return fmt.Errorf("%w: levelScoreMultiplier must not be negative, got %d", ErrInvalidConfig, c.LevelScoreMultiplier)
	}
	if c.InitialLives < 1 {
		return fmt.Errorf("%w: initialLives must be at least 1, got %d", ErrInvalidConfig, c.InitialLives)
	}
	if c.ShipResistance <= 0 || c.ShipResistance > 1 {
		return fmt.Errorf("%w: shipResistance must be in (0,1], got %v", ErrInvalidConfig, c.ShipResistance)
	}
	if c.PowerUpChance < 0 || c.PowerUpChance > 1 {
		return fmt.Errorf("%w: powerUpChance must be in [0,1], got %v", ErrInvalidConfig, c.PowerUpChance)
	}
	if len(c.Enemies) != int(enemyKindCount) {
		return fmt.Errorf("%w: expected %d enemy kinds, got %d", ErrInvalidConfig, enemyKindCount, len(c.Enemies))
	}
	for i, e := range c.Enemies {
		if e.Size <= 0 || e.Speed < 0 || e.Score < 0 {
			return fmt.Errorf("%w: enemy kind %s has size=%v speed=%v score=%d",
				ErrInvalidConfig, EnemyKind(i), e.Size, e.Speed, e.Score)
		}
	}
	return nil
}

// LoadConfig reads a JSON tuning file on top of DefaultConfig.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read game config file: %w", err)
	}

	if err := json.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
