package config

import (
	"fmt"
	"log"

	"circleshooter/game"
)

// GameConfig returns the tuning at path, or the defaults when path is empty
func GameConfig(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}

	cfg, err := game.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("game config %s: %w", path, err)
	}
	log.Printf("Loaded game config from %s", path)
	return cfg, nil
}
