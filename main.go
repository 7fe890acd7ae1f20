package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"circleshooter/config"
	"circleshooter/game"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON tuning file (env "+config.EnvConfigPath+")")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based (env "+config.EnvSeed+")")
	scriptPath := flag.String("script", "", "let a JavaScript pilot fly instead of the mouse (env "+config.EnvScriptPath+")")
	flag.Parse()

	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialise config: %v", err)
	}

	cfg, err := config.GameConfig(config.StringOr(*configPath, config.EnvConfigPath, ""))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rng := game.NewRandom(config.Int64Or(*seed, config.EnvSeed, 0))

	session := game.NewSession()
	logger := log.New(os.Stderr, fmt.Sprintf("[%s] ", session.ID.String()[:8]), log.LstdFlags)

	g, err := game.NewGame(cfg, session, rng)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	game.LogEvents(g.Events(), logger)

	var pilot game.InputProvider
	var scripted *game.ScriptInput
	if path := config.StringOr(*scriptPath, config.EnvScriptPath, ""); path != "" {
		code, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		scripted, err = game.NewScriptInput(cfg, string(code))
		if err != nil {
			log.Fatalf("Failed to load script %s: %v", path, err)
		}
		logger.Printf("Scripted pilot loaded from %s", path)
		pilot = scripted
	}

	app := NewApp(g, pilot, logger)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Circle Shooter")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	if scripted != nil && scripted.Err() != nil {
		logger.Printf("Pilot stopped: %v", scripted.Err())
	}

	final := g.Session()
	logger.Printf("Session finished: high score %d, max level %d", final.HighScore, final.MaxLevel)
}
