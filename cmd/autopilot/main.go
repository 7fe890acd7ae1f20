// Command autopilot plays the game headless with a JavaScript pilot and
// reports the session record. It is used to tune configs and pilot scripts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"circleshooter/config"
	"circleshooter/game"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON tuning file (env "+config.EnvConfigPath+")")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based (env "+config.EnvSeed+")")
	scriptPath := flag.String("script", "", "pilot script, the built-in example when empty (env "+config.EnvScriptPath+")")
	frames := flag.Int("frames", 60*60*5, "maximum number of frames to simulate")
	deltaTime := flag.Float64("dt", 1.0/60.0, "seconds per frame")
	flag.Parse()

	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialise config: %v", err)
	}

	cfg, err := config.GameConfig(config.StringOr(*configPath, config.EnvConfigPath, ""))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	code := game.ExampleScript
	if path := config.StringOr(*scriptPath, config.EnvScriptPath, ""); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		code = string(raw)
	}

	pilot, err := game.NewScriptInput(cfg, code)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	session := game.NewSession()
	logger := log.New(os.Stderr, fmt.Sprintf("[%s] ", session.ID.String()[:8]), log.LstdFlags)

	g, err := game.NewGame(cfg, session, game.NewRandom(config.Int64Or(*seed, config.EnvSeed, 0)))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	game.LogEvents(g.Events(), logger)

	result := run(g, pilot, *frames, *deltaTime)
	if err := pilot.Err(); err != nil {
		logger.Printf("Pilot stopped: %v", err)
	}

	final := g.Session()
	logger.Printf("Run finished after %d frames (%s): high score %d, max level %d",
		result.frames, result.reason, final.HighScore, final.MaxLevel)
	fmt.Printf("%d %d\n", final.HighScore, final.MaxLevel)
}

type runResult struct {
	frames int
	reason string
}

// run starts a game and steps it until the pilot quits, the game returns
// to the title screen or the frame limit is hit
func run(g *game.Game, pilot game.InputProvider, maxFrames int, deltaTime float64) runResult {
	g.StartGame()
	for frame := 1; frame <= maxFrames; frame++ {
		snap, quit := game.RunFrame(g, pilot, deltaTime)
		if quit {
			return runResult{frames: frame, reason: "quit"}
		}
		if snap.Phase == game.PhaseTitle {
			return runResult{frames: frame, reason: "game over"}
		}
	}
	return runResult{frames: maxFrames, reason: "frame limit"}
}
