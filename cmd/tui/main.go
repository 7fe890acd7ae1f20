// Command tui plays the game in a terminal. The mouse aims and steers
// like in the windowed build; P and Q work the same way.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"circleshooter/config"
	"circleshooter/game"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	configPath := flag.String("config", "", "path to a JSON tuning file (env "+config.EnvConfigPath+")")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based (env "+config.EnvSeed+")")
	logPath := flag.String("log", "circleshooter-tui.log", "file receiving log output while the terminal is in use")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialise config: %v", err)
	}
	cfg, err := config.GameConfig(config.StringOr(*configPath, config.EnvConfigPath, ""))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	session := game.NewSession()
	logger := log.New(logFile, fmt.Sprintf("[%s] ", session.ID.String()[:8]), log.LstdFlags)

	g, err := game.NewGame(cfg, session, game.NewRandom(config.Int64Or(*seed, config.EnvSeed, 0)))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	game.LogEvents(g.Events(), logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialise screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := newTerminal(screen)
	t.run(g)
	screen.Fini()

	final := g.Session()
	logger.Printf("Session finished: high score %d, max level %d", final.HighScore, final.MaxLevel)
	fmt.Printf("High score %d, max level %d\n", final.HighScore, final.MaxLevel)
}

// terminal renders snapshots into a tcell screen and queues its events as commands
type terminal struct {
	screen  tcell.Screen
	layout  layout
	pending []game.Command
	pressed bool
}

func newTerminal(screen tcell.Screen) *terminal {
	w, h := screen.Size()
	return &terminal{screen: screen, layout: newLayout(w, h)}
}

// Commands hands over the commands queued since the previous frame
func (t *terminal) Commands(*game.Snapshot) []game.Command {
	cmds := t.pending
	t.pending = nil
	return cmds
}

// handleEvent translates one terminal event into queued commands
func (t *terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			t.pending = append(t.pending, game.Command{Kind: game.CommandQuit})
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			t.pending = append(t.pending, game.Command{Kind: game.CommandReturnOrQuit})
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
			t.pending = append(t.pending, game.Command{Kind: game.CommandPlayPause})
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		col, row := ev.Position()
		x, y := t.layout.toPlayfield(col, row)
		switch {
		case pressed && !t.pressed:
			t.pending = append(t.pending, game.ShootAt(x, y), game.SteerTo(x, y))
		case t.pressed:
			t.pending = append(t.pending, game.Command{Kind: game.CommandStopSteering})
		}
		t.pressed = pressed

	case *tcell.EventResize:
		w, h := t.screen.Size()
		t.layout = newLayout(w, h)
		t.screen.Sync()
	}
}

// pumpEvents forwards screen events until the screen is finalized or done is closed
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// run drives the game from the ticker until a quit command arrives
func (t *terminal) run(g *game.Game) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(t.screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			t.handleEvent(ev)

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now

			snap, quit := game.RunFrame(g, t, deltaTime)
			if quit {
				return
			}
			t.draw(&snap)
		}
	}
}
