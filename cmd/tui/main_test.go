package main

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"circleshooter/game"
)

func newTestTerminal(t *testing.T) *terminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(81, 41)
	return newTerminal(screen)
}

func TestLayoutKeepsPlayfieldSquare(t *testing.T) {
	l := newLayout(200, 41)
	if l.rows != 40 || l.cols != 80 {
		t.Fatalf("got %dx%d, want 80x40", l.cols, l.rows)
	}

	l = newLayout(40, 50)
	if l.rows != 20 || l.cols != 40 {
		t.Fatalf("got %dx%d, want 40x20", l.cols, l.rows)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := newLayout(81, 41)
	x, y := l.toPlayfield(40, 20)
	if math.Abs(x-40.5/80) > 1e-9 || math.Abs(y-20.5/40) > 1e-9 {
		t.Fatalf("got (%v, %v)", x, y)
	}

	col, row := l.toCell(game.Vector2D{X: x, Y: y})
	if col != 40 || row != 20 {
		t.Fatalf("got cell (%d, %d), want (40, 20)", col, row)
	}
}

func TestKeysQueueCommands(t *testing.T) {
	term := newTestTerminal(t)

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	cmds := term.Commands(nil)
	want := []game.CommandKind{game.CommandPlayPause, game.CommandReturnOrQuit, game.CommandQuit}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i].Kind != want[i] {
			t.Fatalf("command %d: got %v, want %v", i, cmds[i].Kind, want[i])
		}
	}

	if cmds := term.Commands(nil); len(cmds) != 0 {
		t.Fatalf("queue not drained, got %d commands", len(cmds))
	}
}

func TestMouseShootsSteersAndStops(t *testing.T) {
	term := newTestTerminal(t)

	term.handleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	// A drag does not steer again
	term.handleEvent(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	term.handleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))

	cmds := term.Commands(nil)
	want := []game.CommandKind{
		game.CommandShootAt, game.CommandSteerTo,
		game.CommandStopSteering,
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i].Kind != want[i] {
			t.Fatalf("command %d: got %v, want %v", i, cmds[i].Kind, want[i])
		}
	}

	x, y := term.layout.toPlayfield(10, 5)
	if cmds[0].Target != (game.Vector2D{X: x, Y: y}) {
		t.Fatalf("got target %+v, want (%v, %v)", cmds[0].Target, x, y)
	}
}

func TestDrawShowsTitle(t *testing.T) {
	term := newTestTerminal(t)
	g, err := game.NewGame(game.DefaultConfig(), game.NewSession(), game.NewRandom(1))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	snap := g.Snapshot()
	term.draw(&snap)

	sim := term.screen.(tcell.SimulationScreen)
	cells, width, _ := sim.GetContents()
	row := term.layout.rows/2 - 1
	var line []rune
	for col := 0; col < width; col++ {
		line = append(line, cells[row*width+col].Runes...)
	}
	if got := string(line); !strings.Contains(got, "CIRCLE SHOOTER") {
		t.Fatalf("title row %q does not contain the title", got)
	}
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	term := newTestTerminal(t)
	events := make(chan tcell.Event)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		pumpEvents(term.screen, events, done)
		close(finished)
	}()

	// Nobody drains events, so the pump must give up on done
	if err := term.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatalf("event pump still blocked after done was closed")
	}
}
