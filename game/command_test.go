package game

import (
	"reflect"
	"testing"
)

func TestApplyAtTitle(t *testing.T) {
	g := newTestGame(t)

	if g.Apply(ShootAt(0.1, 0.1)) || g.bullet != nil {
		t.Fatalf("shot fired at the title screen")
	}
	if !g.Apply(Command{Kind: CommandReturnOrQuit}) {
		t.Fatalf("Q at the title should quit")
	}
	if g.Apply(Command{Kind: CommandPlayPause}) {
		t.Fatalf("P should not quit")
	}
	if g.Level() != 1 {
		t.Fatalf("P at the title: got level %d, want 1", g.Level())
	}
}

func TestApplyDuringPlay(t *testing.T) {
	g := newTestGame(t)
	g.StartGame()

	g.Apply(SteerTo(1, 0.5))
	if g.ship.Acceleration.X <= 0 {
		t.Fatalf("steering ignored")
	}
	g.Apply(Command{Kind: CommandStopSteering})
	if g.ship.Acceleration != (Vector2D{}) {
		t.Fatalf("stop ignored")
	}

	g.Apply(Command{Kind: CommandPlayPause})
	if !g.Paused() {
		t.Fatalf("P did not pause")
	}
	g.Apply(ShootAt(0.9, 0.9))
	g.Apply(SteerTo(0.9, 0.9))
	if g.bullet != nil || g.ship.Acceleration != (Vector2D{}) {
		t.Fatalf("paused game accepted shooting or steering")
	}
	g.Apply(Command{Kind: CommandPlayPause})
	g.Apply(ShootAt(0.9, 0.9))
	if g.bullet == nil {
		t.Fatalf("shot ignored after unpausing")
	}

	if g.Apply(Command{Kind: CommandReturnOrQuit}) {
		t.Fatalf("Q during play should not quit")
	}
	if g.Level() != 0 {
		t.Fatalf("Q during play: got level %d, want title", g.Level())
	}
	if !g.Apply(Command{Kind: CommandQuit}) {
		t.Fatalf("quit not reported")
	}
}

type fixedInput []Command

func (f fixedInput) Commands(*Snapshot) []Command {
	return f
}

func TestRunFrame(t *testing.T) {
	g := newTestGame(t)

	snap, quit := RunFrame(g, fixedInput{{Kind: CommandPlayPause}}, 0.1)
	if quit || snap.Level != 1 || snap.Phase != PhasePlaying {
		t.Fatalf("got quit=%v level=%d phase=%v", quit, snap.Level, snap.Phase)
	}

	if _, quit := RunFrame(g, fixedInput{{Kind: CommandQuit}, {Kind: CommandPlayPause}}, 0.1); !quit {
		t.Fatalf("quit not reported")
	}
	if g.Paused() {
		t.Fatalf("commands after quit were applied")
	}
}

func TestMultiInputConcatenates(t *testing.T) {
	input := MultiInput{
		fixedInput{{Kind: CommandPlayPause}},
		NoInput{},
		fixedInput{ShootAt(0.1, 0.2)},
	}
	got := input.Commands(&Snapshot{})
	want := []Command{{Kind: CommandPlayPause}, ShootAt(0.1, 0.2)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
