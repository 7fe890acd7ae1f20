package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"circleshooter/game"
)

// PlayerInput provides commands from keyboard and mouse
type PlayerInput struct {
	viewport *Viewport
}

// NewPlayerInput creates a player input provider for the given viewport
func NewPlayerInput(viewport *Viewport) *PlayerInput {
	return &PlayerInput{viewport: viewport}
}

// Commands maps key releases and mouse buttons to game commands.
// A mouse press both fires and steers; releasing it stops steering.
func (p *PlayerInput) Commands(snap *game.Snapshot) []game.Command {
	var cmds []game.Command

	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		return append(cmds, game.Command{Kind: game.CommandQuit})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyQ) {
		cmds = append(cmds, game.Command{Kind: game.CommandReturnOrQuit})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyP) {
		cmds = append(cmds, game.Command{Kind: game.CommandPlayPause})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := p.viewport.ScreenToPlayfield(ebiten.CursorPosition())
		cmds = append(cmds, game.ShootAt(x, y), game.SteerTo(x, y))
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		cmds = append(cmds, game.Command{Kind: game.CommandStopSteering})
	}

	return cmds
}

// handleDebugKeys processes keys that only affect the frontend
func (a *App) handleDebugKeys() {
	// F1 toggles collision radius overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showHitboxes = !a.showHitboxes
	}

	// F2 captures a CPU profile and trace
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := a.profiler.CaptureProfile("manual"); err != nil {
			a.logger.Printf("Profile capture skipped: %v", err)
		}
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
