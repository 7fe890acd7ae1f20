package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"circleshooter/game"
)

// uiFace is the bitmap face used for every label, scaled per use
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws a string scaled around its anchor point
func drawText(dst *ebiten.Image, s string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, uiFace, op)
}

// drawSideBar draws level, lives, score and key hints to the right of the playfield
func drawSideBar(screen *ebiten.Image, snap *game.Snapshot) {
	vector.DrawFilledRect(screen, playfieldSize, 0, barWidth, screenHeight, colorBlack, false)
	vector.StrokeLine(screen, playfieldSize, 0, playfieldSize, screenHeight, 1, colorSilver, false)

	left := float64(playfieldSize + barMargin)
	rows := []struct {
		label string
		value int
	}{
		{"Level", snap.Level},
		{"Lives", snap.Lives},
		{"Score", snap.Score},
	}
	for i, row := range rows {
		y := float64(barMargin) + float64(i)*textHeight*1.5
		drawText(screen, row.label, left, y, msgTextScale, text.AlignStart, colorBlue)
		drawText(screen, fmt.Sprint(row.value), left, y+textHeight*0.5, msgTextScale, text.AlignStart, colorWhite)
	}

	playHint := "[P]ause"
	if snap.Level < 1 || snap.Paused {
		playHint = "[P]lay"
	}
	bottom := float64(screenHeight - barMargin - textHeight)
	drawText(screen, playHint, left, bottom, msgTextScale, text.AlignStart, colorGreen)
	drawText(screen, "[Q]uit", left, bottom+textHeight/2, msgTextScale, text.AlignStart, colorGreen)
}

// drawMessages draws the title screen, game over and pause banners over the playfield
func drawMessages(screen *ebiten.Image, snap *game.Snapshot) {
	center := float64(playfieldSize) / 2

	switch {
	case snap.Phase == game.PhaseTitle:
		drawText(screen, "CIRCLE", center, quarterHeight, hudTextScale, text.AlignCenter, colorSilver)
		drawText(screen, "SHOOTER", center, quarterHeight+textHeight, hudTextScale, text.AlignCenter, colorSilver)
		drawText(screen, fmt.Sprintf("High score: %d", snap.HighScore), center, halfHeight+textHeight, msgTextScale, text.AlignCenter, colorWhite)
		drawText(screen, fmt.Sprintf("Max level: %d", snap.MaxLevel), center, halfHeight+textHeight*1.5, msgTextScale, text.AlignCenter, colorWhite)
	case snap.DeathTimer > 0 && snap.Lives < 1:
		drawText(screen, "GAME", center, quarterHeight, hudTextScale, text.AlignCenter, colorRed)
		drawText(screen, "OVER", center, quarterHeight+textHeight, hudTextScale, text.AlignCenter, colorRed)
	}

	if snap.Paused {
		drawText(screen, "Game paused", center, halfHeight, msgTextScale, text.AlignCenter, colorWhite)
	}
}

// drawDebugInfo prints frame rate and entity counts in the corner
func drawDebugInfo(screen *ebiten.Image, snap *game.Snapshot, fps float64) {
	info := fmt.Sprintf("FPS: %.0f  TPS: %.0f\nPhase: %s\nEnemies: %d  Power-ups: %d\nFreeze: %.1f",
		fps, ebiten.ActualTPS(), snap.Phase,
		snap.Count(game.EntityKindEnemy), snap.Count(game.EntityKindPowerUp), snap.FreezeTimer)
	ebitenutil.DebugPrint(screen, info)
}
