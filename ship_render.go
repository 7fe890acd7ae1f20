package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawShip draws the ship as a silver disc with a dark inner ring.
// A shielded ship gets a square drawn around it.
func drawShip(dst *ebiten.Image, x, y, radius float32, shielded bool) {
	vector.DrawFilledCircle(dst, x, y, radius, colorSilver, true)
	vector.StrokeCircle(dst, x, y, radius*0.6, 1, colorBlack, true)

	if shielded {
		side := radius * 2.4
		vector.StrokeRect(dst, x-side/2, y-side/2, side, side, 1, colorBlue, false)
	}
}
