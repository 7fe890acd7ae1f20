package main

import (
	"image/color"

	"circleshooter/game"
)

// Screen layout: a square playfield on the left and the HUD bar on the right
const (
	playfieldSize = 600
	barWidth      = 220
	screenWidth   = playfieldSize + barWidth
	screenHeight  = playfieldSize
	barMargin     = 12
	textHeight    = playfieldSize / 8
	halfHeight    = playfieldSize / 2
	quarterHeight = playfieldSize / 4
)

// Font scales relative to the 13px base face
const (
	hudTextScale = 4.0
	msgTextScale = 2.0
)

// Background dust
const (
	dustCount     = 70
	dustBaseSpeed = 0.01 // playfield units per second
	dustMaxSize   = 1.5
)

// Profiling triggers
const (
	fpsDropThreshold = 45.0
	fpsWarmupSeconds = 3.0
	fpsSampleWindow  = 0.5
)

// Color constants
var (
	colorBlack  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorGreen  = color.NRGBA{R: 0, G: 204, B: 0, A: 255}
	colorBlue   = color.NRGBA{R: 20, G: 100, B: 190, A: 255}
	colorRed    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	colorSilver = color.NRGBA{R: 204, G: 204, B: 204, A: 255}
	colorWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorDust   = color.NRGBA{R: 60, G: 60, B: 80, A: 255}
	colorFrozen = color.NRGBA{R: 140, G: 200, B: 255, A: 40}
)

// enemyPalette maps game.Enemy.ColorIndex to a display colour
var enemyPalette = [game.EnemyPaletteSize]color.NRGBA{
	{R: 0xff, G: 0xff, B: 0xcc, A: 255},
	{R: 0xff, G: 0xcc, B: 0xff, A: 255},
	{R: 0xcc, G: 0xff, B: 0xff, A: 255},
	{R: 0xff, G: 0xdd, B: 0xdd, A: 255},
	{R: 0xdd, G: 0xff, B: 0xdd, A: 255},
	{R: 0xdd, G: 0xdd, B: 0xff, A: 255},
}
