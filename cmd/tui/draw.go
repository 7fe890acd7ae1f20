package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"circleshooter/game"
)

// Terminal cells are about twice as tall as wide, so the square playfield
// spans two columns per row.
const cellAspect = 2

// layout places the square playfield in the top-left corner of the
// terminal and keeps the bottom row for the status line
type layout struct {
	cols, rows int
	width      int
	height     int
}

func newLayout(width, height int) layout {
	rows := height - 1
	if width/cellAspect < rows {
		rows = width / cellAspect
	}
	if rows < 1 {
		rows = 1
	}
	return layout{cols: rows * cellAspect, rows: rows, width: width, height: height}
}

// toPlayfield returns the playfield coordinates of a cell's centre
func (l layout) toPlayfield(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / float64(l.cols), (float64(row) + 0.5) / float64(l.rows)
}

// toCell returns the cell containing a playfield point
func (l layout) toCell(p game.Vector2D) (int, int) {
	return int(math.Floor(p.X * float64(l.cols))), int(math.Floor(p.Y * float64(l.rows)))
}

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleShip    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleShield  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(20, 100, 190))
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBoom    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePowerUp = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFrozen  = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// enemyStyles mirrors the windowed palette
var enemyStyles = [game.EnemyPaletteSize]tcell.Style{
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xff, 0xcc)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xcc, 0xff)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xcc, 0xff, 0xff)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xdd, 0xdd)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xdd, 0xff, 0xdd)),
	tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xdd, 0xdd, 0xff)),
}

func (t *terminal) draw(snap *game.Snapshot) {
	t.screen.Clear()
	l := t.layout

	for row := 0; row < l.rows; row++ {
		t.put(l.cols, row, '│', styleBorder)
	}

	for i := range snap.Sprites {
		t.drawSprite(&snap.Sprites[i], snap.FreezeTimer > 0)
	}

	t.drawStatus(snap)
	t.drawMessages(snap)
	t.screen.Show()
}

func (t *terminal) drawSprite(sprite *game.Sprite, frozen bool) {
	col, row := t.layout.toCell(sprite.Position)

	switch sprite.Kind {
	case game.EntityKindShip:
		t.put(col, row, '@', styleShip)
		if sprite.Shielded {
			t.put(col-1, row, '[', styleShield)
			t.put(col+1, row, ']', styleShield)
		}
	case game.EntityKindBullet:
		t.put(col, row, '*', styleBullet)
	case game.EntityKindEnemy:
		style := styleFrozen
		if !frozen && sprite.ColorIndex >= 0 && sprite.ColorIndex < len(enemyStyles) {
			style = enemyStyles[sprite.ColorIndex]
		}
		t.ring(sprite.Position, sprite.Radius, 'o', style)
	case game.EntityKindPowerUp:
		r := 'S'
		if sprite.PowerUp == game.PowerUpFreeze {
			r = 'F'
		}
		t.put(col, row, r, stylePowerUp)
	case game.EntityKindExplosion:
		t.ring(sprite.Position, sprite.Radius, '.', styleBoom)
	}
}

// ring plots a circle outline, or a single cell when it is smaller than one
func (t *terminal) ring(center game.Vector2D, radius float64, r rune, style tcell.Style) {
	l := t.layout
	cellRadius := radius * float64(l.rows)
	if cellRadius < 1 {
		col, row := l.toCell(center)
		t.put(col, row, r, style)
		return
	}

	steps := int(cellRadius * 8)
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		p := game.Vector2D{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)}
		col, row := l.toCell(p)
		t.put(col, row, r, style)
	}
}

func (t *terminal) drawStatus(snap *game.Snapshot) {
	hint := "[P]ause"
	if snap.Level < 1 || snap.Paused {
		hint = "[P]lay"
	}
	status := fmt.Sprintf(" Level %d  Lives %d  Score %d  %s [Q]uit", snap.Level, snap.Lives, snap.Score, hint)
	t.text(0, t.layout.height-1, status, styleDefault)
}

func (t *terminal) drawMessages(snap *game.Snapshot) {
	l := t.layout
	var lines []string
	switch {
	case snap.Phase == game.PhaseTitle:
		lines = []string{
			"CIRCLE SHOOTER",
			fmt.Sprintf("High score: %d", snap.HighScore),
			fmt.Sprintf("Max level: %d", snap.MaxLevel),
		}
	case snap.DeathTimer > 0 && snap.Lives < 1:
		lines = []string{"GAME OVER"}
	case snap.Paused:
		lines = []string{"Game paused"}
	}

	top := l.rows/2 - len(lines)/2
	for i, line := range lines {
		t.text(l.cols/2-len(line)/2, top+i, line, styleMessage)
	}
}

// put draws a rune if the cell lies inside the playfield
func (t *terminal) put(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col > t.layout.cols || row >= t.layout.rows {
		return
	}
	t.screen.SetContent(col, row, r, nil, style)
}

func (t *terminal) text(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}
