package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"circleshooter/game"
)

// Viewport maps the normalized playfield onto a square of pixels
type Viewport struct {
	X, Y float64 // Top-left corner of the playfield on screen
	Size float64 // Side length of the playfield in pixels
}

// NewViewport creates a viewport of the given size at the screen origin
func NewViewport(size float64) *Viewport {
	return &Viewport{Size: size}
}

// PlayfieldToScreen converts playfield coordinates to screen coordinates
func (v *Viewport) PlayfieldToScreen(p game.Vector2D) (float32, float32) {
	return float32(v.X + p.X*v.Size), float32(v.Y + p.Y*v.Size)
}

// ScreenToPlayfield converts screen pixel coordinates to playfield coordinates
func (v *Viewport) ScreenToPlayfield(sx, sy int) (float64, float64) {
	return (float64(sx) - v.X) / v.Size, (float64(sy) - v.Y) / v.Size
}

// Length converts a playfield distance to pixels
func (v *Viewport) Length(d float64) float32 {
	return float32(d * v.Size)
}

// Renderer draws a snapshot of the simulation
type Renderer struct {
	viewport *Viewport
	canvas   *ebiten.Image // playfield-sized layer so drawing is clipped to it
}

// NewRenderer creates a new renderer
func NewRenderer(viewport *Viewport) *Renderer {
	size := int(math.Ceil(viewport.Size))
	return &Renderer{
		viewport: viewport,
		canvas:   ebiten.NewImage(size, size),
	}
}

// Render draws every sprite of the snapshot into the playfield area
func (r *Renderer) Render(screen *ebiten.Image, snap *game.Snapshot, dust []dustParticle, particles *particleSystem, showHitboxes bool) {
	r.canvas.Fill(colorBlack)

	local := &Viewport{Size: r.viewport.Size}
	drawDust(r.canvas, local, dust)

	if snap.FreezeTimer > 0 {
		vector.DrawFilledRect(r.canvas, 0, 0, float32(local.Size), float32(local.Size), colorFrozen, false)
	}

	for i := range snap.Sprites {
		r.renderSprite(r.canvas, local, &snap.Sprites[i])
		if showHitboxes {
			x, y := local.PlayfieldToScreen(snap.Sprites[i].Position)
			vector.StrokeCircle(r.canvas, x, y, local.Length(snap.Sprites[i].Radius), 1, colorGreen, false)
		}
	}
	particles.draw(r.canvas, local)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.viewport.X, r.viewport.Y)
	screen.DrawImage(r.canvas, op)
}

// renderSprite draws a single sprite
func (r *Renderer) renderSprite(dst *ebiten.Image, v *Viewport, sprite *game.Sprite) {
	x, y := v.PlayfieldToScreen(sprite.Position)
	radius := v.Length(sprite.Radius)

	switch sprite.Kind {
	case game.EntityKindShip:
		drawShip(dst, x, y, radius, sprite.Shielded)
	case game.EntityKindBullet:
		vector.DrawFilledCircle(dst, x, y, radius, colorRed, true)
	case game.EntityKindEnemy:
		vector.StrokeCircle(dst, x, y, radius, 1, enemyColor(sprite.ColorIndex), true)
	case game.EntityKindPowerUp:
		drawPowerUp(dst, x, y, radius, sprite.PowerUp)
	case game.EntityKindExplosion:
		vector.StrokeCircle(dst, x, y, radius, 1, colorRed, true)
	}
}

// drawPowerUp draws a shield as a ring in a box and freeze as nested boxes
func drawPowerUp(dst *ebiten.Image, x, y, radius float32, variant game.PowerUpVariant) {
	switch variant {
	case game.PowerUpShield:
		vector.StrokeCircle(dst, x, y, radius, 1, colorWhite, true)
		vector.StrokeRect(dst, x-radius, y-radius, radius*2, radius*2, 1, colorWhite, false)
	case game.PowerUpFreeze:
		half := radius
		for i := 0; i < 3; i++ {
			vector.StrokeRect(dst, x-half, y-half, half*2, half*2, 1, colorWhite, false)
			half *= 0.5
		}
	}
}

// enemyColor returns the palette entry for an enemy, white if out of range
func enemyColor(index int) color.Color {
	if index < 0 || index >= len(enemyPalette) {
		return colorWhite
	}
	return enemyPalette[index]
}
