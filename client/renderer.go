package client

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"spaceshooter/game"
)

var (
	backgroundColor = color.RGBA{20, 20, 40, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
	selectedColor   = color.RGBA{255, 220, 0, 255}
	playerColor     = color.RGBA{0, 255, 0, 255}
	healthBackColor = color.RGBA{100, 0, 0, 255}
	healthColor     = color.RGBA{0, 255, 0, 255}
	hitboxColor     = color.RGBA{255, 255, 255, 80}
	orbitColor      = color.RGBA{0, 160, 255, 120}
)

// Renderer draws a game snapshot. It never changes simulation state.
type Renderer struct {
	face  text.Face
	scale float64 // Glyph scale applied on top of the 7x13 bitmap font
	debug *DebugState
	now   func() time.Time
}

// NewRenderer creates a new renderer
func NewRenderer(debug *DebugState) *Renderer {
	return &Renderer{
		face:  text.NewGoXFace(basicfont.Face7x13),
		scale: 2,
		debug: debug,
		now:   time.Now,
	}
}

// Draw renders one frame for the snapshot's mode
func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)

	switch snap.Mode {
	case game.ModeMenu:
		r.drawMenu(screen, snap)
	case game.ModePlaying:
		r.drawPlaying(screen, snap)
	case game.ModeGameOver:
		r.drawGameOver(screen, snap)
	case game.ModeViewScores:
		r.drawScores(screen, snap)
	}
}

func (r *Renderer) drawMenu(screen *ebiten.Image, snap game.Snapshot) {
	w, h := snap.Bounds.Width, snap.Bounds.Height
	r.centered(screen, "Space Shooter", w/2, h*0.25, 4, textColor)
	for i, item := range game.MenuItems {
		clr := textColor
		label := item
		if i == snap.SelectedMenu {
			clr = selectedColor
			label = "> " + item + " <"
		}
		r.centered(screen, label, w/2, h*0.5+float64(i)*60, r.scale, clr)
	}
}

func (r *Renderer) drawPlaying(screen *ebiten.Image, snap game.Snapshot) {
	for i := range snap.Hostiles {
		r.drawHostile(screen, &snap.Hostiles[i], snap.Player.Pos)
	}
	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		clr := game.GetOwnerConfig(p.Owner).Color
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), 4, clr, true)
	}
	r.drawPlayer(screen, &snap.Player)

	// Health bar
	w, h := snap.Bounds.Width, snap.Bounds.Height
	barX, barY := w*0.65, h*0.1
	barW, barH := w*0.3, h*0.05
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), healthBackColor, true)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*snap.Player.Health), float32(barH), healthColor, true)

	r.text(screen, fmt.Sprintf("Score: %d", snap.Score), 20, 20, r.scale, textColor)
	r.text(screen, "Time: "+game.FormatClock(int(snap.Elapsed/time.Second)), 20, 50, r.scale, textColor)

	if r.debug.ShowStats {
		stats := fmt.Sprintf("hostiles %d  projectiles %d  %s cooldown %.2f",
			len(snap.Hostiles), len(snap.Projectiles), game.PlayerBlaster, snap.Player.FireCooldown)
		r.text(screen, stats, 20, h-30, 1, textColor)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *game.Player) {
	half := game.PlayerSize / 2
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(half*0.6), playerColor, true)

	// Facing indicator
	endX := p.Pos.X + math.Cos(p.Facing)*half
	endY := p.Pos.Y + math.Sin(p.Facing)*half
	vector.StrokeLine(screen, x, y, float32(endX), float32(endY), 3, playerColor, true)

	if r.debug.ShowHitboxes {
		vector.StrokeRect(screen, float32(p.Pos.X-half), float32(p.Pos.Y-half), float32(game.PlayerSize), float32(game.PlayerSize), 1, hitboxColor, true)
		vector.StrokeCircle(screen, x, y, float32(game.PlayerHitRadius), 1, hitboxColor, true)
	}
}

func (r *Renderer) drawHostile(screen *ebiten.Image, h *game.Hostile, player game.Vec2) {
	half := game.HostileSize / 2
	x, y := float32(h.Pos.X), float32(h.Pos.Y)
	clr := h.Stats.Color
	vector.DrawFilledCircle(screen, x, y, float32(half*0.6), clr, true)

	endX := h.Pos.X + h.Dir.X*half
	endY := h.Pos.Y + h.Dir.Y*half
	vector.StrokeLine(screen, x, y, float32(endX), float32(endY), 2, clr, true)

	// Life bar for damaged hostiles
	if h.Life < h.Stats.MaxLife {
		barW := half * 2
		barX := h.Pos.X - half
		barY := h.Pos.Y - half - 8
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), 4, healthBackColor, true)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*h.Life/h.Stats.MaxLife), 4, healthColor, true)
	}

	if r.debug.ShowHitboxes {
		vector.StrokeCircle(screen, x, y, float32(game.HostileHitRadius), 1, hitboxColor, true)
		target := h.OrbitTarget(player)
		vector.StrokeLine(screen, x, y, float32(target.X), float32(target.Y), 1, orbitColor, true)
	}
}

// DrawNotice writes a one-line status message in the bottom right corner
func (r *Renderer) DrawNotice(screen *ebiten.Image, snap game.Snapshot, msg string) {
	width, _ := text.Measure(msg, r.face, 0)
	r.text(screen, msg, snap.Bounds.Width-width-20, snap.Bounds.Height-30, 1, selectedColor)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	w, h := snap.Bounds.Width, snap.Bounds.Height
	r.centered(screen, "Game Over", w/2, h*0.2, 4, textColor)
	r.centered(screen, fmt.Sprintf("Survived %s  Score %d", game.FormatClock(snap.LastSurvival), snap.Score), w/2, h*0.3, r.scale, textColor)
	r.drawLeaderboard(screen, snap.TopScores, w/2, h*0.4)

	// Blink twice a second
	if r.now().UnixMilli()/500%2 == 0 {
		r.centered(screen, "Press R to Return to Menu", w/2, h*0.85, r.scale, selectedColor)
	}
}

func (r *Renderer) drawScores(screen *ebiten.Image, snap game.Snapshot) {
	w, h := snap.Bounds.Width, snap.Bounds.Height
	r.centered(screen, "High Scores", w/2, h*0.2, 4, textColor)
	r.drawLeaderboard(screen, snap.TopScores, w/2, h*0.35)
	r.centered(screen, "Press Enter to Return", w/2, h*0.85, r.scale, selectedColor)
}

func (r *Renderer) drawLeaderboard(screen *ebiten.Image, scores []int, cx, top float64) {
	if len(scores) == 0 {
		r.centered(screen, "No scores yet", cx, top, r.scale, textColor)
		return
	}
	for i, s := range scores {
		line := fmt.Sprintf("Top %d: %s", i+1, game.FormatClock(s))
		r.centered(screen, line, cx, top+float64(i)*40, r.scale, textColor)
	}
}

// centered draws a line horizontally centered on cx
func (r *Renderer) centered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	width, _ := text.Measure(s, r.face, 0)
	r.text(screen, s, cx-width*scale/2, y, scale, clr)
}

func (r *Renderer) text(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}
