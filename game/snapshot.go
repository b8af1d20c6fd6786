package game

import (
	"fmt"
	"time"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	Mode         Mode
	Player       Player
	Projectiles  []Projectile
	Hostiles     []Hostile
	Score        int
	Elapsed      time.Duration
	SelectedMenu int
	TopScores    []int
	LastSurvival int
	Bounds       Bounds
}

// Snapshot copies the current session state for drawing
func (g *Game) Snapshot() Snapshot {
	s := g.session
	return Snapshot{
		Mode:         s.Mode,
		Player:       s.World.Player,
		Projectiles:  append([]Projectile(nil), s.World.Projectiles...),
		Hostiles:     append([]Hostile(nil), s.World.Hostiles...),
		Score:        s.Score,
		Elapsed:      s.Elapsed,
		SelectedMenu: s.SelectedMenu,
		TopScores:    append([]int(nil), s.TopScores...),
		LastSurvival: s.LastSurvival,
		Bounds:       g.config.Bounds(),
	}
}

// FormatClock renders whole seconds as MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
