package game

import "time"

// World holds the entity collections of a single run
type World struct {
	Player      Player
	Projectiles []Projectile
	Hostiles    []Hostile
}

// Session is the explicit state threaded through every tick
type Session struct {
	Mode  Mode
	World World

	// Score is the kill score of the current run
	Score int

	// Elapsed is the accumulated simulation time of the current run
	Elapsed time.Duration

	// LastSpawn is the value of Elapsed at the most recent spawn
	LastSpawn time.Duration

	// SelectedMenu is the highlighted menu item
	SelectedMenu int

	// Input is the player's control state
	Input Intent

	// TopScores is the cached leaderboard shown on GameOver and ViewScores
	TopScores []int

	// LastSurvival is the survival time recorded for the last finished run, in seconds
	LastSurvival int

	// Quit is set once the user asked to leave
	Quit bool
}

// NewSession creates a session sitting in the menu
func NewSession(start Vec2) *Session {
	return &Session{
		Mode:  ModeMenu,
		World: World{Player: NewPlayer(start)},
	}
}

// Reset clears all per-run state. The caller seeds the first hostile.
func (s *Session) Reset(start Vec2) {
	s.World = World{
		Player:      NewPlayer(start),
		Projectiles: s.World.Projectiles[:0],
		Hostiles:    s.World.Hostiles[:0],
	}
	s.Score = 0
	s.Elapsed = 0
	s.LastSpawn = 0
	s.Input = Intent{Pointer: start}
}

// SurvivalSeconds returns the whole seconds survived in the current run
func (s *Session) SurvivalSeconds() int {
	return int(s.Elapsed / time.Second)
}
