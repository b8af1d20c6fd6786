package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Game is the simulation driver. It owns the session and every entity
// collection; nothing outside it keeps references across ticks.
type Game struct {
	config   Config
	session  *Session
	rng      *RNG
	spawner  *Spawner
	resolver *Resolver
	scores   ScoreStore
	logger   *log.Logger
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger used for mode changes and score I/O problems
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithScoreStore sets where finished runs are persisted
func WithScoreStore(store ScoreStore) Option {
	return func(g *Game) {
		if store != nil {
			g.scores = store
		}
	}
}

// NewGame creates a new game instance sitting in the menu
func NewGame(config Config, opts ...Option) *Game {
	rng := NewRNG(config.Seed)
	g := &Game{
		config:   config,
		session:  NewSession(config.PlayerStart),
		rng:      rng,
		spawner:  NewSpawner(rng, config),
		resolver: NewResolver(config.Bounds()),
		scores:   &MemoryScores{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the configuration the game was built with
func (g *Game) Config() Config {
	return g.config
}

// Mode returns the active mode
func (g *Game) Mode() Mode {
	return g.session.Mode
}

// Quit reports whether a quit was requested
func (g *Game) Quit() bool {
	return g.session.Quit
}

// ClampStep bounds a wall-clock frame time to [0, limit]
func ClampStep(raw, limit time.Duration) time.Duration {
	if raw < 0 {
		return 0
	}
	if raw > limit {
		return limit
	}
	return raw
}

// Tick advances the simulation by one step. dt is clamped to the
// configured MaxStep. Only Playing advances anything; the other modes are
// driven by input alone.
func (g *Game) Tick(dt time.Duration) Report {
	var report Report
	s := g.session
	if s.Mode != ModePlaying {
		return report
	}
	dt = ClampStep(dt, g.config.MaxStep)

	step := dt.Seconds()
	s.Elapsed += dt
	w := &s.World
	in := &s.Input

	// Player
	if in.Fire {
		w.Projectiles, report.PlayerFired = w.Player.Fire(in.FireAim, w.Projectiles)
		in.Fire = false
	}
	w.Player.Move(*in, step, g.config.Bounds())
	w.Player.Cool(step)
	w.Player.Face(in.Pointer)

	// Spawning
	if g.spawner.Update(s) {
		report.Spawned = true
		h := w.Hostiles[len(w.Hostiles)-1]
		g.logger.Debug("hostile spawned", "variant", h.Variant(), "x", h.Pos.X, "y", h.Pos.Y, "count", len(w.Hostiles))
	}

	// Hostile AI
	w.Projectiles, report.HostilesFired = UpdateHostiles(w.Hostiles, step, w.Player.Pos, w.Projectiles)

	// Projectiles
	IntegrateProjectiles(w.Projectiles, step)

	// Collisions, regen and cleanup
	g.resolver.Resolve(s, step, &report)

	if report.Depleted {
		g.finishRun()
	}
	return report
}

// reset starts a fresh run and seeds the first hostile
func (g *Game) reset() {
	g.session.Reset(g.config.PlayerStart)
	g.spawner.Seed(g.session)
	g.logger.Debug("run started", "seed", g.rng.Seed(), "weapon", PlayerBlaster)
}

// finishRun records the survival time and moves to GameOver
func (g *Game) finishRun() {
	s := g.session
	s.LastSurvival = s.SurvivalSeconds()
	if err := g.scores.Save(s.LastSurvival); err != nil {
		g.logger.Warn("saving score failed", "seconds", s.LastSurvival, "err", err)
	}
	g.refreshScores()
	g.logger.Info("run finished", "survived", FormatClock(s.LastSurvival), "score", s.Score)
	g.setMode(ModeGameOver)
}

// refreshScores reloads the leaderboard; a failed load keeps the previous list
func (g *Game) refreshScores() {
	top, err := g.scores.Load()
	if err != nil {
		g.logger.Warn("loading scores failed", "err", err)
		return
	}
	g.session.TopScores = top
}
