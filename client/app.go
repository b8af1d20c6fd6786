// Package client runs the simulation inside an ebiten window.
package client

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spaceshooter/audio"
	"spaceshooter/game"
)

const maxParticles = 600

// FrameRecorder receives every simulated frame, e.g. for replays
type FrameRecorder interface {
	Record(dt time.Duration, events []game.Event) error
}

// App adapts game.Game to ebiten.Game
type App struct {
	game     *game.Game
	input    *KeyboardMouse
	renderer *Renderer
	effects  *ParticleSystem
	debug    *DebugState
	audio    *audio.Player
	recorder FrameRecorder
	profiler *Profiler
	logger   *log.Logger

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// AppOption configures an App
type AppOption func(*App)

// WithAudio plays cues for every tick report
func WithAudio(p *audio.Player) AppOption {
	return func(a *App) { a.audio = p }
}

// WithRecorder records every frame's step and input
func WithRecorder(r FrameRecorder) AppOption {
	return func(a *App) { a.recorder = r }
}

// WithProfiler enables stall profiling
func WithProfiler(p *Profiler) AppOption {
	return func(a *App) { a.profiler = p }
}

// WithAppLogger sets the client logger
func WithAppLogger(l *log.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// NewApp creates a new ebiten adapter around g
func NewApp(g *game.Game, opts ...AppOption) *App {
	debug := GetDebugState()
	a := &App{
		game:           g,
		input:          NewKeyboardMouse(),
		renderer:       NewRenderer(debug),
		effects:        NewParticleSystem(maxParticles, time.Now().UnixNano()),
		debug:          debug,
		logger:         log.New(io.Discard),
		lastUpdateTime: time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Update polls input and advances the simulation by one clamped step
func (a *App) Update() error {
	now := time.Now()
	raw := now.Sub(a.lastUpdateTime)
	a.lastUpdateTime = now

	a.profiler.Observe(raw)
	dt := game.ClampStep(raw, a.game.Config().MaxStep)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.ShowHitboxes = !a.debug.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.debug.ShowStats = !a.debug.ShowStats
	}

	events := a.input.Poll()
	for _, e := range events {
		a.game.HandleEvent(e)
	}

	if a.recorder != nil {
		if err := a.recorder.Record(dt, events); err != nil {
			a.logger.Warn("recording stopped", "err", err)
			a.recorder = nil
		}
	}

	if a.game.Quit() {
		a.logger.Info("quit requested")
		return ebiten.Termination
	}

	report := a.game.Tick(dt)
	a.audio.Play(report)

	if a.game.Mode() == game.ModePlaying {
		a.effects.Observe(report, a.game.Snapshot().Player.Pos)
		a.effects.Update(dt.Seconds())
	} else {
		a.effects.Clear()
	}
	return nil
}

// Draw renders the current snapshot
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	a.renderer.Draw(screen, snap)
	if a.debug.ShowStats && a.profiler.IsProfiling() {
		a.renderer.DrawNotice(screen, snap, "capturing cpu profile")
	}
	if snap.Mode == game.ModePlaying {
		a.effects.Draw(screen)
	}
}

// Layout returns the game's screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.game.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
