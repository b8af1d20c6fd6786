// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"spaceshooter/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound effect
type Cue int

const (
	CuePlayerFire Cue = iota
	CueHostileFire
	CueHit
	CueKill
	CuePlayerHurt
	CueGameOver
)

// Cues lists the sounds a tick report should trigger, in play order
func Cues(r game.Report) []Cue {
	var cues []Cue
	if r.PlayerFired {
		cues = append(cues, CuePlayerFire)
	}
	if r.HostilesFired > 0 {
		cues = append(cues, CueHostileFire)
	}
	if r.Kills > 0 {
		cues = append(cues, CueKill)
	} else if r.HostileHits > 0 {
		cues = append(cues, CueHit)
	}
	if r.PlayerHits > 0 {
		cues = append(cues, CuePlayerHurt)
	}
	if r.Depleted {
		cues = append(cues, CueGameOver)
	}
	return cues
}

// Sound builds a fresh streamer for a cue
func Sound(c Cue) beep.Streamer {
	switch c {
	case CuePlayerFire:
		return withVolume(NewTone(880, 440, 60*time.Millisecond, WaveSquare, sampleRate), 0.15)
	case CueHostileFire:
		return withVolume(NewTone(330, 220, 80*time.Millisecond, WaveSquare, sampleRate), 0.1)
	case CueHit:
		return withVolume(NewTone(200, 120, 50*time.Millisecond, WaveNoise, sampleRate), 0.2)
	case CueKill:
		return beep.Seq(
			withVolume(NewTone(300, 80, 180*time.Millisecond, WaveNoise, sampleRate), 0.35),
			withVolume(NewTone(660, 990, 90*time.Millisecond, WaveSine, sampleRate), 0.2),
		)
	case CuePlayerHurt:
		return withVolume(NewTone(140, 90, 120*time.Millisecond, WaveSquare, sampleRate), 0.25)
	case CueGameOver:
		return beep.Seq(
			withVolume(NewTone(440, 330, 200*time.Millisecond, WaveSine, sampleRate), 0.3),
			withVolume(NewTone(330, 220, 200*time.Millisecond, WaveSine, sampleRate), 0.3),
			withVolume(NewTone(220, 110, 400*time.Millisecond, WaveSine, sampleRate), 0.3),
		)
	default:
		return beep.Silence(0)
	}
}

// Player mixes cues onto the speaker. A zero or muted Player does nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player; call Init before playing anything
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Play triggers every cue for a tick report
func (p *Player) Play(r game.Report) {
	if p == nil {
		return
	}
	cues := Cues(r)
	if len(cues) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	speaker.Lock()
	for _, c := range cues {
		p.mixer.Add(Sound(c))
	}
	speaker.Unlock()
}

// Close stops playback
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
