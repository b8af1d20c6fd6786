package client

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Profiler captures a CPU profile after the frame loop stalls long enough
// for the step clamp to kick in
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	stallThreshold  time.Duration
	profilesDir     string
	logger          *log.Logger
}

// NewProfiler creates a profiler writing into dir. logger may be nil.
func NewProfiler(dir string, logger *log.Logger) *Profiler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Profiler{
		captureCooldown: 30 * time.Second,
		captureDuration: 5 * time.Second,
		stallThreshold:  250 * time.Millisecond,
		profilesDir:     dir,
		logger:          logger,
	}
}

// Observe inspects an unclamped frame time and starts a capture when it
// looks like a stall. It never blocks the frame.
func (p *Profiler) Observe(frame time.Duration) {
	if p == nil || frame < p.stallThreshold {
		return
	}
	reason := fmt.Sprintf("stall%dms", frame.Milliseconds())
	if err := p.CaptureProfile(reason); err != nil {
		p.logger.Debug("profile skipped", "reason", reason, "err", err)
	}
}

// CaptureProfile captures a CPU profile in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime).Round(time.Second))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		path, err := p.captureCPUProfile(baseName)
		if err != nil {
			p.logger.Error("cpu profile failed", "err", err)
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.logger.Info("cpu profile saved",
			"path", path,
			"heapKB", m.HeapAlloc/1024,
			"numGC", m.NumGC,
			"hint", "go tool pprof -http=:8080 "+path)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) (string, error) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return "", fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return "", fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	return profilePath, nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
