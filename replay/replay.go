// Package replay records the input stream and step sequence of a session and
// plays it back headless. Because the simulation is deterministic for a
// fixed seed and dt sequence, a replay reproduces the run exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"spaceshooter/game"
)

// FormatVersion is bumped whenever the encoding changes incompatibly
const FormatVersion = 1

// Header opens every recording
type Header struct {
	Version  int         `msgpack:"v"`
	Config   game.Config `msgpack:"cfg"`
	Recorded time.Time   `msgpack:"at"`
}

// Frame is one ebiten update: the events delivered and the step simulated
type Frame struct {
	DT     time.Duration `msgpack:"dt"`
	Events []game.Event  `msgpack:"ev,omitempty"`
}

// Recording is a fully decoded replay
type Recording struct {
	Header Header
	Frames []Frame
}

// Recorder streams frames to a writer
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
}

// NewRecorder writes the header and returns a recorder for the remaining frames
func NewRecorder(w io.Writer, config game.Config) (*Recorder, error) {
	enc := msgpack.NewEncoder(w)
	header := Header{
		Version:  FormatVersion,
		Config:   config,
		Recorded: time.Now().UTC(),
	}
	if err := enc.Encode(&header); err != nil {
		return nil, fmt.Errorf("failed to write replay header: %w", err)
	}
	return &Recorder{enc: enc}, nil
}

// Record appends one frame
func (r *Recorder) Record(dt time.Duration, events []game.Event) error {
	frame := Frame{DT: dt}
	if len(events) > 0 {
		frame.Events = events
	}
	if err := r.enc.Encode(&frame); err != nil {
		return fmt.Errorf("failed to write replay frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns how many frames were written
func (r *Recorder) Frames() int {
	return r.frames
}

// Read decodes a whole recording
func Read(rd io.Reader) (*Recording, error) {
	dec := msgpack.NewDecoder(rd)

	var rec Recording
	if err := dec.Decode(&rec.Header); err != nil {
		return nil, fmt.Errorf("failed to read replay header: %w", err)
	}
	if rec.Header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %d (want %d)", rec.Header.Version, FormatVersion)
	}

	for {
		var f Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read replay frame %d: %w", len(rec.Frames), err)
		}
		rec.Frames = append(rec.Frames, f)
	}
	return &rec, nil
}

// Result summarizes a finished playback
type Result struct {
	Frames int
	Final  game.Snapshot
	Kills  int
	Runs   int // Runs that ended in GameOver
}

// Play feeds a recording through a fresh game, exactly as the client did
func Play(rec *Recording, opts ...game.Option) (*game.Game, Result) {
	g := game.NewGame(rec.Header.Config, opts...)

	var res Result
	for _, f := range rec.Frames {
		for _, e := range f.Events {
			g.HandleEvent(e)
		}
		res.Frames++
		if g.Quit() {
			break
		}
		report := g.Tick(f.DT)
		res.Kills += report.Kills
		if report.Depleted {
			res.Runs++
		}
	}
	res.Final = g.Snapshot()
	return g, res
}
