// Package replay records and replays games as JSON-lines intent logs.
//
// A log starts with a header envelope carrying the seed and configuration,
// continues with one step envelope per tick and ends with an end envelope
// holding the final progress. Since the engine is deterministic, feeding the
// steps back into a game built from the header reproduces it exactly.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/plus3/tetra/engine"
)

// ErrDiverged is returned by Replay when the replayed game does not finish
// with the recorded result.
var ErrDiverged = errors.New("replay: game diverged from the recording")

// Header identifies the game a log belongs to.
type Header struct {
	Seed   [2]uint64     `json:"seed"`
	Config engine.Config `json:"config"`
}

// Step is the input of one tick.
type Step struct {
	DT      float64          `json:"dt"`
	Pressed engine.IntentSet `json:"p,omitempty"`
	Held    engine.IntentSet `json:"h,omitempty"`
}

// Intents returns the step's input in engine form.
func (s Step) Intents() engine.Intents {
	return engine.Intents{Pressed: s.Pressed, Held: s.Held}
}

// End is the result written when a recording is closed.
type End struct {
	Ticks    uint64          `json:"ticks"`
	Over     bool            `json:"over"`
	Progress engine.Progress `json:"progress"`
}

// Recorder writes a game's intent log.
type Recorder struct {
	w    *bufio.Writer
	game *engine.Game
	err  error
}

// NewRecorder starts a log for g on w. Record every tick fed to g, or let
// the recorder do the ticking with Tick.
func NewRecorder(w io.Writer, g *engine.Game) (*Recorder, error) {
	seed1, seed2 := g.Seed()
	r := &Recorder{w: bufio.NewWriter(w), game: g}
	r.write(MsgHeader, Header{Seed: [2]uint64{seed1, seed2}, Config: g.Config()})
	if r.err != nil {
		return nil, r.err
	}
	return r, nil
}

func (r *Recorder) write(t string, payload any) {
	if r.err != nil {
		return
	}
	b, err := Encode(t, payload)
	if err != nil {
		r.err = err
		return
	}
	b = append(b, '\n')
	if _, err := r.w.Write(b); err != nil {
		r.err = fmt.Errorf("replay: write %s: %w", t, err)
	}
}

// Record appends one tick's input. Once a write fails every later call
// returns the same error.
func (r *Recorder) Record(dt float64, in engine.Intents) error {
	r.write(MsgStep, Step{DT: dt, Pressed: in.Pressed, Held: in.Held})
	return r.err
}

// Tick records the input and feeds it to the game.
func (r *Recorder) Tick(dt float64, in engine.Intents) error {
	if err := r.Record(dt, in); err != nil {
		return err
	}
	r.game.Tick(dt, in)
	return nil
}

// Close writes the end envelope with the game's current result and flushes
// the log. It does not close the underlying writer.
func (r *Recorder) Close() error {
	r.write(MsgEnd, End{Ticks: r.game.Ticks(), Over: r.game.Over(), Progress: r.game.Progress()})
	if r.err != nil {
		return r.err
	}
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("replay: flush: %w", err)
	}
	return nil
}

// Log is a parsed recording.
type Log struct {
	Header Header
	Steps  []Step
	// End is nil for a recording that was never closed.
	End *End
}

// maxLine bounds a single envelope; the header with its config is the
// largest one.
const maxLine = 64 * 1024

// Read parses a log. The first envelope must be the header and nothing may
// follow the end envelope.
func Read(r io.Reader) (*Log, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)

	var log *Log
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		env, err := DecodeEnvelope(scanner.Bytes())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		switch {
		case log == nil && env.T != MsgHeader:
			return nil, fmt.Errorf("line %d: replay: expected %s, got %q", line, MsgHeader, env.T)
		case log != nil && log.End != nil:
			return nil, fmt.Errorf("line %d: replay: %q after %s", line, env.T, MsgEnd)
		}

		switch env.T {
		case MsgHeader:
			if log != nil {
				return nil, fmt.Errorf("line %d: replay: duplicate %s", line, MsgHeader)
			}
			h, err := DecodePayload[Header](env)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			log = &Log{Header: h}
		case MsgStep:
			s, err := DecodePayload[Step](env)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			log.Steps = append(log.Steps, s)
		case MsgEnd:
			e, err := DecodePayload[End](env)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			log.End = &e
		default:
			return nil, fmt.Errorf("line %d: replay: unknown envelope type %q", line, env.T)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("replay: read: %w", err)
	}
	if log == nil {
		return nil, errors.New("replay: empty log")
	}
	return log, nil
}

// Replay rebuilds the recorded game and feeds it every step. When the log
// has an end envelope the result is checked against it and ErrDiverged is
// returned, together with the game, on mismatch.
func (l *Log) Replay(opts ...engine.Option) (*engine.Game, error) {
	opts = append(opts, engine.WithSeed(l.Header.Seed[0], l.Header.Seed[1]))
	g, err := engine.New(l.Header.Config, opts...)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	for _, s := range l.Steps {
		g.Tick(s.DT, s.Intents())
	}

	if l.End != nil {
		got := End{Ticks: g.Ticks(), Over: g.Over(), Progress: g.Progress()}
		if got != *l.End {
			return g, fmt.Errorf("%w: recorded %+v, replayed %+v", ErrDiverged, *l.End, got)
		}
	}
	return g, nil
}
