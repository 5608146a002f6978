package engine

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth            = 10
	DefaultHeight           = 20
	DefaultStepDelay        = 0.8
	DefaultLockDelay        = 0.5
	DefaultRepeatDelay      = 0.1
	DefaultMaxGroundedMoves = 15
	DefaultLinesPerLevel    = 10
	DefaultLevelDelayBase   = 1.0
	DefaultLevelDelayStep   = 0.1
	DefaultMinStepDelay     = 0.1
)

// DefaultSpawn is where new pieces appear on a default board.
var DefaultSpawn = Point{X: -1, Y: 8}

// DefaultLineScores awards points by lines cleared in one lock.
var DefaultLineScores = []int{0, 100, 300, 500, 800}

// Config holds the tunables of a game. Durations are seconds of accumulated
// tick time.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Spawn  Point `json:"spawn"`

	StepDelay   float64 `json:"stepDelay"`
	LockDelay   float64 `json:"lockDelay"`
	RepeatDelay float64 `json:"repeatDelay"`

	// MaxGroundedMoves is how many moves or rotations a grounded piece may
	// make before it locks on the next ground check.
	MaxGroundedMoves int `json:"maxGroundedMoves"`

	// LineScores[n] is awarded for clearing n lines at once. Larger clears
	// use the last entry.
	LineScores    []int `json:"lineScores"`
	LinesPerLevel int   `json:"linesPerLevel"`

	// On level up the step delay becomes
	// max(LevelDelayBase - level*LevelDelayStep, MinStepDelay).
	LevelDelayBase float64 `json:"levelDelayBase"`
	LevelDelayStep float64 `json:"levelDelayStep"`
	MinStepDelay   float64 `json:"minStepDelay"`
}

// DefaultConfig returns the standard 10x20 configuration.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Spawn:            DefaultSpawn,
		StepDelay:        DefaultStepDelay,
		LockDelay:        DefaultLockDelay,
		RepeatDelay:      DefaultRepeatDelay,
		MaxGroundedMoves: DefaultMaxGroundedMoves,
		LineScores:       append([]int(nil), DefaultLineScores...),
		LinesPerLevel:    DefaultLinesPerLevel,
		LevelDelayBase:   DefaultLevelDelayBase,
		LevelDelayStep:   DefaultLevelDelayStep,
		MinStepDelay:     DefaultMinStepDelay,
	}
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 4 {
		errs = append(errs, fmt.Errorf("width %d is narrower than a piece", c.Width))
	}
	if c.Height < 2 {
		errs = append(errs, fmt.Errorf("height %d is too short", c.Height))
	}
	if c.StepDelay <= 0 {
		errs = append(errs, errors.New("step delay must be positive"))
	}
	if c.LockDelay <= 0 {
		errs = append(errs, errors.New("lock delay must be positive"))
	}
	if c.RepeatDelay <= 0 {
		errs = append(errs, errors.New("repeat delay must be positive"))
	}
	if c.MaxGroundedMoves < 0 {
		errs = append(errs, errors.New("max grounded moves must not be negative"))
	}
	if len(c.LineScores) < 2 {
		errs = append(errs, fmt.Errorf("line score table has %d entries, want at least 2", len(c.LineScores)))
	}
	for n, s := range c.LineScores {
		if s < 0 {
			errs = append(errs, fmt.Errorf("line score for %d lines is negative", n))
		}
	}
	if c.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("lines per level must be positive"))
	}
	if c.MinStepDelay <= 0 {
		errs = append(errs, errors.New("min step delay must be positive"))
	}

	if c.Width >= 4 && c.Height >= 2 {
		bounds := NewBoard(c.Width, c.Height).Bounds()
		for s := range Shape(NumShapes) {
			for _, cell := range Lookup(s).Cells {
				if p := cell.Add(c.Spawn); !bounds.Contains(p) {
					errs = append(errs, fmt.Errorf("spawn %v puts shape %s outside the board", c.Spawn, s))
					break
				}
			}
		}
	}

	return errors.Join(errs...)
}
