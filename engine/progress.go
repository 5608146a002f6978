package engine

import "math"

// Progress is the score and difficulty state of a game.
type Progress struct {
	Score int `json:"score"`
	Lines int `json:"lines"`
	Level int `json:"level"`
	// StepDelay is the gravity interval in seconds.
	StepDelay float64 `json:"stepDelay"`
}

// Change reports which parts of Progress an update touched.
type Change struct {
	Score bool
	Level bool
}

// Tracker derives score, level and step delay from cleared lines.
type Tracker struct {
	cfg      Config
	progress Progress
}

// NewTracker returns a tracker at level 1 with the configured step delay.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		cfg: cfg,
		progress: Progress{
			Level:     1,
			StepDelay: cfg.StepDelay,
		},
	}
}

func (t *Tracker) Progress() Progress { return t.progress }

// Award returns the points for clearing lines rows in one lock.
func (t *Tracker) Award(lines int) int {
	scores := t.cfg.LineScores
	if lines <= 0 || len(scores) == 0 {
		return 0
	}
	return scores[min(lines, len(scores)-1)]
}

// Apply records a lock that cleared lines rows.
func (t *Tracker) Apply(lines int) Change {
	if lines <= 0 {
		return Change{}
	}

	var ch Change
	if pts := t.Award(lines); pts > 0 {
		t.progress.Score += pts
		ch.Score = true
	}

	t.progress.Lines += lines
	level := t.progress.Lines/t.cfg.LinesPerLevel + 1
	if level > t.progress.Level {
		t.progress.Level = level
		t.progress.StepDelay = t.LevelStepDelay(level)
		ch.Level = true
	}
	return ch
}

// LevelStepDelay is the gravity interval used once level is reached.
func (t *Tracker) LevelStepDelay(level int) float64 {
	return math.Max(t.cfg.LevelDelayBase-float64(level)*t.cfg.LevelDelayStep, t.cfg.MinStepDelay)
}
