// Package config loads host settings from an optional .env file and TETRA_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/plus3/tetra/engine"
)

// Environment variables read by Load.
const (
	EnvWidth            = "TETRA_WIDTH"
	EnvHeight           = "TETRA_HEIGHT"
	EnvStepDelay        = "TETRA_STEP_DELAY"
	EnvLockDelay        = "TETRA_LOCK_DELAY"
	EnvRepeatDelay      = "TETRA_REPEAT_DELAY"
	EnvMaxGroundedMoves = "TETRA_MAX_GROUNDED_MOVES"
	EnvLinesPerLevel    = "TETRA_LINES_PER_LEVEL"
	EnvDatabase         = "TETRA_DB"
	EnvSSHAddr          = "TETRA_SSH_ADDR"
	EnvHostKey          = "TETRA_HOST_KEY"
	EnvMaxSessionsPerIP = "TETRA_MAX_SESSIONS_PER_IP"
	EnvLogLevel         = "TETRA_LOG_LEVEL"
	EnvPlayer           = "TETRA_PLAYER"
)

// Settings is everything a host needs to start.
type Settings struct {
	Engine engine.Config

	DatabasePath     string
	SSHAddr          string
	HostKeyPath      string
	MaxSessionsPerIP int
	LogLevel         log.Level
	Player           string
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Engine:           engine.DefaultConfig(),
		DatabasePath:     "highscores.db",
		SSHAddr:          "0.0.0.0:2323",
		HostKeyPath:      ".ssh/tetra_ed25519",
		MaxSessionsPerIP: 2,
		LogLevel:         log.InfoLevel,
		Player:           "player",
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables that are already set,
// then builds Settings from the environment. A missing .env file is not an
// error.
func Load(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("config: load env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds Settings from the process environment only.
func FromEnv() (Settings, error) {
	s := Default()
	p := parser{}

	p.int(EnvWidth, &s.Engine.Width)
	p.int(EnvHeight, &s.Engine.Height)
	p.float(EnvStepDelay, &s.Engine.StepDelay)
	p.float(EnvLockDelay, &s.Engine.LockDelay)
	p.float(EnvRepeatDelay, &s.Engine.RepeatDelay)
	p.int(EnvMaxGroundedMoves, &s.Engine.MaxGroundedMoves)
	p.int(EnvLinesPerLevel, &s.Engine.LinesPerLevel)
	p.int(EnvMaxSessionsPerIP, &s.MaxSessionsPerIP)
	p.string(EnvDatabase, &s.DatabasePath)
	p.string(EnvSSHAddr, &s.SSHAddr)
	p.string(EnvHostKey, &s.HostKeyPath)
	p.string(EnvPlayer, &s.Player)

	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			p.errs = append(p.errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		} else {
			s.LogLevel = level
		}
	}

	// Spawn tracks the board size unless the defaults fit unchanged.
	if s.Engine.Width != engine.DefaultWidth || s.Engine.Height != engine.DefaultHeight {
		s.Engine.Spawn = SpawnFor(s.Engine.Width, s.Engine.Height)
	}
	if s.MaxSessionsPerIP < 1 {
		p.errs = append(p.errs, fmt.Errorf("%s must be at least 1", EnvMaxSessionsPerIP))
	}
	if err := s.Engine.Validate(); err != nil {
		p.errs = append(p.errs, err)
	}

	if err := errors.Join(p.errs...); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// SpawnFor returns the spawn point for a width x height board: one column
// left of center, two rows below the top.
func SpawnFor(width, height int) engine.Point {
	return engine.Point{X: -1, Y: height - height/2 - 2}
}

type parser struct {
	errs []error
}

func (p *parser) string(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func (p *parser) int(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func (p *parser) float(key string, dst *float64) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = f
}
