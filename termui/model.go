// Package termui is a bubbletea front end for the engine. It runs both the
// local terminal host and the per-session UI of the SSH server.
package termui

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/tetra/engine"
)

const (
	// DefaultFrameInterval is the time between two engine ticks.
	DefaultFrameInterval = time.Second / 60

	// maxFrameDelta caps the time fed to one tick, so a stalled terminal
	// does not drop the piece several rows at once.
	maxFrameDelta = 0.25

	bannerFrames = 90
)

type frameMsg time.Time

func frame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// hud collects what the view shows besides the snapshot. It is shared by all
// copies of a Model and written by the game's event handler.
type hud struct {
	banner       string
	bannerFrames int
}

// Model drives one game. Terminals report key presses only, never
// releases, so every key becomes a Pressed intent for the next frame and
// holding a key relies on the terminal's own auto-repeat.
type Model struct {
	game     *engine.Game
	keys     KeyMap
	help     help.Model
	styles   Styles
	hud      *hud
	player   string
	interval time.Duration

	pending engine.Intents
	last    time.Time
	paused  bool
	width   int
	height  int
}

// Option configures a Model.
type Option func(*Model)

func WithKeyMap(k KeyMap) Option { return func(m *Model) { m.keys = k } }

// WithRenderer draws with r instead of the default stdout renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.styles = NewStyles(r) }
}

// WithPlayer shows name in the side panel.
func WithPlayer(name string) Option { return func(m *Model) { m.player = name } }

// WithFrameInterval changes the tick rate.
func WithFrameInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// New returns a model playing g.
func New(g *engine.Game, opts ...Option) Model {
	m := Model{
		game:     g,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(lipgloss.DefaultRenderer()),
		hud:      &hud{},
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(&m)
	}

	h := m.hud
	g.Subscribe(func(ev engine.Event) {
		switch ev.Kind {
		case engine.EventLinesCleared:
			h.show(clearName(ev.Lines))
		case engine.EventLevelChanged:
			h.show(fmt.Sprintf("LEVEL %d", ev.Level))
		}
	})
	return m
}

func (h *hud) show(banner string) {
	h.banner = banner
	h.bannerFrames = bannerFrames
}

func (h *hud) frame() {
	if h.bannerFrames > 0 {
		h.bannerFrames--
		if h.bannerFrames == 0 {
			h.banner = ""
		}
	}
}

func clearName(lines int) string {
	switch lines {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS!"
	}
}

// Game returns the game the model plays.
func (m Model) Game() *engine.Game { return m.game }

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool { return m.paused }

func (m Model) Init() tea.Cmd {
	return frame(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.advance(time.Time(msg)), frame(m.interval)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// advance ticks the game with the time elapsed since the previous frame and
// the intents collected in between.
func (m Model) advance(now time.Time) Model {
	dt := 0.0
	if !m.last.IsZero() {
		dt = min(now.Sub(m.last).Seconds(), maxFrameDelta)
	}
	m.last = now

	if m.paused || m.game.Over() {
		m.pending = engine.Intents{}
		return m
	}
	m.game.Tick(dt, m.pending)
	m.pending = engine.Intents{}
	m.hud.frame()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		if !m.game.Over() {
			m.paused = !m.paused
		}
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		if m.game.Over() {
			m.game.Reset(rand.Uint64(), rand.Uint64())
			m.pending = engine.Intents{}
			m.hud.banner, m.hud.bannerFrames = "", 0
		}
		return m, nil
	}

	if m.paused || m.game.Over() {
		return m, nil
	}
	if in, ok := m.keys.Intent(msg); ok {
		m.pending.Pressed = m.pending.Pressed.With(in)
	}
	return m, nil
}
