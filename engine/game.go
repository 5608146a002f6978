package engine

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
)

// Game is one play session. It is the context object every part of the
// rules engine works through; there is no global state. A Game is not safe
// for concurrent use.
type Game struct {
	cfg    Config
	logger *log.Logger
	seed   [2]uint64

	board   *Board
	bag     *Bag
	next    Shape
	piece   *ActivePiece
	lifted  bool
	held    Shape
	hasHeld bool
	canHold bool

	tracker   *Tracker
	stepDelay float64
	over      bool

	ticks uint64
	locks uint64

	events   Events
	bus      *Bus
	pipeline *Pipeline
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Games are silent by default.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSeed fixes the randomizer seed. Without it a random seed is chosen;
// Seed reports it either way.
func WithSeed(seed1, seed2 uint64) Option {
	return func(g *Game) {
		g.seed = [2]uint64{seed1, seed2}
	}
}

// New validates cfg and starts a game with its first piece in play.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid config: %w", err)
	}
	cfg.LineScores = append([]int(nil), cfg.LineScores...)

	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
		seed:   [2]uint64{rand.Uint64(), rand.Uint64()},
		bus:    newBus(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.start()
	return g, nil
}

// Reset starts a new session on the same configuration with a new seed.
// Subscriptions are kept.
func (g *Game) Reset(seed1, seed2 uint64) {
	g.seed = [2]uint64{seed1, seed2}
	g.start()
}

func (g *Game) start() {
	g.board = NewBoard(g.cfg.Width, g.cfg.Height)
	g.bag = NewBag(g.seed[0], g.seed[1])
	g.next = g.bag.Draw()
	g.piece = nil
	g.lifted = false
	g.held, g.hasHeld, g.canHold = 0, false, true
	g.tracker = NewTracker(g.cfg)
	g.stepDelay = g.cfg.StepDelay
	g.over = false
	g.ticks, g.locks = 0, 0
	g.events = Events{}
	g.pipeline = newPipeline()

	g.logger.Debug("game started", "seed1", g.seed[0], "seed2", g.seed[1], "width", g.cfg.Width, "height", g.cfg.Height)

	g.spawn()
	g.place()
	g.flush()
}

// Tick advances the game by dt seconds, applying intents in the fixed
// pipeline order. A finished game ignores ticks, and so does a negative dt.
func (g *Game) Tick(dt float64, intents Intents) {
	if g.over || dt < 0 {
		return
	}
	g.ticks++

	g.lift()
	g.pipeline.Execute(newFrame(g, dt, intents))
	g.place()
	g.flush()
}

// Run ticks the game every interval until ctx is cancelled or the game
// ends, feeding it the intents returned by poll and the measured frame time.
func (g *Game) Run(ctx context.Context, interval time.Duration, poll func() Intents) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for !g.over {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			g.Tick(dt, poll())
		}
	}
}

// lift takes the active piece off the board. It reports whether it did, so
// nested callers leave the final place to the outermost one.
func (g *Game) lift() bool {
	if g.lifted || g.piece == nil {
		return false
	}
	g.board.Clear(g.piece.Cells[:], g.piece.Position)
	g.lifted = true
	return true
}

// place puts the active piece back on the board.
func (g *Game) place() {
	g.lifted = false
	if g.piece != nil {
		g.board.Set(g.piece.Cells[:], g.piece.Position, CellFor(g.piece.Shape))
	}
}

func (g *Game) emit(ev Event) {
	ev.Tick = g.ticks
	g.events.Emit(ev)
}

func (g *Game) flush() {
	g.events.Flush(g.bus)
}

// apply runs one state machine operation outside of Tick with the same
// lift, place and flush discipline.
func (g *Game) apply(op func() bool) bool {
	if g.over {
		return false
	}
	lifted := g.lift()
	ok := op()
	if lifted {
		g.place()
	}
	g.flush()
	return ok
}

// Move translates the active piece by (dx,dy) if the destination is free.
func (g *Game) Move(dx, dy int) bool {
	return g.apply(func() bool { return g.move(dx, dy) })
}

// Rotate turns the active piece clockwise (dir 1) or counter-clockwise
// (dir -1) using wall kicks.
func (g *Game) Rotate(dir int) bool {
	return g.apply(func() bool { return g.rotate(dir) })
}

// SoftDrop moves the active piece one row down.
func (g *Game) SoftDrop() bool {
	return g.apply(func() bool { return g.move(0, -1) })
}

// HardDrop drops and locks the active piece.
func (g *Game) HardDrop() bool {
	return g.apply(g.hardDrop)
}

// Hold banks the active piece; see the hold rules on Game.hold.
func (g *Game) Hold() bool {
	return g.apply(g.hold)
}

// Subscribe registers h for all future events.
func (g *Game) Subscribe(h Handler) SubscriptionID {
	return g.bus.Subscribe(h)
}

// Unsubscribe removes a handler registered with Subscribe.
func (g *Game) Unsubscribe(id SubscriptionID) bool {
	return g.bus.Unsubscribe(id)
}

func (g *Game) Config() Config         { return g.cfg }
func (g *Game) Seed() (uint64, uint64) { return g.seed[0], g.seed[1] }
func (g *Game) Next() Shape            { return g.next }
func (g *Game) CanHold() bool          { return g.canHold }
func (g *Game) Over() bool             { return g.over }
func (g *Game) Ticks() uint64          { return g.ticks }
func (g *Game) Locks() uint64          { return g.locks }
func (g *Game) Progress() Progress     { return g.tracker.Progress() }

// Board returns the playfield with the active piece on it. Callers must
// treat it as read-only.
func (g *Game) Board() *Board { return g.board }

// Held returns the shape in the hold slot.
func (g *Game) Held() (Shape, bool) { return g.held, g.hasHeld }

// Active returns a copy of the active piece.
func (g *Game) Active() (ActivePiece, bool) {
	if g.piece == nil {
		return ActivePiece{}, false
	}
	return *g.piece, true
}

// State returns the state of the active piece, StateNone if there is none.
func (g *Game) State() PieceState {
	if g.piece == nil {
		return StateNone
	}
	return g.piece.State
}

// StepDelay returns the current gravity interval in seconds.
func (g *Game) StepDelay() float64 { return g.stepDelay }

// Stats returns timing statistics of the tick pipeline.
func (g *Game) Stats() *PipelineStats { return g.pipeline.Stats() }
