package engine

//go:generate go tool stringer -type=PieceState -trimprefix=State

// PieceState is the lifecycle state of the active piece.
type PieceState uint8

const (
	// StateNone means there is no active piece: before the first spawn or
	// after game over.
	StateNone PieceState = iota
	StateFalling
	StateGrounded
	// StateLocked is terminal; a locked piece is part of the board.
	StateLocked
)

var down = Point{X: 0, Y: -1}

// ActivePiece is the player-controlled tetromino.
type ActivePiece struct {
	Shape Shape
	// Cells are offsets after rotation, before translation by Position.
	Cells    [4]Point
	Position Point
	// Rotation is always in [0,4).
	Rotation int

	FallTime      float64
	GroundTime    float64
	GroundedMoves int

	State PieceState
}

// AbsCells returns the board cells the piece covers.
func (p ActivePiece) AbsCells() [4]Point {
	var out [4]Point
	for i, c := range p.Cells {
		out[i] = c.Add(p.Position)
	}
	return out
}

// The methods below make up the piece state machine. They expect the piece
// to be lifted off the board; see Game.lift.

// spawn brings the queued next shape into play and draws a new next shape.
func (g *Game) spawn() bool {
	shape := g.next
	g.next = g.bag.Draw()
	return g.spawnShape(shape)
}

// spawnShape places a fresh piece at the spawn point. A blocked spawn ends
// the game.
func (g *Game) spawnShape(shape Shape) bool {
	p := &ActivePiece{
		Shape:    shape,
		Cells:    Lookup(shape).Cells,
		Position: g.cfg.Spawn,
		State:    StateFalling,
	}
	if !g.board.IsValidPosition(p.Cells[:], p.Position) {
		g.gameOver()
		return false
	}

	g.piece = p
	if g.grounded() {
		p.State = StateGrounded
	}
	g.emit(Event{Kind: EventPieceSpawned, Shape: shape, Position: p.Position, Rotation: p.Rotation})
	return true
}

func (g *Game) gameOver() {
	g.piece = nil
	g.over = true
	score := g.tracker.Progress().Score
	g.emit(Event{Kind: EventGameOver, Score: score})
	g.logger.Info("game over", "score", score, "lines", g.tracker.Progress().Lines, "ticks", g.ticks)
}

// grounded reports whether the piece rests on the stack or the floor.
func (g *Game) grounded() bool {
	p := g.piece
	return !g.board.IsValidPosition(p.Cells[:], p.Position.Add(down))
}

// translate moves the piece by d if the destination is free.
func (g *Game) translate(d Point) bool {
	p := g.piece
	if p == nil {
		return false
	}
	to := p.Position.Add(d)
	if !g.board.IsValidPosition(p.Cells[:], to) {
		return false
	}
	p.Position = to
	g.settle()
	return true
}

func (g *Game) move(dx, dy int) bool {
	if !g.translate(Point{X: dx, Y: dy}) {
		return false
	}
	p := g.piece
	g.emit(Event{Kind: EventPieceMoved, Shape: p.Shape, Position: p.Position, Rotation: p.Rotation})
	return true
}

// settle updates the lock-delay bookkeeping after a successful move or
// rotation. Each grounded move restarts the ground timer until the piece has
// used up MaxGroundedMoves; after that the timer keeps running and the next
// ground check locks the piece.
func (g *Game) settle() {
	p := g.piece
	if g.grounded() {
		p.State = StateGrounded
		p.GroundedMoves++
		if p.GroundedMoves <= g.cfg.MaxGroundedMoves {
			p.GroundTime = 0
		}
		return
	}
	p.State = StateFalling
	p.GroundedMoves = 0
	p.GroundTime = 0
}

// rotate turns the piece by dir (+1 clockwise, -1 counter-clockwise), trying
// each wall kick of the selected row in order. Nothing changes unless one of
// them fits.
func (g *Game) rotate(dir int) bool {
	p := g.piece
	if p == nil || (dir != 1 && dir != -1) {
		return false
	}

	def := Lookup(p.Shape)
	var rotated [4]Point
	RotateCells(rotated[:], p.Cells[:], def.Pivot, dir)
	rotation := Wrap(p.Rotation+dir, 0, 4)

	for _, kick := range def.Kicks[KickIndex(rotation, dir, len(def.Kicks))] {
		to := p.Position.Add(kick)
		if !g.board.IsValidPosition(rotated[:], to) {
			continue
		}
		p.Cells = rotated
		p.Rotation = rotation
		p.Position = to
		g.settle()
		g.emit(Event{Kind: EventPieceMoved, Shape: p.Shape, Position: p.Position, Rotation: p.Rotation})
		return true
	}
	return false
}

// hardDrop drops the piece as far as it goes and locks it at once.
func (g *Game) hardDrop() bool {
	p := g.piece
	if p == nil {
		return false
	}
	moved := false
	for g.translate(down) {
		moved = true
	}
	if moved {
		g.emit(Event{Kind: EventPieceMoved, Shape: p.Shape, Position: p.Position, Rotation: p.Rotation})
	}
	g.lock()
	return true
}

// fall advances gravity and the lock timer by dt.
func (g *Game) fall(dt float64) {
	p := g.piece
	p.FallTime += dt
	if p.FallTime >= g.stepDelay {
		p.FallTime = 0
		g.move(0, -1)
	}

	if !g.grounded() {
		p.State = StateFalling
		p.GroundTime = 0
		return
	}

	p.State = StateGrounded
	p.GroundTime += dt
	if p.GroundTime >= g.cfg.LockDelay || p.GroundedMoves > g.cfg.MaxGroundedMoves {
		g.lock()
	}
}

// lock commits the piece to the board, clears lines, updates progress and
// spawns the next piece.
func (g *Game) lock() {
	p := g.piece
	g.board.Set(p.Cells[:], p.Position, CellFor(p.Shape))
	p.State = StateLocked
	g.piece = nil
	g.locks++
	g.canHold = true
	g.emit(Event{Kind: EventLocked, Shape: p.Shape, Position: p.Position, Rotation: p.Rotation})

	lines := g.board.ClearFullLines()
	if lines > 0 {
		g.emit(Event{Kind: EventLinesCleared, Lines: lines})
	}

	change := g.tracker.Apply(lines)
	progress := g.tracker.Progress()
	if change.Score {
		g.emit(Event{Kind: EventScoreChanged, Score: progress.Score})
	}
	if change.Level {
		g.stepDelay = progress.StepDelay
		g.emit(Event{Kind: EventLevelChanged, Level: progress.Level, StepDelay: progress.StepDelay})
		g.logger.Debug("level up", "level", progress.Level, "step_delay", progress.StepDelay)
	}

	g.spawn()
}
