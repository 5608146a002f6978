package engine

// hold banks the active piece's shape. With an empty slot the next piece
// spawns; otherwise the held shape swaps in at the current position with
// rotation 0. Holding is allowed once per lock.
func (g *Game) hold() bool {
	p := g.piece
	if p == nil || !g.canHold {
		return false
	}

	if !g.hasHeld {
		g.held, g.hasHeld = p.Shape, true
		g.canHold = false
		g.piece = nil
		g.emit(Event{Kind: EventHoldChanged, Shape: g.held, HasShape: true})
		g.spawn()
		return true
	}

	cells := Lookup(g.held).Cells
	if !g.board.IsValidPosition(cells[:], p.Position) {
		return false
	}

	swapped := &ActivePiece{
		Shape:    g.held,
		Cells:    cells,
		Position: p.Position,
		State:    StateFalling,
	}
	g.held = p.Shape
	g.canHold = false
	g.piece = swapped
	if g.grounded() {
		swapped.State = StateGrounded
	}
	g.emit(Event{Kind: EventHoldChanged, Shape: g.held, HasShape: true})
	g.emit(Event{Kind: EventPieceSpawned, Shape: swapped.Shape, Position: swapped.Position, Rotation: 0})
	return true
}
