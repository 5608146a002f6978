package engine

// Ghost returns the position the active piece would land at if hard dropped.
// The board is left exactly as it was.
func (g *Game) Ghost() (Point, bool) {
	if g.piece == nil {
		return Point{}, false
	}
	if g.lift() {
		defer g.place()
	}
	return g.project(), true
}

// GhostCells returns the board cells of the ghost piece.
func (g *Game) GhostCells() ([4]Point, bool) {
	pos, ok := g.Ghost()
	if !ok {
		return [4]Point{}, false
	}
	ghost := *g.piece
	ghost.Position = pos
	return ghost.AbsCells(), true
}

// project scans down from the piece's row to just below the floor and keeps
// the lowest position still valid. The piece must be lifted.
func (g *Game) project() Point {
	p := g.piece
	pos := p.Position
	bottom := g.board.Bounds().YMin - 1
	for row := p.Position.Y; row >= bottom; row-- {
		candidate := Point{X: p.Position.X, Y: row}
		if !g.board.IsValidPosition(p.Cells[:], candidate) {
			break
		}
		pos = candidate
	}
	return pos
}
