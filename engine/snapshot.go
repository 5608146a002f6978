package engine

// Snapshot is a self-contained copy of everything a renderer needs. It shares
// no memory with the game.
type Snapshot struct {
	Bounds Rect     `json:"bounds"`
	Rows   [][]Cell `json:"rows"`

	// Active lists the absolute cells of the active piece. The cells are
	// also present in Rows.
	Active      []Point    `json:"active,omitempty"`
	ActiveShape Shape      `json:"activeShape"`
	Ghost       []Point    `json:"ghost,omitempty"`
	State       PieceState `json:"state"`

	Next    Shape `json:"next"`
	Held    Shape `json:"held"`
	HasHeld bool  `json:"hasHeld"`
	CanHold bool  `json:"canHold"`

	Progress Progress `json:"progress"`
	Over     bool     `json:"over"`
	Tick     uint64   `json:"tick"`
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Bounds:   g.board.Bounds(),
		Rows:     g.board.Rows(),
		State:    g.State(),
		Next:     g.next,
		Held:     g.held,
		HasHeld:  g.hasHeld,
		CanHold:  g.canHold,
		Progress: g.tracker.Progress(),
		Over:     g.over,
		Tick:     g.ticks,
	}
	if g.piece != nil {
		cells := g.piece.AbsCells()
		s.Active = cells[:]
		s.ActiveShape = g.piece.Shape
		if ghost, ok := g.GhostCells(); ok {
			s.Ghost = ghost[:]
		}
	}
	return s
}

// At returns the cell at p, or CellEmpty outside the captured bounds.
func (s Snapshot) At(p Point) Cell {
	if !s.Bounds.Contains(p) {
		return CellEmpty
	}
	return s.Rows[p.Y-s.Bounds.YMin][p.X-s.Bounds.XMin]
}
