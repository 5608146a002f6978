package engine

// Cell is the content of one board square: CellEmpty or a filled marker.
// Filled markers remember the shape that produced them so renderers can color
// them; the rules only distinguish empty from filled.
type Cell uint8

const CellEmpty Cell = 0

// CellFor returns the filled marker for s.
func CellFor(s Shape) Cell {
	return Cell(s) + 1
}

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c != CellEmpty
}

// Shape returns the shape that filled the cell.
func (c Cell) Shape() (Shape, bool) {
	if c == CellEmpty {
		return 0, false
	}
	return Shape(c - 1), true
}

// Board is the occupancy grid. Coordinates are centered: a 10x20 board spans
// x in [-5,5) and y in [-10,10), with y growing upward. Cells are stored in a
// flat row-major array starting at the bottom row.
type Board struct {
	bounds Rect
	cells  []Cell
}

// NewBoard returns an empty width x height board.
func NewBoard(width, height int) *Board {
	xMin, yMin := -width/2, -height/2
	return &Board{
		bounds: Rect{XMin: xMin, YMin: yMin, XMax: xMin + width, YMax: yMin + height},
		cells:  make([]Cell, width*height),
	}
}

func (b *Board) Bounds() Rect { return b.bounds }
func (b *Board) Width() int   { return b.bounds.Width() }
func (b *Board) Height() int  { return b.bounds.Height() }

// Contains reports whether p lies inside the board.
func (b *Board) Contains(p Point) bool {
	return b.bounds.Contains(p)
}

func (b *Board) index(p Point) int {
	return (p.Y-b.bounds.YMin)*b.bounds.Width() + (p.X - b.bounds.XMin)
}

// At returns the cell at p. Points outside the board read as empty.
func (b *Board) At(p Point) Cell {
	if !b.bounds.Contains(p) {
		return CellEmpty
	}
	return b.cells[b.index(p)]
}

// Occupied reports whether p is inside the board and filled.
func (b *Board) Occupied(p Point) bool {
	return b.At(p).Filled()
}

// IsValidPosition reports whether every cell translated by pos lies inside
// the board on an empty square. The board does not know about the active
// piece: callers lift it before testing alternative positions.
func (b *Board) IsValidPosition(cells []Point, pos Point) bool {
	for _, c := range cells {
		p := c.Add(pos)
		if !b.bounds.Contains(p) || b.cells[b.index(p)].Filled() {
			return false
		}
	}
	return true
}

// Set fills every cell translated by pos with v. Cells outside the board are
// ignored.
func (b *Board) Set(cells []Point, pos Point, v Cell) {
	for _, c := range cells {
		p := c.Add(pos)
		if b.bounds.Contains(p) {
			b.cells[b.index(p)] = v
		}
	}
}

// Clear empties every cell translated by pos.
func (b *Board) Clear(cells []Point, pos Point) {
	b.Set(cells, pos, CellEmpty)
}

// ClearFullLines removes every full row, collapsing the rows above it, and
// returns the number of rows removed. Rows are scanned bottom-up and a row is
// rescanned after a collapse, since new content has moved into it.
func (b *Board) ClearFullLines() int {
	cleared := 0
	row := b.bounds.YMin
	for row < b.bounds.YMax {
		if b.lineFull(row) {
			b.removeLine(row)
			cleared++
			continue
		}
		row++
	}
	return cleared
}

func (b *Board) lineFull(y int) bool {
	w := b.bounds.Width()
	start := (y - b.bounds.YMin) * w
	for _, c := range b.cells[start : start+w] {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// removeLine shifts every row above y down by one and empties the top row.
func (b *Board) removeLine(y int) {
	w := b.bounds.Width()
	start := (y - b.bounds.YMin) * w
	copy(b.cells[start:], b.cells[start+w:])
	clear(b.cells[len(b.cells)-w:])
}

// Rows returns a copy of the grid, bottom row first.
func (b *Board) Rows() [][]Cell {
	w := b.bounds.Width()
	rows := make([][]Cell, b.bounds.Height())
	for i := range rows {
		rows[i] = append([]Cell(nil), b.cells[i*w:(i+1)*w]...)
	}
	return rows
}

// Count returns the number of filled cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled() {
			n++
		}
	}
	return n
}

// Reset empties the whole board.
func (b *Board) Reset() {
	clear(b.cells)
}
