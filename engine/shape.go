package engine

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Shape -trimprefix=Shape

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
)

// NumShapes is the number of distinct tetrominoes.
const NumShapes = 7

// Valid reports whether s names a tetromino.
func (s Shape) Valid() bool {
	return s < NumShapes
}

// Pivot selects how rotated cell coordinates are rounded back onto the grid.
type Pivot uint8

const (
	// PivotCell rotates around a cell center and rounds to the nearest cell.
	PivotCell Pivot = iota
	// PivotHalfCell rotates around a cell corner. I and O need it to stay
	// centered while they turn.
	PivotHalfCell
)

// kickSets is the number of wall-kick rows every definition carries: one per
// rotation index and direction.
const kickSets = 8

// Definition is the immutable catalog entry of a tetromino.
type Definition struct {
	Shape Shape
	// Cells are the four occupied offsets of the spawn orientation.
	Cells [4]Point
	// Kicks is indexed [kickSet][candidate]; see KickIndex.
	Kicks [][]Point
	Pivot Pivot
}

var kicksI = [][]Point{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var kicksJLOSTZ = [][]Point{
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var catalog = [NumShapes]Definition{
	ShapeI: {Shape: ShapeI, Cells: [4]Point{{-1, 1}, {0, 1}, {1, 1}, {2, 1}}, Kicks: kicksI, Pivot: PivotHalfCell},
	ShapeO: {Shape: ShapeO, Cells: [4]Point{{0, 1}, {1, 1}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ, Pivot: PivotHalfCell},
	ShapeT: {Shape: ShapeT, Cells: [4]Point{{0, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	ShapeJ: {Shape: ShapeJ, Cells: [4]Point{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	ShapeL: {Shape: ShapeL, Cells: [4]Point{{1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	ShapeS: {Shape: ShapeS, Cells: [4]Point{{0, 1}, {1, 1}, {-1, 0}, {0, 0}}, Kicks: kicksJLOSTZ},
	ShapeZ: {Shape: ShapeZ, Cells: [4]Point{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
}

// A broken catalog is unrecoverable; refuse to start.
func init() {
	for i := range catalog {
		if err := catalog[i].Validate(); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the catalog definition of s. The kick table is shared and
// must not be modified.
func Lookup(s Shape) Definition {
	if !s.Valid() {
		panic(fmt.Sprintf("engine: unknown shape %d", s))
	}
	return catalog[s]
}

// Validate checks the structural consistency of a definition.
func (d Definition) Validate() error {
	var errs []error
	if !d.Shape.Valid() {
		errs = append(errs, fmt.Errorf("unknown shape %d", d.Shape))
	}

	for i := range d.Cells {
		for j := i + 1; j < len(d.Cells); j++ {
			if d.Cells[i] == d.Cells[j] {
				errs = append(errs, fmt.Errorf("cell %v listed twice", d.Cells[i]))
			}
		}
	}

	if len(d.Kicks) != kickSets {
		errs = append(errs, fmt.Errorf("kick table has %d rows, want %d", len(d.Kicks), kickSets))
	}
	for i, row := range d.Kicks {
		if len(row) == 0 {
			errs = append(errs, fmt.Errorf("kick row %d is empty", i))
			continue
		}
		if len(row) != len(d.Kicks[0]) {
			errs = append(errs, fmt.Errorf("kick row %d has %d candidates, want %d", i, len(row), len(d.Kicks[0])))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("shape %s: %w", d.Shape, err)
	}
	return nil
}
