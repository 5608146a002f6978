package engine

import "math"

// rotationMatrix is the 90 degree clockwise rotation {cos, sin, -sin, cos}.
var rotationMatrix = [4]float64{0, 1, -1, 0}

// Wrap folds input into [min,max). Unlike the % operator it never returns a
// negative offset, so Wrap(-1, 0, 4) is 3.
func Wrap(input, min, max int) int {
	span := max - min
	r := (input - min) % span
	if r < 0 {
		r += span
	}
	return min + r
}

// RotateCells writes src rotated by 90 degrees into dst. dir is +1 for
// clockwise and -1 for counter-clockwise. dst and src may alias.
func RotateCells(dst, src []Point, pivot Pivot, dir int) {
	d := float64(dir)
	m := rotationMatrix
	for i, c := range src {
		x, y := float64(c.X), float64(c.Y)
		switch pivot {
		case PivotHalfCell:
			x -= 0.5
			y -= 0.5
			dst[i] = Point{
				X: int(math.Ceil((x*m[0] + y*m[1]) * d)),
				Y: int(math.Ceil((x*m[2] + y*m[3]) * d)),
			}
		default:
			dst[i] = Point{
				X: int(math.Round((x*m[0] + y*m[1]) * d)),
				Y: int(math.Round((x*m[2] + y*m[3]) * d)),
			}
		}
	}
}

// KickIndex selects the wall-kick row for a rotation that ends in rotation
// index rotation. Each index owns two rows; counter-clockwise turns use the
// row before it.
func KickIndex(rotation, dir, rows int) int {
	i := rotation * 2
	if dir < 0 {
		i--
	}
	return Wrap(i, 0, rows)
}
