package engine

// Point is an integer cell coordinate, either on the board or in a piece's
// local frame.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is the half-open cell range [XMin,XMax) x [YMin,YMax).
type Rect struct {
	XMin, YMin int
	XMax, YMax int
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X < r.XMax && p.Y >= r.YMin && p.Y < r.YMax
}

func (r Rect) Width() int  { return r.XMax - r.XMin }
func (r Rect) Height() int { return r.YMax - r.YMin }
