package tikz

import (
	"strconv"
)

// GridScale is the number of LTspice grid units per circuitikz unit.
const GridScale = 32

// Point is a position in drawing space.
type Point struct {
	X, Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats the point as a TikZ coordinate, e.g. "(3.625, -6.75)".
func (p Point) String() string {
	return "(" + formatNumber(p.X) + ", " + formatNumber(p.Y) + ")"
}

// MapGrid converts a grid position plus an offset to drawing space.
// LTspice's y axis points down, TikZ's points up.
func MapGrid(gx, gy int, off Offset) Point {
	return Point{
		X: float64(gx+off.X) / GridScale,
		Y: float64(-(gy + off.Y)) / GridScale,
	}
}

func formatNumber(v float64) string {
	if v == 0 {
		// also catches -0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
