package bitmap

// Point is a cell address: X is the 1-based column, Y the 1-based row.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// neighbors4 are the offsets of the 4-connected neighborhood: up, down,
// left, right.
var neighbors4 = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
