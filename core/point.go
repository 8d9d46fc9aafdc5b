package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Unit directions, screen coordinates (Y grows downward)
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Add returns the component-wise sum of p and q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Opposite reports whether p and q point in exactly opposite directions
func (p Point) Opposite(q Point) bool {
	return p.X == -q.X && p.Y == -q.Y && p != q
}
