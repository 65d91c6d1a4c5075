package core

import "fmt"

// Point is a cell position in grid units.
// X increases to the right, Y increases upward (origin bottom-left).
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns a new Point one step in the given direction.
func (p Point) Step(d Dir) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Arena is the coordinate space a level is centered into.
type Arena struct {
	W int
	H int
}

// DefaultArena is the 20x16 arena levels are centered in by default.
var DefaultArena = Arena{W: 20, H: 16}
