package core

import "strings"

// Grid is the static geometry of a level: a W x H rectangle of cell kinds.
// Cells are stored in row-major order by world Y: index = y*W + x.
// A Grid is never mutated after parsing; live player and box positions
// are tracked by State.
type Grid struct {
	W     int // Width of the grid
	H     int // Height of the grid
	cells []Kind
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]Kind, w*h),
	}
}

// index converts a point to a flat array index.
func (g *Grid) index(p Point) int {
	return p.Y*g.W + p.X
}

// set is only used while parsing.
func (g *Grid) set(p Point, k Kind) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = k
	}
}

// InBounds returns true if the point is within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// At returns the kind of the cell at p.
func (g *Grid) At(p Point) (Kind, error) {
	if !g.InBounds(p) {
		return Empty, ErrOutOfBounds
	}
	return g.cells[g.index(p)], nil
}

// IsWall reports whether p is a wall. Points outside the grid count as walls,
// so flood fill and movement can probe past the border safely.
func (g *Grid) IsWall(p Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.cells[g.index(p)] == Wall
}

// IsGoal reports whether p is a goal cell (Goal or BoxInGoal).
func (g *Grid) IsGoal(p Point) bool {
	k, err := g.At(p)
	return err == nil && k.HasGoal()
}

// PlayerPos returns the player's starting cell.
func (g *Grid) PlayerPos() (Point, error) {
	for i, k := range g.cells {
		if k == Player {
			return Point{X: i % g.W, Y: i / g.W}, nil
		}
	}
	return Point{}, ErrNoPlayer
}

// Boxes returns every Box and BoxInGoal cell in scan order.
func (g *Grid) Boxes() []Point {
	return g.collect(Kind.HasBox)
}

// Goals returns every Goal and BoxInGoal cell in scan order.
func (g *Grid) Goals() []Point {
	return g.collect(Kind.HasGoal)
}

// collect scans y ascending, then x ascending.
func (g *Grid) collect(match func(Kind) bool) []Point {
	points := make([]Point, 0)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if match(g.cells[y*g.W+x]) {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// RowY converts a text row (0 = top) to a world Y.
func (g *Grid) RowY(row int) int {
	return g.H - 1 - row
}

// YRow converts a world Y to a text row (0 = top).
func (g *Grid) YRow(y int) int {
	return g.H - 1 - y
}

// String renders the grid back to level text, top row first.
// Trailing spaces are trimmed from each row.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.H; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		var line strings.Builder
		y := g.RowY(row)
		for x := 0; x < g.W; x++ {
			line.WriteRune(g.cells[y*g.W+x].Rune())
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
	}
	return sb.String()
}
