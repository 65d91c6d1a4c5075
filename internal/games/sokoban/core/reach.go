package core

import "strings"

// Mask is a boolean grid with the same dimensions as a Grid.
type Mask struct {
	W    int
	H    int
	bits []bool
}

// NewMask creates an all-false mask.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, bits: make([]bool, w*h)}
}

// InBounds returns true if the point is within the mask.
func (m *Mask) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.W && p.Y >= 0 && p.Y < m.H
}

// Get returns the value at p. Points outside the mask are false.
func (m *Mask) Get(p Point) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.bits[p.Y*m.W+p.X]
}

// Set sets the value at p. Points outside the mask are ignored.
func (m *Mask) Set(p Point, v bool) {
	if m.InBounds(p) {
		m.bits[p.Y*m.W+p.X] = v
	}
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// String renders the mask with '#' for true and '.' for false, top row first.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow((m.W + 1) * m.H)
	for y := m.H - 1; y >= 0; y-- {
		for x := 0; x < m.W; x++ {
			if m.bits[y*m.W+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Reachable flood-fills from the player's start over non-wall cells.
// Boxes do not block reachability. The fill uses an explicit stack, so
// depth is bounded by the grid area rather than the call stack.
func Reachable(g *Grid) (*Mask, error) {
	start, err := g.PlayerPos()
	if err != nil {
		return nil, err
	}

	mask := NewMask(g.W, g.H)
	stack := []Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.IsWall(p) || mask.Get(p) {
			continue
		}
		mask.Set(p, true)

		for _, d := range Dirs {
			next := p.Step(d)
			if g.InBounds(next) && !mask.Get(next) {
				stack = append(stack, next)
			}
		}
	}

	return mask, nil
}
