package core

import (
	"fmt"
	"strings"
)

// Variant is a decorative floor tile index. 0 means no decoration; 1-30
// select a sprite in the floor atlas, so the numbering must stay stable.
type Variant uint8

const (
	VariantNone Variant = iota

	LargeCornerNW // 1: ┏
	LargeCornerNE // 2: ┓
	LargeCornerSW // 3: ┗
	LargeCornerSE // 4: ┛

	BorderWest  // 5
	BorderEast  // 6
	BorderNorth // 7
	BorderSouth // 8

	Interior // 9: catch-all for reachable cells

	FloatWestEnd // 10
	FloatEastEnd // 11
	FloatMiddle  // 12
	FloatSingle  // 13

	CorridorHorizontal // 14
	CorridorVertical   // 15

	TightCornerNW // 16
	TightCornerNE // 17
	TightCornerSW // 18
	TightCornerSE // 19

	DeadEndNorth // 20: open to the south only
	DeadEndEast  // 21: open to the west only
	DeadEndSouth // 22: open to the north only
	DeadEndWest  // 23: open to the east only

	JunctionNoNorth // 24
	JunctionNoEast  // 25
	JunctionNoWest  // 26
	JunctionNoSouth // 27

	Cross // 28

	IrregularNotchNE // 29
	IrregularNotchNW // 30
)

// VariantCount is one past the highest variant index.
const VariantCount = 31

// Window is the 3x3 neighborhood of a cell, ordered by increasing Y then X:
// indices 0-2 are the row below (y-1), 3-5 the cell's row, 6-8 the row above.
type Window [9]bool

// WindowAt reads the 3x3 window of m centered on p.
func WindowAt(m *Mask, p Point) Window {
	var w Window
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			w[i] = m.Get(p.Add(dx, dy))
			i++
		}
	}
	return w
}

// Center reports whether the window's center is reachable.
func (w Window) Center() bool {
	return w[4]
}

// Rule is a partial pattern over a Window. Unconstrained positions are wildcards.
type Rule struct {
	Variant Variant
	Name    string
	// Pattern is drawn as on screen: north row, middle row, south row.
	// '1' = reachable, '0' = unreachable, '?' = any.
	Pattern [3]string

	care Window
	want Window
}

// Matches reports whether the window satisfies the rule.
func (r Rule) Matches(w Window) bool {
	for i := range w {
		if r.care[i] && w[i] != r.want[i] {
			return false
		}
	}
	return true
}

// rule compiles a pattern. Rows are given north to south.
func rule(v Variant, name, north, middle, south string) Rule {
	r := Rule{Variant: v, Name: name, Pattern: [3]string{north, middle, south}}
	// Window rows run south to north.
	for row, pattern := range [3]string{south, middle, north} {
		if len(pattern) != 3 {
			panic(fmt.Sprintf("core: rule %q row %q must have 3 cells", name, pattern))
		}
		for col := 0; col < 3; col++ {
			i := row*3 + col
			switch pattern[col] {
			case '1':
				r.care[i], r.want[i] = true, true
			case '0':
				r.care[i], r.want[i] = true, false
			case '?':
			default:
				panic(fmt.Sprintf("core: rule %q has bad cell %q", name, pattern[col]))
			}
		}
	}
	return r
}

// rules is evaluated top to bottom; the first match wins. Order matters:
// the floaters and the catch-all must only apply when nothing above matched.
var rules = []Rule{
	// Corners
	rule(LargeCornerNW, "large corner NW",
		"?0?",
		"011",
		"?11"),
	rule(TightCornerNW, "tight corner NW",
		"?0?",
		"011",
		"?10"),
	rule(LargeCornerNE, "large corner NE",
		"?0?",
		"110",
		"11?"),
	rule(TightCornerNE, "tight corner NE",
		"?0?",
		"110",
		"01?"),
	rule(LargeCornerSW, "large corner SW",
		"?11",
		"011",
		"?0?"),
	rule(TightCornerSW, "tight corner SW",
		"?10",
		"011",
		"?0?"),
	rule(LargeCornerSE, "large corner SE",
		"11?",
		"110",
		"?0?"),
	rule(TightCornerSE, "tight corner SE",
		"01?",
		"110",
		"?0?"),

	// Large borders
	rule(BorderWest, "border west",
		"?11",
		"011",
		"?11"),
	rule(BorderEast, "border east",
		"11?",
		"110",
		"11?"),
	rule(BorderNorth, "border north",
		"?0?",
		"111",
		"111"),
	rule(BorderSouth, "border south",
		"111",
		"111",
		"?0?"),

	// Small corridors
	rule(CorridorHorizontal, "corridor horizontal",
		"?0?",
		"111",
		"?0?"),
	rule(CorridorVertical, "corridor vertical",
		"?1?",
		"010",
		"?1?"),

	// Dead ends
	rule(DeadEndNorth, "dead end north",
		"?0?",
		"010",
		"?1?"),
	rule(DeadEndEast, "dead end east",
		"?0?",
		"110",
		"?0?"),
	rule(DeadEndSouth, "dead end south",
		"?1?",
		"010",
		"?0?"),
	rule(DeadEndWest, "dead end west",
		"?0?",
		"011",
		"?0?"),

	// Three-ways
	rule(JunctionNoNorth, "junction without north",
		"?0?",
		"111",
		"010"),
	rule(JunctionNoEast, "junction without east",
		"01?",
		"110",
		"01?"),
	rule(JunctionNoWest, "junction without west",
		"?10",
		"011",
		"?10"),
	rule(JunctionNoSouth, "junction without south",
		"010",
		"111",
		"?0?"),

	// Tight cross
	rule(Cross, "cross",
		"010",
		"111",
		"010"),

	// Irregular composites
	rule(IrregularNotchNE, "irregular notch NE",
		"?00",
		"111",
		"011"),
	rule(IrregularNotchNW, "irregular notch NW",
		"00?",
		"111",
		"110"),

	// Floaters: decoration under a floor edge, center itself unreachable
	rule(FloatWestEnd, "float west end",
		"011",
		"?0?",
		"???"),
	rule(FloatEastEnd, "float east end",
		"110",
		"?0?",
		"???"),
	rule(FloatMiddle, "float middle",
		"111",
		"?0?",
		"???"),
	rule(FloatSingle, "float single",
		"010",
		"?0?",
		"???"),

	// Catch-all
	rule(Interior, "interior",
		"???",
		"?1?",
		"???"),
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// ClassifyWindow returns the variant of the first rule matching w,
// or VariantNone if no rule matches.
func ClassifyWindow(w Window) Variant {
	for _, r := range rules {
		if r.Matches(w) {
			return r.Variant
		}
	}
	return VariantNone
}

// Variants is the classifier output: one variant per cell.
type Variants struct {
	W     int
	H     int
	cells []Variant
}

// At returns the variant at p, or VariantNone outside the grid.
func (v *Variants) At(p Point) Variant {
	if p.X < 0 || p.X >= v.W || p.Y < 0 || p.Y >= v.H {
		return VariantNone
	}
	return v.cells[p.Y*v.W+p.X]
}

// Equal returns true if two variant grids have the same dimensions and contents.
func (v *Variants) Equal(other *Variants) bool {
	if v.W != other.W || v.H != other.H {
		return false
	}
	for i, c := range v.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders one hex digit per cell (variants above 15 use two
// digits, so rows may be ragged), top row first.
func (v *Variants) String() string {
	var sb strings.Builder
	for y := v.H - 1; y >= 0; y-- {
		for x := 0; x < v.W; x++ {
			fmt.Fprintf(&sb, "%x", uint8(v.cells[y*v.W+x]))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Classify assigns a decorative variant to every interior cell of m.
// The one-cell border is never classified and stays VariantNone.
func Classify(m *Mask) *Variants {
	out := &Variants{W: m.W, H: m.H, cells: make([]Variant, m.W*m.H)}
	for y := 1; y < m.H-1; y++ {
		for x := 1; x < m.W-1; x++ {
			out.cells[y*m.W+x] = ClassifyWindow(WindowAt(m, Point{X: x, Y: y}))
		}
	}
	return out
}
