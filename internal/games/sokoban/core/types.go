// Package core provides the core game logic for the Sokoban puzzle game:
// level parsing, floor reachability, decorative tile classification and
// the movement/push rule. This package is UI-agnostic and deterministic.
package core

// Kind is the static classification of a grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Wall
	Player
	Box
	Goal
	BoxInGoal
)

// String returns the level-text character for the kind.
func (k Kind) String() string {
	return string(k.Rune())
}

// Rune returns the level-text character for the kind.
func (k Kind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Player:
		return '@'
	case Box:
		return '$'
	case Goal:
		return '.'
	case BoxInGoal:
		return '+'
	default:
		return ' '
	}
}

// kindFromRune maps a level-text character to a kind.
// Unknown characters report ok=false and are treated as Empty by the parser.
func kindFromRune(r rune) (Kind, bool) {
	switch r {
	case ' ':
		return Empty, true
	case '#':
		return Wall, true
	case '.':
		return Goal, true
	case '$':
		return Box, true
	case '@':
		return Player, true
	case '+':
		return BoxInGoal, true
	default:
		return Empty, false
	}
}

// HasBox reports whether the kind starts with a box on it.
func (k Kind) HasBox() bool {
	return k == Box || k == BoxInGoal
}

// HasGoal reports whether the kind is a goal cell.
func (k Kind) HasGoal() bool {
	return k == Goal || k == BoxInGoal
}

// Dir is a movement direction.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs lists the four axis directions.
var Dirs = [4]Dir{Up, Right, Down, Left}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up increases Y (world coordinates, origin bottom-left).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Right:
		return 1, 0
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// ParseDir reads a direction name or its single-letter form (u, d, l, r).
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "up", "Up", "u", "U":
		return Up, true
	case "right", "Right", "r", "R":
		return Right, true
	case "down", "Down", "d", "D":
		return Down, true
	case "left", "Left", "l", "L":
		return Left, true
	}
	return Up, false
}
