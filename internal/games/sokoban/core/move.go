package core

// WallChecker reports static walls. *Grid implements it.
type WallChecker interface {
	IsWall(p Point) bool
}

// Occupancy reports whether a cell currently holds a box.
type Occupancy interface {
	HasBox(p Point) bool
}

// Outcome classifies the result of a movement request.
type Outcome uint8

const (
	Walked           Outcome = iota // player moved, no box involved
	Pushed                          // player moved and pushed a box
	BlockedByWall                   // target cell is a wall
	BoxBlockedByWall                // box would be pushed into a wall
	BoxBlockedByBox                 // box would be pushed into another box
	Busy                            // a move is still in flight; request ignored
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Walked:
		return "walked"
	case Pushed:
		return "pushed"
	case BlockedByWall:
		return "blocked by wall"
	case BoxBlockedByWall:
		return "box blocked by wall"
	case BoxBlockedByBox:
		return "box blocked by box"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// Move is the decision for one movement request.
type Move struct {
	Outcome Outcome
	Dir     Dir
	From    Point // player cell before the move
	To      Point // player cell after the move (== From when rejected)
	BoxFrom Point // valid only when Outcome == Pushed
	BoxTo   Point // valid only when Outcome == Pushed
}

// Accepted reports whether the player moves.
func (m Move) Accepted() bool {
	return m.Outcome == Walked || m.Outcome == Pushed
}

// Resolve decides whether the player at player may step in direction d.
// It only decides; callers apply the move. A rejected move is a normal
// outcome, not an error.
func Resolve(walls WallChecker, boxes Occupancy, player Point, d Dir) Move {
	m := Move{Dir: d, From: player, To: player}

	target := player.Step(d)
	if walls.IsWall(target) {
		m.Outcome = BlockedByWall
		return m
	}

	if !boxes.HasBox(target) {
		m.Outcome = Walked
		m.To = target
		return m
	}

	beyond := target.Step(d)
	switch {
	case walls.IsWall(beyond):
		m.Outcome = BoxBlockedByWall
	case boxes.HasBox(beyond):
		m.Outcome = BoxBlockedByBox
	default:
		m.Outcome = Pushed
		m.To = target
		m.BoxFrom = target
		m.BoxTo = beyond
	}
	return m
}
