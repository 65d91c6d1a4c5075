package core

import "time"

// State is the live simulation of one level: the player, the boxes and the
// counters. The Grid supplies static walls and goals and is never mutated.
// A State has a single owner; all mutation goes through Request and Advance.
type State struct {
	Grid   *Grid
	Player Actor
	Moves  int
	Pushes int

	boxes []Actor
	boxAt map[Point]int // cell -> index into boxes
	goals map[Point]bool
	speed float64
}

// NewState creates the initial simulation for a parsed level.
func NewState(g *Grid) (*State, error) {
	start, err := g.PlayerPos()
	if err != nil {
		return nil, err
	}

	s := &State{
		Grid:   g,
		Player: NewActor(start),
		boxAt:  make(map[Point]int),
		goals:  make(map[Point]bool),
		speed:  DefaultCellsPerSecond,
	}
	for _, p := range g.Boxes() {
		s.boxAt[p] = len(s.boxes)
		s.boxes = append(s.boxes, NewActor(p))
	}
	for _, p := range g.Goals() {
		s.goals[p] = true
	}
	return s, nil
}

// SetSpeed sets the interpolation speed in cells per second.
// Non-positive values are ignored.
func (s *State) SetSpeed(cellsPerSecond float64) {
	if cellsPerSecond > 0 {
		s.speed = cellsPerSecond
	}
}

// HasBox implements Occupancy over the live box positions.
func (s *State) HasBox(p Point) bool {
	_, ok := s.boxAt[p]
	return ok
}

// Boxes returns a copy of the box actors in their load order.
func (s *State) Boxes() []Actor {
	out := make([]Actor, len(s.boxes))
	copy(out, s.boxes)
	return out
}

// Request evaluates one movement request for the player. While the player
// has a move in flight the request is ignored and reported as Busy; it is
// not queued.
func (s *State) Request(d Dir) Move {
	if s.Player.InFlight() {
		return Move{Outcome: Busy, Dir: d, From: s.Player.Cell, To: s.Player.Cell}
	}

	m := Resolve(s.Grid, s, s.Player.Cell, d)
	if !m.Accepted() {
		return m
	}

	if m.Outcome == Pushed {
		i := s.boxAt[m.BoxFrom]
		if s.boxes[i].InFlight() {
			return Move{Outcome: Busy, Dir: d, From: s.Player.Cell, To: s.Player.Cell}
		}
		delete(s.boxAt, m.BoxFrom)
		s.boxes[i].Start(d)
		s.boxAt[m.BoxTo] = i
		s.Pushes++
	}

	s.Player.Start(d)
	s.Moves++
	return m
}

// Advance steps every in-flight motion by dt.
func (s *State) Advance(dt time.Duration) {
	s.Player.Advance(dt, s.speed)
	for i := range s.boxes {
		s.boxes[i].Advance(dt, s.speed)
	}
}

// Idle reports whether no actor has a motion in flight.
func (s *State) Idle() bool {
	if s.Player.InFlight() {
		return false
	}
	for i := range s.boxes {
		if s.boxes[i].InFlight() {
			return false
		}
	}
	return true
}

// BoxesOnGoals counts boxes resting on goal cells.
func (s *State) BoxesOnGoals() int {
	n := 0
	for p := range s.boxAt {
		if s.goals[p] {
			n++
		}
	}
	return n
}

// Solved reports whether every box sits on a goal.
func (s *State) Solved() bool {
	return len(s.boxes) > 0 && s.BoxesOnGoals() == len(s.boxes)
}

// Snapshot captures the simulation for determinism testing and replay.
type Snapshot struct {
	Player   Point
	Boxes    []Point // load order
	Moves    int
	Pushes   int
	OnGoals  int
	Solved   bool
	InFlight bool
}

// Snapshot returns the current simulation snapshot.
func (s *State) Snapshot() Snapshot {
	boxes := make([]Point, len(s.boxes))
	for i, b := range s.boxes {
		boxes[i] = b.Cell
	}
	return Snapshot{
		Player:   s.Player.Cell,
		Boxes:    boxes,
		Moves:    s.Moves,
		Pushes:   s.Pushes,
		OnGoals:  s.BoxesOnGoals(),
		Solved:   s.Solved(),
		InFlight: !s.Idle(),
	}
}

// settleStep is one 60 Hz frame.
const settleStep = time.Second / 60

// Play settles any motion in flight, requests a move, and advances until
// every actor is back on the grid. Used by replays and tests that do not
// care about interpolation.
func (s *State) Play(d Dir) Move {
	s.settle()
	m := s.Request(d)
	s.settle()
	return m
}

func (s *State) settle() {
	for !s.Idle() {
		s.Advance(settleStep)
	}
}
