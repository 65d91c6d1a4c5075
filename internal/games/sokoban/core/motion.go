package core

import "time"

// DefaultCellsPerSecond is the interpolation speed: 48 px/s at 16 px per cell.
const DefaultCellsPerSecond = 3.0

// Motion is a pending interpolated move toward a grid-aligned destination.
type Motion struct {
	Target Point
	Dir    Dir
}

// Actor is anything that moves on the grid: the player or a box.
// Cell is authoritative; X and Y are the presented position in cell units
// and only differ from Cell while Moving is set.
type Actor struct {
	Cell   Point
	X, Y   float64
	Moving *Motion
	Facing Dir
}

// NewActor creates an idle actor resting on p, facing down.
func NewActor(p Point) Actor {
	return Actor{Cell: p, X: float64(p.X), Y: float64(p.Y), Facing: Down}
}

// InFlight reports whether the actor has a pending motion.
func (a *Actor) InFlight() bool {
	return a.Moving != nil
}

// Start begins a one-cell motion in direction d and moves the authoritative
// cell immediately. Returns false, leaving the actor untouched, if a motion
// is already in flight.
func (a *Actor) Start(d Dir) bool {
	if a.Moving != nil {
		return false
	}
	target := a.Cell.Step(d)
	a.Moving = &Motion{Target: target, Dir: d}
	a.Cell = target
	a.Facing = d
	return true
}

// Advance moves the presented position toward the motion target by
// cellsPerSecond*dt. Once the target is reached or passed the position
// snaps exactly onto it and the motion is cleared. Returns true on the
// step that completes the motion.
func (a *Actor) Advance(dt time.Duration, cellsPerSecond float64) bool {
	if a.Moving == nil {
		return false
	}

	step := cellsPerSecond * dt.Seconds()
	dx, dy := a.Moving.Dir.Delta()
	a.X += float64(dx) * step
	a.Y += float64(dy) * step

	tx, ty := float64(a.Moving.Target.X), float64(a.Moving.Target.Y)
	var arrived bool
	switch a.Moving.Dir {
	case Up:
		arrived = a.Y >= ty
	case Down:
		arrived = a.Y <= ty
	case Left:
		arrived = a.X <= tx
	case Right:
		arrived = a.X >= tx
	}

	if !arrived {
		return false
	}
	a.X, a.Y = tx, ty
	a.Moving = nil
	return true
}
