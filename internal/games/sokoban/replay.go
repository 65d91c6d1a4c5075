package sokoban

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// ErrBadMoves is returned for a move string with an unknown letter.
var ErrBadMoves = errors.New("sokoban: invalid move string")

// ParseMoves reads a move string in LURD notation. Letter case is ignored
// (upper case conventionally marks a push) and whitespace is skipped.
func ParseMoves(s string) ([]core.Dir, error) {
	var dirs []core.Dir
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := core.ParseDir(string(r))
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadMoves, r, i)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// ReplayResult is the outcome of replaying a move string.
type ReplayResult struct {
	Final    core.Snapshot
	Moves    []core.Move // one per input letter, in order
	Rejected int         // letters that did not move the player
}

// Replay plays a move string against a level without interpolation and
// returns the final snapshot.
func Replay(lvl levels.Level, arena core.Arena, moves string) (ReplayResult, error) {
	dirs, err := ParseMoves(moves)
	if err != nil {
		return ReplayResult{}, err
	}

	grid, err := lvl.Grid(arena)
	if err != nil {
		return ReplayResult{}, err
	}
	state, err := core.NewState(grid)
	if err != nil {
		return ReplayResult{}, err
	}

	res := ReplayResult{Moves: make([]core.Move, 0, len(dirs))}
	for _, d := range dirs {
		m := state.Play(d)
		if !m.Accepted() {
			res.Rejected++
		}
		res.Moves = append(res.Moves, m)
	}
	res.Final = state.Snapshot()
	return res, nil
}
