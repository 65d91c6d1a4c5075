package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

type cellSet map[core.Point]bool

func (s cellSet) IsWall(p core.Point) bool { return s[p] }
func (s cellSet) HasBox(p core.Point) bool { return s[p] }

func cells(ps ...core.Point) cellSet {
	s := make(cellSet, len(ps))
	for _, p := range ps {
		s[p] = true
	}
	return s
}

func TestResolve(t *testing.T) {
	player := core.P(5, 5)

	tests := []struct {
		name    string
		walls   cellSet
		boxes   cellSet
		dir     core.Dir
		want    core.Outcome
		to      core.Point
		boxFrom core.Point
		boxTo   core.Point
	}{
		{
			name:  "walk into empty cell",
			walls: cells(),
			boxes: cells(),
			dir:   core.Left,
			want:  core.Walked,
			to:    core.P(4, 5),
		},
		{
			name:  "wall blocks",
			walls: cells(core.P(5, 6)),
			boxes: cells(),
			dir:   core.Up,
			want:  core.BlockedByWall,
			to:    player,
		},
		{
			name:    "push box up",
			walls:   cells(),
			boxes:   cells(core.P(5, 6)),
			dir:     core.Up,
			want:    core.Pushed,
			to:      core.P(5, 6),
			boxFrom: core.P(5, 6),
			boxTo:   core.P(5, 7),
		},
		{
			name:    "push box down",
			walls:   cells(core.P(5, 2)),
			boxes:   cells(core.P(5, 4)),
			dir:     core.Down,
			want:    core.Pushed,
			to:      core.P(5, 4),
			boxFrom: core.P(5, 4),
			boxTo:   core.P(5, 3),
		},
		{
			name:  "box against wall",
			walls: cells(core.P(7, 5)),
			boxes: cells(core.P(6, 5)),
			dir:   core.Right,
			want:  core.BoxBlockedByWall,
			to:    player,
		},
		{
			name:  "box against box",
			walls: cells(),
			boxes: cells(core.P(5, 6), core.P(5, 7)),
			dir:   core.Up,
			want:  core.BoxBlockedByBox,
			to:    player,
		},
		{
			name:  "wall beats box behind it",
			walls: cells(core.P(5, 6)),
			boxes: cells(core.P(5, 7)),
			dir:   core.Up,
			want:  core.BlockedByWall,
			to:    player,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := core.Resolve(tc.walls, tc.boxes, player, tc.dir)
			assert.Equal(t, tc.want, m.Outcome)
			assert.Equal(t, tc.dir, m.Dir)
			assert.Equal(t, player, m.From)
			assert.Equal(t, tc.to, m.To)
			if tc.want == core.Pushed {
				assert.Equal(t, tc.boxFrom, m.BoxFrom)
				assert.Equal(t, tc.boxTo, m.BoxTo)
			}
			assert.Equal(t, tc.want == core.Walked || tc.want == core.Pushed, m.Accepted())
		})
	}
}

func TestResolveOutsideGridIsWall(t *testing.T) {
	g, err := core.ParseIn("@", core.Arena{W: 1, H: 1})
	if !assert.NoError(t, err) {
		return
	}
	for _, d := range core.Dirs {
		m := core.Resolve(g, cells(), core.P(0, 0), d)
		assert.Equal(t, core.BlockedByWall, m.Outcome, "dir %v", d)
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "pushed", core.Pushed.String())
	assert.Equal(t, "box blocked by box", core.BoxBlockedByBox.String())
	assert.Equal(t, "unknown", core.Outcome(99).String())
}
