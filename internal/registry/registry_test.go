package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

type stubGame struct {
	id     string
	levels int
	start  int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Pack " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type pickerGame struct{ stubGame }

func (g *pickerGame) LevelCount() int { return g.levels }
func (g *pickerGame) LevelTitles() []string { return make([]string, g.levels) }
func (g *pickerGame) SelectLevel(n int) error {
	if n < 1 || n > g.levels {
		return errors.New("out of range")
	}
	g.start = n
	return nil
}

func TestRegisterListCreate(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register("tutorial", func() Game { return &pickerGame{stubGame{id: "tutorial", levels: 4}} })
	Register("classic", func() Game { return &stubGame{id: "classic"} })

	list := List()
	require.Len(t, list, 2)
	assert.Equal(t, GameInfo{ID: "classic", Title: "Pack classic"}, list[0])
	assert.Equal(t, GameInfo{ID: "tutorial", Title: "Pack tutorial", Levels: 4}, list[1])

	assert.True(t, Exists("classic"))
	assert.False(t, Exists("missing"))

	g, err := Create("classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", g.ID())

	_, err = Create("missing")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register("classic", func() Game { return &stubGame{id: "classic"} })
	assert.Panics(t, func() {
		Register("classic", func() Game { return &stubGame{id: "classic"} })
	})
}

func TestCreateAt(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register("tutorial", func() Game { return &pickerGame{stubGame{id: "tutorial", levels: 4}} })
	Register("classic", func() Game { return &stubGame{id: "classic"} })

	g, err := CreateAt("tutorial", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.(*pickerGame).start)

	_, err = CreateAt("tutorial", 9)
	assert.Error(t, err)

	_, err = CreateAt("classic", 2)
	assert.Error(t, err, "games without level selection reject a start level")

	g, err = CreateAt("classic", 0)
	require.NoError(t, err)
	assert.Equal(t, "classic", g.ID())
}

func TestClear(t *testing.T) {
	Clear()
	Register("classic", func() Game { return &stubGame{id: "classic"} })
	Clear()

	assert.Empty(t, List())
	assert.False(t, Exists("classic"))
}
