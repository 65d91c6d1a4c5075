package sokoban

import (
	"errors"
	"strings"
	"testing"
	"time"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

const corridor = "#####\n#@$.#\n#####"

func testPack(maps ...string) levels.Pack {
	p := levels.Pack{ID: "test", Name: "Test"}
	for i, m := range maps {
		p.Levels = append(p.Levels, levels.Level{
			Pack:  "test",
			Index: i + 1,
			Name:  []string{"One", "Two", "Three"}[i],
			Map:   m,
		})
	}
	return p
}

func newTestGame(t *testing.T, maps ...string) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.Arena = core.Arena{W: 7, H: 5}
	g := New(testPack(maps...), opts)
	g.Reset(platformcore.DefaultConfig())
	return g
}

func press(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// settle steps with no input until a level is solved or the limit is hit.
func settle(g *Game, limit int) *platformcore.LevelResult {
	for i := 0; i < limit; i++ {
		if res := g.Step(press()); res.Solved != nil {
			return res.Solved
		}
	}
	return nil
}

func TestGameSolveAndAdvance(t *testing.T) {
	g := newTestGame(t, corridor, corridor)

	first := g.Step(press(platformcore.ActionRight))
	if first.Solved != nil {
		t.Fatal("level should not be solved while the box is in flight")
	}

	result := settle(g, 60)
	if result == nil {
		t.Fatal("expected level to be solved")
	}
	if result.Pack != "test" || result.Level != 1 || result.LevelName != "One" {
		t.Errorf("result = %+v", result)
	}
	if result.Moves != 1 || result.Pushes != 1 {
		t.Errorf("moves/pushes = %d/%d, want 1/1", result.Moves, result.Pushes)
	}
	if result.Duration <= 0 || result.Duration > time.Second {
		t.Errorf("unexpected duration %v", result.Duration)
	}
	if !g.Solved() {
		t.Error("expected Solved() after the winning tick")
	}
	if g.State().Score != 1 || g.State().GameOver {
		t.Errorf("state = %+v, want score 1 and still running", g.State())
	}

	// Movement is ignored while waiting for Next
	g.Step(press(platformcore.ActionLeft))
	snap, _ := g.Snapshot()
	if snap.Moves != 1 {
		t.Errorf("moves changed after solve: %d", snap.Moves)
	}

	g.Step(press(platformcore.ActionNext))
	lvl, ok := g.Level()
	if !ok || lvl.Index != 2 {
		t.Fatalf("expected level 2 after Next, got %+v", lvl)
	}
	if g.Solved() {
		t.Error("new level should not start solved")
	}

	g.Step(press(platformcore.ActionRight))
	if settle(g, 60) == nil {
		t.Fatal("expected second level to be solved")
	}
	state := g.State()
	if !state.GameOver || !g.Won() || state.Score != 2 {
		t.Errorf("state = %+v won=%v, want game over with score 2", state, g.Won())
	}

	// Restart after the run ended starts over
	g.Step(press(platformcore.ActionRestart))
	state = g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("state after restart = %+v", state)
	}
	lvl, _ = g.Level()
	if lvl.Index != 1 {
		t.Errorf("restart should return to level 1, got %d", lvl.Index)
	}
}

func TestGameRestartLevel(t *testing.T) {
	g := newTestGame(t, "######\n#@  .#\n#  $ #\n######")

	g.Step(press(platformcore.ActionRight))
	settle(g, 60)
	snap, _ := g.Snapshot()
	if snap.Moves != 1 {
		t.Fatalf("moves = %d, want 1", snap.Moves)
	}

	g.Step(press(platformcore.ActionRestart))
	snap, _ = g.Snapshot()
	if snap.Moves != 0 || snap.Player != core.P(1, 3) {
		t.Errorf("after restart: %+v", snap)
	}
}

func TestGameIgnoresInputWhileInFlight(t *testing.T) {
	g := newTestGame(t, "######\n#@  .#\n#  $ #\n######")

	g.Step(press(platformcore.ActionRight))
	g.Step(press(platformcore.ActionRight))
	g.Step(press(platformcore.ActionDown))

	snap, _ := g.Snapshot()
	if snap.Moves != 1 {
		t.Errorf("moves = %d, want 1: requests during a move are dropped", snap.Moves)
	}
	if !snap.InFlight {
		t.Error("expected the first move to still be in flight")
	}
}

func TestGameOneDirectionPerTick(t *testing.T) {
	g := newTestGame(t, "######\n#    #\n#@ $.#\n######")

	g.Step(press(platformcore.ActionUp, platformcore.ActionRight))
	settle(g, 60)

	snap, _ := g.Snapshot()
	if snap.Moves != 1 || snap.Pushes != 0 {
		t.Errorf("moves/pushes = %d/%d, want one walk", snap.Moves, snap.Pushes)
	}
	if snap.Player != core.P(1, 3) {
		t.Errorf("player = %v, want Up to win over Right", snap.Player)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, corridor)

	g.Step(press(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	g.Step(press(platformcore.ActionRight))
	snap, _ := g.Snapshot()
	if snap.Moves != 0 {
		t.Error("moves should be ignored while paused")
	}

	g.Step(press(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("expected resume")
	}
}

func TestGameSelectLevel(t *testing.T) {
	g := New(testPack(corridor, corridor, corridor), DefaultOptions())

	if err := g.SelectLevel(4); !errors.Is(err, levels.ErrLevelNotFound) {
		t.Errorf("SelectLevel(4) = %v, want ErrLevelNotFound", err)
	}
	if err := g.SelectLevel(0); err == nil {
		t.Error("SelectLevel(0) should fail")
	}
	if err := g.SelectLevel(3); err != nil {
		t.Fatalf("SelectLevel(3) failed: %v", err)
	}
	g.Reset(platformcore.DefaultConfig())

	lvl, _ := g.Level()
	if lvl.Index != 3 {
		t.Errorf("started at level %d, want 3", lvl.Index)
	}
	if g.LevelCount() != 3 {
		t.Errorf("LevelCount() = %d", g.LevelCount())
	}
	if titles := g.LevelTitles(); strings.Join(titles, ",") != "One,Two,Three" {
		t.Errorf("LevelTitles() = %v", titles)
	}
}

func TestGameBrokenLevel(t *testing.T) {
	g := newTestGame(t, "#####\n# $.#\n#####")

	if !g.State().GameOver {
		t.Error("a level without a player should end the run")
	}
	if !errors.Is(g.Err(), core.ErrNoPlayer) {
		t.Errorf("Err() = %v, want ErrNoPlayer", g.Err())
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "LEVEL ERROR") {
		t.Error("expected an error overlay")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, corridor)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SOKOBAN · Test", "Level 1/1  One", "Goals 0/1", "Moves 0  Pushes 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	for _, r := range []rune{wallGlyph, goalGlyph, boxGlyph, '▼'} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("render missing %q", r)
		}
	}

	// The player row: wall, player, box, goal, wall, two columns per cell
	col, row := g.cellOrigin(2, 2)
	if got := screen.Get(col, row); got != '▼' {
		t.Errorf("player cell = %q, want ▼", got)
	}
	if got := screen.GetCell(col+2, row); got.Rune != boxGlyph || got.Color != platformcore.ColorBrown {
		t.Errorf("box cell = %+v", got)
	}
	if got := screen.Get(col-2, row); got != wallGlyph {
		t.Errorf("wall cell = %q", got)
	}
}

func TestGameRenderHUDOnNarrowBoard(t *testing.T) {
	g := newTestGame(t, corridor)
	g.Step(press(platformcore.ActionUp))

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	row1 := screen.Row(1)
	level, goals := strings.Index(row1, "Level 1/1  One"), strings.Index(row1, "Goals 0/1")
	if level < 0 || goals < 0 || level > goals {
		t.Errorf("row 1 = %q, want level info then goals", row1)
	}

	row2 := screen.Row(2)
	moves, outcome := strings.Index(row2, "Moves 0  Pushes 0"), strings.Index(row2, "blocked by wall")
	if moves < 0 || outcome < 0 || moves > outcome {
		t.Errorf("row 2 = %q, want counters then outcome", row2)
	}
}

func TestGameRestartWhilePaused(t *testing.T) {
	g := newTestGame(t, corridor)

	g.Step(press(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	g.Step(press(platformcore.ActionRestart))
	if g.State().Paused {
		t.Error("restart should resume play")
	}

	g.Step(press(platformcore.ActionRight))
	if g.state.Moves != 1 {
		t.Errorf("Moves = %d after restart, want 1", g.state.Moves)
	}
}

func TestGameRenderBoxOnGoal(t *testing.T) {
	g := newTestGame(t, "#######\n#@$.+ #\n#######")

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	col, row := g.cellOrigin(4, 2)
	if got := screen.GetCell(col, row); got.Rune != boxGlyph || got.Color != platformcore.ColorBrightGreen {
		t.Errorf("box on goal = %+v", got)
	}
	col, row = g.cellOrigin(2, 2)
	if got := screen.GetCell(col, row); got.Rune != boxGlyph || got.Color != platformcore.ColorBrown {
		t.Errorf("loose box = %+v", got)
	}
	if !strings.Contains(screen.String(), "Goals 1/2") {
		t.Error("expected one of two goals filled")
	}
}

func TestGameRenderPackComplete(t *testing.T) {
	g := newTestGame(t, corridor)
	g.Step(press(platformcore.ActionRight))
	settle(g, 60)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "PACK COMPLETE!") {
		t.Error("expected completion overlay on the last level")
	}
	if !strings.Contains(out, "1 of 1 levels solved") {
		t.Error("expected solved count in overlay")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := New(testPack(corridor), DefaultOptions())
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small message")
	}

	g.Step(press(platformcore.ActionRight))
	snap, _ := g.Snapshot()
	if snap.Moves != 0 {
		t.Error("moves should be ignored while the window is too small")
	}
}

func TestGameDeterminism(t *testing.T) {
	script := map[int]platformcore.Action{
		0: platformcore.ActionRight, 30: platformcore.ActionDown,
		60: platformcore.ActionRight, 90: platformcore.ActionUp,
	}

	run := func() core.Snapshot {
		g := newTestGame(t, "######\n#@  .#\n#  $ #\n######")
		for i := 0; i < 120; i++ {
			if a, ok := script[i]; ok {
				g.Step(press(a))
			} else {
				g.Step(press())
			}
		}
		snap, _ := g.Snapshot()
		return snap
	}

	a, b := run(), run()
	if a.Player != b.Player || a.Moves != b.Moves || a.Pushes != b.Pushes {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}

func TestGameResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, "######\n#@  .#\n#  $ #\n######")
	g.Step(press(platformcore.ActionRight))
	settle(g, 60)

	g.Resize(20, 10)
	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small after shrinking")
	}

	g.Resize(80, 24)
	snap, _ := g.Snapshot()
	if snap.Moves != 1 {
		t.Errorf("moves = %d after resize, want 1", snap.Moves)
	}
	screen = platformcore.NewScreen(80, 24)
	g.Render(screen)
	if strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the board after growing back")
	}
}
