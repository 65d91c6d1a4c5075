// Package sokoban provides the Sokoban puzzle game for the platform.
package sokoban

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// Options configures a game instance.
type Options struct {
	Arena          core.Arena
	CellsPerSecond float64
	CellWidth      int  // terminal columns per grid cell
	ShowFloor      bool // draw decorative floor glyphs
	ShowStatus     bool // draw the move counters and last outcome
}

// DefaultOptions returns the standard options.
func DefaultOptions() Options {
	return Options{
		Arena:          core.DefaultArena,
		CellsPerSecond: core.DefaultCellsPerSecond,
		CellWidth:      2,
		ShowFloor:      true,
		ShowStatus:     true,
	}
}

// Game implements the Sokoban puzzle game over one pack.
type Game struct {
	opts Options
	pack levels.Pack

	// Current level
	index    int // 0-based into pack.Levels
	start    int // 0-based level a run starts from
	grid     *core.Grid
	state    *core.State
	variants *core.Variants
	lastMove core.Move
	loadErr  error

	// Screen dimensions
	cfg      platformcore.RuntimeConfig
	screenW  int
	screenH  int
	tickDur  time.Duration
	board    platformcore.Rect // frame around the grid
	tooSmall bool

	// Status
	tick       uint64
	levelTicks uint64
	score      int
	solved     bool // current level solved, waiting for Next
	gameOver   bool
	won        bool
	paused     bool
}

// New creates a game for the pack.
func New(pack levels.Pack, opts Options) *Game {
	if opts.CellWidth < 1 {
		opts.CellWidth = 1
	}
	if opts.Arena.W <= 0 || opts.Arena.H <= 0 {
		opts.Arena = core.DefaultArena
	}
	return &Game{opts: opts, pack: pack}
}

// RegisterPacks registers one game factory per pack.
func RegisterPacks(packs []levels.Pack, opts Options) {
	for _, p := range packs {
		registry.Register(p.ID, func() registry.Game {
			return New(p, opts)
		})
	}
}

// ID returns the pack identifier records are stored under.
func (g *Game) ID() string {
	return g.pack.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.pack.Name
}

// LevelCount returns the number of levels in the pack.
func (g *Game) LevelCount() int {
	return len(g.pack.Levels)
}

// LevelTitles returns the display names of the pack's levels.
func (g *Game) LevelTitles() []string {
	titles := make([]string, len(g.pack.Levels))
	for i, l := range g.pack.Levels {
		titles[i] = l.Title()
	}
	return titles
}

// SelectLevel sets the 1-based level the next Reset starts from.
func (g *Game) SelectLevel(n int) error {
	if n < 1 || n > len(g.pack.Levels) {
		return fmt.Errorf("%w: %s:%d", levels.ErrLevelNotFound, g.pack.ID, n)
	}
	g.start = n - 1
	return nil
}

// Reset initializes or restarts the run from the selected level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickDur = cfg.TickDuration()
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.index = g.start
	g.loadCurrentLevel()
}

// Resize adapts the layout to a new screen size, keeping the level state.
func (g *Game) Resize(width, height int) {
	g.cfg.ScreenW, g.cfg.ScreenH = width, height
	g.screenW, g.screenH = width, height
	g.calculateLayout()
}

// loadCurrentLevel parses and prepares the level at g.index.
func (g *Game) loadCurrentLevel() {
	g.solved = false
	g.paused = false
	g.levelTicks = 0
	g.lastMove = core.Move{}
	g.state, g.grid, g.variants = nil, nil, nil

	if g.index >= len(g.pack.Levels) {
		g.won = true
		g.gameOver = true
		return
	}

	lvl := g.pack.Levels[g.index]
	grid, err := lvl.Grid(g.opts.Arena)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	mask, err := core.Reachable(grid)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	state, err := core.NewState(grid)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	state.SetSpeed(g.opts.CellsPerSecond)

	g.loadErr = nil
	g.grid = grid
	g.variants = core.Classify(mask)
	g.state = state
	g.calculateLayout()
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Restart: the whole run after it ended, otherwise the current level
	if input.Has(platformcore.ActionRestart) {
		if g.gameOver {
			g.Reset(g.cfg)
		} else {
			g.loadCurrentLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.state == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.solved {
		if input.Has(platformcore.ActionNext) || input.Has(platformcore.ActionConfirm) {
			g.index++
			g.loadCurrentLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if d, ok := direction(input); ok {
		if m := g.state.Request(d); m.Outcome != core.Busy {
			g.lastMove = m
		}
	}

	g.state.Advance(g.tickDur)
	g.levelTicks++

	var result *platformcore.LevelResult
	if g.state.Idle() && g.state.Solved() {
		g.solved = true
		g.score++
		lvl := g.pack.Levels[g.index]
		result = &platformcore.LevelResult{
			Pack:      g.pack.ID,
			Level:     lvl.Index,
			LevelName: lvl.Name,
			Moves:     g.state.Moves,
			Pushes:    g.state.Pushes,
			Duration:  time.Duration(g.levelTicks) * g.tickDur,
		}
		if g.index == len(g.pack.Levels)-1 {
			g.won = true
			g.gameOver = true
		}
	}

	return platformcore.StepResult{State: g.State(), Solved: result}
}

// direction picks the movement request for this tick. Only one direction
// is honored per tick.
func direction(input platformcore.InputFrame) (core.Dir, bool) {
	switch {
	case input.Has(platformcore.ActionUp):
		return core.Up, true
	case input.Has(platformcore.ActionDown):
		return core.Down, true
	case input.Has(platformcore.ActionLeft):
		return core.Left, true
	case input.Has(platformcore.ActionRight):
		return core.Right, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Level returns the level currently being played.
func (g *Game) Level() (levels.Level, bool) {
	if g.index < 0 || g.index >= len(g.pack.Levels) {
		return levels.Level{}, false
	}
	return g.pack.Levels[g.index], true
}

// Snapshot returns the current simulation snapshot, if a level is loaded.
func (g *Game) Snapshot() (core.Snapshot, bool) {
	if g.state == nil {
		return core.Snapshot{}, false
	}
	return g.state.Snapshot(), true
}

// Solved reports whether the current level is solved and waiting for Next.
func (g *Game) Solved() bool {
	return g.solved
}

// Won reports whether every level of the run has been solved.
func (g *Game) Won() bool {
	return g.won
}

// Err returns the error that stopped the run, if any.
func (g *Game) Err() error {
	return g.loadErr
}
