// Package registry provides a global registry of playable packs.
// Each registered ID maps to a factory that starts a fresh game for that
// pack, allowing the platform to discover and instantiate games without
// hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the identifier the game stores records under (the pack ID).
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Up, Restart, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// LevelPicker is implemented by games that let the player choose where a
// run starts. Levels are numbered from 1.
type LevelPicker interface {
	LevelCount() int
	LevelTitles() []string
	SelectLevel(n int) error
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing progress. Other games are Reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// Controller is implemented by games that describe their key bindings.
type Controller interface {
	Controls() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Levels int // 0 when the game is not a LevelPicker
}

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	counts    = make(map[string]int)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Called once per pack after the packs are loaded.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
	if p, ok := g.(LevelPicker); ok {
		counts[id] = p.LevelCount()
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:     id,
			Title:  titles[id],
			Levels: counts[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// CreateAt instantiates a game and selects the 1-based start level.
// Level 0 keeps the game's default start.
func CreateAt(id string, level int) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if level == 0 {
		return g, nil
	}
	p, ok := g.(LevelPicker)
	if !ok {
		return nil, fmt.Errorf("registry: game %q has no level selection", id)
	}
	if err := p.SelectLevel(level); err != nil {
		return nil, err
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Clear removes every registration. Used when packs are reloaded.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	factories = make(map[string]Factory)
	titles = make(map[string]string)
	counts = make(map[string]int)
}
