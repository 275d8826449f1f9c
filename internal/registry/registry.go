// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/star-quest/internal/core"
)

// Game is the interface every Star Quest engine implements.
// Engines contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, frame timing and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner", "orbit").
	// Used for CLI commands, star slots and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Neon Runner").
	Title() string

	// Reset initializes the engine and discards every pending deferred event.
	// The RuntimeConfig provides screen size, seed, star status and the
	// award and notification hooks.
	Reset(cfg core.RuntimeConfig)

	// Step consumes the frame's input, then advances the simulation by dt
	// seconds (already clamped by the platform clock).
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into dst. Layout is derived from the
	// dst dimensions on every call, so a resize takes effect immediately.
	Render(dst *core.Screen)

	// State returns the current score, best and round phase.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
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
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
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
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
