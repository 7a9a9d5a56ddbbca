// Package registry holds the game factories known to the platform. Games
// register themselves from init(), so the CLI can list and start them without
// importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the contract between a game and the frame driver.
// Games hold pure logic; the platform owns input, timing and the terminal.
type Game interface {
	// ID returns the identifier used on the command line and in the score store.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new game. It is called once at start and again on
	// restart or when the terminal is resized.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame. Actions in the frame are applied
	// in order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current score and status flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics if id is empty or already taken.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
