// Package registry keeps the playable modes by ID.
// Modes register a factory from an init() function so the front ends
// (terminal, SSH, window, headless) can list and start them without
// importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// Game is what every front end drives. Implementations hold no platform
// state: input arrives as a core.InputFrame and output goes to a core.Screen.
type Game interface {
	// ID is the stable key used by the CLI and the score history
	// (e.g. "brickstorm", "brickstorm_boss").
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a fresh run with the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. The screen is cleared by the game.
	Render(dst *core.Screen)

	// State reports score, high score, pause and game over.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet reset, game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode. It panics on a duplicate or empty ID.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: empty id or nil factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// IDs returns the registered IDs in List order.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, g := range infos {
		ids[i] = g.ID
	}
	return ids
}
