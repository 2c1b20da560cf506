// Package registry provides a global registry for session mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate sessions without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/oliban/lander-game-sub002/internal/config"
	"github.com/oliban/lander-game-sub002/internal/perf"
	"github.com/oliban/lander-game-sub002/internal/sim"
)

// ModeInfo contains metadata about a registered session mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new session for a mode.
// The platform supplies the tuning config, the shared performance governor
// and its presentation collaborators.
type Factory func(cfg config.GameConfig, gov *perf.Governor, collab sim.Collaborators) *sim.Session

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if a mode with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new session for the given mode ID.
// Returns an error if the mode is not registered.
func Create(id string, cfg config.GameConfig, gov *perf.Governor, collab sim.Collaborators) (*sim.Session, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(cfg, gov, collab), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
