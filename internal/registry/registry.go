// Package registry provides a global registry for level packs.
// Packs register themselves in init() functions, allowing the driver and
// front ends to discover campaigns without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/game"
)

// Pack is an ordered campaign of level plans.
// A plan is a slice of rows; each rune is one grid cell.
type Pack interface {
	// ID returns a unique identifier for this pack (e.g., "classic").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Plans returns the level plans in play order.
	Plans() [][]string

	// Symbols returns the actor legend used to parse the plans.
	Symbols() game.Symbols
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory is a function that returns a pack.
type Factory func() Pack

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Panics if a pack with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	factories[id] = f

	p := f()
	infos[id] = PackInfo{ID: id, Title: p.Title(), Levels: len(p.Plans())}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a pack by its ID.
func Create(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	return f(), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a pack. Only tests use it.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(infos, id)
}
