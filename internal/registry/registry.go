// Package registry provides a global registry for playable scenes.
// Scenes register themselves in init() functions, allowing the hosts
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/engine"
)

// Scene is a playable level built on top of an engine.Game.
// Scenes hold no host state: the platform creates the Game from Options,
// then calls Build once before starting it.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "maze").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Config returns the configuration the scene was loaded from.
	Config() config.Scene

	// Options returns the world size and tick rate the scene needs.
	// Host and Logger are left for the caller to fill in.
	Options() engine.Options

	// Build adds the scene's entities, callbacks and backgrounds to g.
	Build(g *engine.Game) error

	// Status returns a one-line summary of the scene's progress.
	Status() string
}

// Info contains metadata about a registered scene.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a scene. Factories may load files, so
// they are only called on demand.
type Factory func() (Scene, error)

// ErrUnknownScene is returned by Create for an unregistered ID.
var ErrUnknownScene = errors.New("registry: unknown scene")

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from an init() function.
// Panics if a scene with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered scenes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scene by its ID.
func Create(id string) (Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
	}

	s, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create scene %q: %w", id, err)
	}
	return s, nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
