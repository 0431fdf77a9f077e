// Package theme provides a registry of tile color schemes.
// Schemes register themselves in init(), allowing the platform to list and
// select them by name without hardcoded dependencies.
package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Default is the name of the scheme used when none is selected.
const Default = "original"

// palette holds 16 background/foreground pairs of 256-color indices,
// one pair per rank; ranks above 15 wrap around.
type palette [16][2]uint8

// Theme is a named tile color scheme.
type Theme struct {
	Name        string
	Description string
	colors      palette
}

// Tile returns the colors for a tile of the given rank (0 = empty cell).
func (t Theme) Tile(rank uint8) core.Style {
	pair := t.colors[rank%16]
	return core.NewStyle(pair[1], pair[0])
}

// Info contains metadata about a registered theme.
type Info struct {
	Name        string
	Description string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Panics if a theme with the same name is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.Name]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.Name))
	}
	themes[t.Name] = t
}

// List returns information about all registered themes, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(themes))
	for _, t := range themes {
		result = append(result, Info{Name: t.Name, Description: t.Description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns the sorted names of all registered themes.
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Get looks up a theme by name.
// Returns an error if the name is not registered.
func Get(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", name)
	}
	return t, nil
}

// MustGet is like Get but falls back to the default theme for unknown names.
func MustGet(name string) Theme {
	if t, err := Get(name); err == nil {
		return t
	}
	t, err := Get(Default)
	if err != nil {
		panic(err)
	}
	return t
}

// Exists checks if a theme with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[name]
	return ok
}

// Next returns the name of the theme after name in sorted order, wrapping
// around. Used by menus that cycle through schemes.
func Next(name string) string {
	names := Names()
	if len(names) == 0 {
		return name
	}
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
