package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Command // every spelling, primary name and aliases
	primary []string           // primary names only, for listings
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds a command under its name and all of its aliases.
// Returns an error on any duplicate spelling.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spellings := append([]string{c.Name()}, c.Aliases()...)
	for _, s := range spellings {
		if _, taken := r.byName[s]; taken {
			return fmt.Errorf("command already registered: %s", s)
		}
	}
	for _, s := range spellings {
		r.byName[s] = c
	}
	r.primary = append(r.primary, c.Name())
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns the registered commands sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.primary))
	copy(names, r.primary)
	sort.Strings(names)

	cmds := make([]Command, len(names))
	for i, name := range names {
		cmds[i] = r.byName[name]
	}
	return cmds
}

// DefaultRegistry is the registry the command packages register into at init.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry, panicking on duplicates.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
