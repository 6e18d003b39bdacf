// Package plugin holds the host-capability plugins registered at startup
// (filesystem, dialogs, shell). Plugins are opaque to the registry: the
// daemon initializes them and lists their names, nothing more.
package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Plugin is a named host capability with a lifecycle.
type Plugin interface {
	// Name is the stable identifier the host UI addresses the plugin by.
	Name() string
	// Init prepares the plugin for use. Called once at startup.
	Init(ctx context.Context) error
	// Close releases plugin resources on shutdown.
	Close() error
}

// Set is a name-keyed collection of plugins.
type Set struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewSet constructs an empty plugin set.
func NewSet() *Set {
	return &Set{plugins: make(map[string]Plugin)}
}

// Register adds p to the set. Registering the same name twice is an error.
func (s *Set) Register(p Plugin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := p.Name()
	if _, ok := s.plugins[name]; ok {
		return fmt.Errorf("plugin already registered: %s", name)
	}
	s.plugins[name] = p
	return nil
}

// Get retrieves a plugin by name.
func (s *Set) Get(name string) (Plugin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plugins[name]
	return p, ok
}

// Names returns the registered plugin names, sorted.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.plugins))
	for name := range s.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InitAll initializes every registered plugin, stopping at the first failure.
func (s *Set) InitAll(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for name, p := range s.plugins {
		if err := p.Init(ctx); err != nil {
			return fmt.Errorf("init plugin %s: %w", name, err)
		}
	}
	return nil
}

// CloseAll closes every registered plugin, returning the first error seen.
func (s *Set) CloseAll() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var first error
	for _, p := range s.plugins {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
