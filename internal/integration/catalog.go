package integration

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned by Catalog.Resolve for names that were never registered.
var ErrNotFound = errors.New("integration not found")

// Factory builds a descriptor from user-supplied options. options is never nil.
type Factory func(options map[string]any) (Descriptor, error)

// Catalog maps integration names to factories so configuration files can activate
// integrations by name. It is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewCatalog creates a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name.
// Returns an error if the name is empty, the factory is nil, or the name is taken.
func (c *Catalog) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("integration name is required")
	}
	if factory == nil {
		return fmt.Errorf("cannot register nil factory for integration %s", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.factories[name]; exists {
		return fmt.Errorf("integration %s already registered", name)
	}
	c.factories[name] = factory
	return nil
}

// MustRegister is Register for static catalogs; it panics on error.
func (c *Catalog) MustRegister(name string, factory Factory) {
	if err := c.Register(name, factory); err != nil {
		panic(err)
	}
}

// Resolve builds the integration registered under name with options.
func (c *Catalog) Resolve(name string, options map[string]any) (Descriptor, error) {
	c.mu.RLock()
	factory, ok := c.factories[name]
	c.mu.RUnlock()

	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if options == nil {
		options = map[string]any{}
	}
	return factory(options)
}

// Has checks if an integration with the given name is registered.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.factories[name]
	return ok
}

// Names returns the registered names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered integrations.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.factories)
}
