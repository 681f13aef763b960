package unit

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Unit{}
)

// Register adds a rule factory under its rule-type name. Registering the
// same name twice panics, since it means two rule definitions collided at
// init time.
func Register(name string, factory func() Unit) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("unit: rule type %q registered twice", name))
	}
	registry[name] = factory
}

// Create instantiates the rule registered under name.
func Create(name string) (Unit, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown rule type: %s", name)
	}
	return factory(), nil
}

// Names returns the registered rule-type names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
