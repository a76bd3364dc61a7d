package registry

import (
	"sort"
	"sync"

	"github.com/lpp-lab/coilcalc/strategy"
)

// Entry pairs a node's default Strategy Descriptor with any registered
// alternatives (e.g. a Diabolo mu_app variant alongside the standard one).
type Entry struct {
	Default      strategy.Descriptor
	Alternatives []strategy.Descriptor
}

// Registry maps node names to their Entry. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register installs def as the default descriptor for name, along with any
// alternatives. A second call for the same name replaces its Entry entirely.
func (r *Registry) Register(name string, def strategy.Descriptor, alternatives ...strategy.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = Entry{Default: def, Alternatives: alternatives}
}

// Names returns every registered node name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultFor returns the default descriptor registered for name, or
// ErrUnknown if name was never registered.
func (r *Registry) DefaultFor(name string) (strategy.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return nil, ErrUnknown
	}
	return entry.Default, nil
}

// AlternativesFor returns the alternative descriptors registered for name.
// An unknown name yields an empty (nil) slice rather than an error, since
// callers typically use this for optional, best-effort discovery.
func (r *Registry) AlternativesFor(name string) []strategy.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[name].Alternatives
}
