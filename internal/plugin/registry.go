package plugin

import "sync"

// Registry is an ordered collection of descriptors keyed by name.
// Registration order is preserved; registering an existing name replaces the
// descriptor in place. All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Descriptor)}
}

// defaultRegistry is the process-wide registry editors use unless an
// explicit one is injected.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds d, replacing in place if a descriptor with the same name is
// already present.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.byKey[d.Name] = d
}

// Unregister removes the descriptor with the given name, if present.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[name]; !exists {
		return
	}
	delete(r.byKey, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// UnregisterAll clears the registry.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.byKey = make(map[string]Descriptor)
}

// Get returns the descriptor with the given name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byKey[name]
	return d, ok
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Snapshot returns the descriptors in registration order. The slice is a
// copy; concurrent registration does not mutate it.
func (r *Registry) Snapshot() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byKey[name])
	}
	return out
}

// Resolve returns the descriptors for an instance. A nil names list means
// the full registry in registration order. An explicit list is expanded
// through the legacy group aliases, then resolved name by name; unknown
// names are skipped silently.
func (r *Registry) Resolve(names []string) []Descriptor {
	if names == nil {
		return r.Snapshot()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(names))
	for _, name := range ExpandAliases(names) {
		if d, ok := r.byKey[name]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Partition splits descriptors into left- and right-aligned groups,
// preserving order within each.
func Partition(descs []Descriptor) (left, right []Descriptor) {
	for _, d := range descs {
		if d.Align == AlignRight {
			right = append(right, d)
		} else {
			left = append(left, d)
		}
	}
	return left, right
}
