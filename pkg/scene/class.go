package scene

import "sync"

// ClassRegistry records the single-inheritance relationships between class
// names so that IsA can answer subtype queries. A class with no registered
// superclass matches only itself.
type ClassRegistry struct {
	mu    sync.RWMutex
	super map[string]string
}

// NewClassRegistry returns an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{super: map[string]string{}}
}

// Register records super as the direct superclass of name. Re-registering a
// class overwrites its previous superclass.
func (r *ClassRegistry) Register(name, super string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.super[name] = super
}

// IsA reports whether class is target or inherits from it, walking the
// superclass chain. The walk is bounded by the registry size so that an
// accidentally cyclic registration cannot spin forever.
func (r *ClassRegistry) IsA(class, target string) bool {
	if class == target {
		return true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cur := class
	for range r.super {
		next, ok := r.super[cur]
		if !ok {
			return false
		}
		if next == target {
			return true
		}
		cur = next
	}
	return false
}

// defaultRegistry backs Instances created without an explicit registry.
var defaultRegistry = NewClassRegistry()

// DefaultRegistry returns the registry used by instances that were not given
// their own. Callers embedding scenepath can register their class tree here
// once at startup.
func DefaultRegistry() *ClassRegistry {
	return defaultRegistry
}
