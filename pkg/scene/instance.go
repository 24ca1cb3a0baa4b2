// Package scene implements the named, class-tagged instance hierarchy that
// scenepath navigates. Instances form a tree; children are resolved by name,
// optionally blocking until a child with that name is added. Class tags
// support subtype queries through a ClassRegistry.
package scene

import (
	"context"
	"fmt"
	"sync"

	"github.com/oakwood-commons/scenepath/pkg/path"
)

// Instance is a single node in a scene hierarchy. Instances are safe for
// concurrent use: readers and child additions may run from independent
// goroutines.
type Instance struct {
	name      string
	className string
	registry  *ClassRegistry

	mu         sync.RWMutex
	parent     *Instance
	children   []*Instance
	properties map[string]any
	// changed is closed and replaced whenever the child list mutates;
	// WaitForChild blocks on the current channel between lookups.
	changed chan struct{}
}

// New creates a detached instance with the given class tag and name, bound
// to the default class registry.
func New(className, name string) *Instance {
	return NewWithRegistry(className, name, defaultRegistry)
}

// NewWithRegistry creates a detached instance bound to an explicit registry.
func NewWithRegistry(className, name string, reg *ClassRegistry) *Instance {
	if reg == nil {
		reg = defaultRegistry
	}
	return &Instance{
		name:      name,
		className: className,
		registry:  reg,
		changed:   make(chan struct{}),
	}
}

// Name returns the instance name used for child resolution.
func (in *Instance) Name() string { return in.name }

// ClassName returns the instance's class tag.
func (in *Instance) ClassName() string { return in.className }

// Parent returns the current parent, or nil for a root or detached instance.
func (in *Instance) Parent() *Instance {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.parent
}

// Children returns a snapshot of the direct children in insertion order.
func (in *Instance) Children() []*Instance {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make([]*Instance, len(in.children))
	copy(out, in.children)
	return out
}

// AddChild attaches child under in. A child can only have one parent; attach
// fails if it is already parented elsewhere. Any goroutine blocked in
// WaitForChild on this instance is woken.
func (in *Instance) AddChild(child *Instance) error {
	if child == nil {
		return fmt.Errorf("cannot add nil child to %q", in.name)
	}
	if child == in {
		return fmt.Errorf("cannot add %q as a child of itself", in.name)
	}
	child.mu.Lock()
	if child.parent != nil {
		current := child.parent.name
		child.mu.Unlock()
		return fmt.Errorf("instance %q already has parent %q", child.name, current)
	}
	child.parent = in
	child.mu.Unlock()

	in.mu.Lock()
	in.children = append(in.children, child)
	close(in.changed)
	in.changed = make(chan struct{})
	in.mu.Unlock()
	return nil
}

// Remove detaches in from its parent. Detaching a root is a no-op.
func (in *Instance) Remove() {
	in.mu.Lock()
	parent := in.parent
	in.parent = nil
	in.mu.Unlock()
	if parent == nil {
		return
	}
	parent.mu.Lock()
	for i, c := range parent.children {
		if c == in {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	close(parent.changed)
	parent.changed = make(chan struct{})
	parent.mu.Unlock()
}

// FindFirstChild returns the first direct child with the given name, or nil.
// It never blocks.
func (in *Instance) FindFirstChild(name string) *Instance {
	in.mu.RLock()
	defer in.mu.RUnlock()
	for _, c := range in.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// WaitForChild returns the first direct child with the given name, blocking
// until such a child is added or ctx is done. The deadline is entirely the
// caller's: pass a context with a timeout for bounded waiting.
func (in *Instance) WaitForChild(ctx context.Context, name string) (*Instance, error) {
	for {
		in.mu.RLock()
		for _, c := range in.children {
			if c.name == name {
				in.mu.RUnlock()
				return c, nil
			}
		}
		changed := in.changed
		in.mu.RUnlock()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for child %q of %q: %w", name, in.name, ctx.Err())
		case <-changed:
		}
	}
}

// IsA reports whether the instance's class is the given class or a subclass
// of it, per the instance's registry.
func (in *Instance) IsA(className string) bool {
	return in.registry.IsA(in.className, className)
}

// Descendants returns every instance below in, depth-first preorder. The
// receiver itself is not included.
func (in *Instance) Descendants() []*Instance {
	var out []*Instance
	for _, c := range in.Children() {
		out = append(out, c)
		out = append(out, c.Descendants()...)
	}
	return out
}

// FindFirstDescendantOfClass scans the descendants of in depth-first and
// returns the first whose class is className or a subclass of it. The
// receiver itself is never considered, even when its own class matches.
// Returns nil when no descendant matches.
func (in *Instance) FindFirstDescendantOfClass(className string) *Instance {
	for _, c := range in.Children() {
		if c.IsA(className) {
			return c
		}
		if found := c.FindFirstDescendantOfClass(className); found != nil {
			return found
		}
	}
	return nil
}

// FullPath returns the dotted path from the top of the hierarchy down to in,
// including the root's name.
func (in *Instance) FullPath() path.Path {
	if parent := in.Parent(); parent != nil {
		return parent.FullPath().Append(in.name)
	}
	return path.Path{in.name}
}

// Property returns a named property value.
func (in *Instance) Property(name string) (any, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	v, ok := in.properties[name]
	return v, ok
}

// SetProperty stores a named property value on the instance.
func (in *Instance) SetProperty(name string, value any) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.properties == nil {
		in.properties = map[string]any{}
	}
	in.properties[name] = value
}

// Properties returns a snapshot of the instance's property map.
func (in *Instance) Properties() map[string]any {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make(map[string]any, len(in.properties))
	for k, v := range in.properties {
		out[k] = v
	}
	return out
}
