package navigator

import (
	"context"

	"github.com/oakwood-commons/scenepath/pkg/path"
	"github.com/oakwood-commons/scenepath/pkg/scene"
)

// Navigate consumes the path's segments left to right from root and returns
// the value reached. The empty path returns root's value unchanged. A
// segment that cannot be resolved yields a NotFoundError naming it;
// hierarchy-backed roots may block per segment until the child appears or
// ctx is done.
func Navigate(ctx context.Context, root Node, p path.Path) (any, error) {
	cur := root
	for i, segment := range p {
		next, err := cur.ResolveChild(ctx, segment)
		if err != nil {
			return nil, &NotFoundError{Segment: segment, Path: p[:i+1], Cause: err}
		}
		cur = next
	}
	return cur.Value(), nil
}

// NavigateString parses a dotted path string and navigates it.
func NavigateString(ctx context.Context, root Node, s string) (any, error) {
	return Navigate(ctx, root, path.Parse(s))
}

// Resolve is the convenience entry point for raw roots: it wraps root (scene
// instances become suspending hierarchy nodes, anything else a mapping node)
// and navigates the dotted path string.
func Resolve(ctx context.Context, root any, s string) (any, error) {
	return NavigateString(ctx, Wrap(root), s)
}

// FindFirstDescendantOfClass scans the descendants of root depth-first and
// returns the first instance whose class is className or a subclass of it.
// root itself is never returned. The second result reports whether a match
// was found.
func FindFirstDescendantOfClass(root *scene.Instance, className string) (*scene.Instance, bool) {
	found := root.FindFirstDescendantOfClass(className)
	return found, found != nil
}
