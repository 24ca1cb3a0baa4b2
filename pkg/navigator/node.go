// Package navigator resolves dotted paths against navigable trees: scene
// instance hierarchies and nested key-value documents. The two node shapes
// are unified behind the Node interface so that Navigate itself is a plain
// left-to-right fold with no runtime shape dispatch.
package navigator

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/oakwood-commons/scenepath/pkg/scene"
)

// Node is one resolvable position in a navigable tree. ResolveChild returns
// the child named by one path segment; hierarchy-backed nodes may block in
// ResolveChild until the child appears or ctx is done, mapping-backed nodes
// never block. Value returns the underlying value at this position.
type Node interface {
	ResolveChild(ctx context.Context, name string) (Node, error)
	Value() any
}

// Wrap adapts an arbitrary root into a Node. Scene instances become
// hierarchy nodes whose resolution waits for missing children; everything
// else becomes a mapping node resolved by key or index lookup. Values that
// already implement Node are returned as-is, so custom hierarchies can plug
// in directly.
func Wrap(root any) Node {
	switch v := root.(type) {
	case Node:
		return v
	case *scene.Instance:
		return HierarchyNode(v)
	default:
		return MappingNode(root)
	}
}

// HierarchyNode wraps a scene instance. Child resolution defers to
// WaitForChild, so it suspends until the named child exists or the caller's
// context is done.
func HierarchyNode(in *scene.Instance) Node {
	return hierarchyNode{in}
}

type hierarchyNode struct {
	in *scene.Instance
}

func (n hierarchyNode) ResolveChild(ctx context.Context, name string) (Node, error) {
	child, err := n.in.WaitForChild(ctx, name)
	if err != nil {
		return nil, err
	}
	return hierarchyNode{child}, nil
}

func (n hierarchyNode) Value() any { return n.in }

// MappingNode wraps a plain value: maps, slices, and structs resolve
// children by key, index, or field; scalars resolve nothing. Resolution
// never blocks.
func MappingNode(v any) Node {
	return mappingNode{v}
}

type mappingNode struct {
	v any
}

func (n mappingNode) ResolveChild(_ context.Context, name string) (Node, error) {
	child, err := lookup(n.v, name)
	if err != nil {
		return nil, err
	}
	return mappingNode{child}, nil
}

func (n mappingNode) Value() any { return n.v }

// lookup resolves one segment against a mapping-shaped value. Typed maps,
// slices, and structs are handled through reflection; struct fields match by
// json tag first, then field name.
func lookup(cur any, segment string) (any, error) {
	switch t := cur.(type) {
	case map[string]any:
		v, ok := t[segment]
		if !ok {
			return nil, fmt.Errorf("key %q not found", segment)
		}
		return v, nil
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("expected numeric index into array but got %q", segment)
		}
		if idx < 0 || idx >= len(t) {
			return nil, fmt.Errorf("index %d out of range", idx)
		}
		return t[idx], nil
	default:
		rv := reflect.ValueOf(cur)
		if !rv.IsValid() {
			return nil, fmt.Errorf("cannot descend into %T at %q", cur, segment)
		}
		for rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				return nil, fmt.Errorf("cannot descend into %T at %q", cur, segment)
			}
			rv = rv.Elem()
		}

		switch rv.Kind() { //nolint:exhaustive // only container kinds are navigable
		case reflect.Map:
			if rv.Type().Key().Kind() != reflect.String {
				return nil, fmt.Errorf("cannot descend into %T at %q", cur, segment)
			}
			mapKey := reflect.ValueOf(segment).Convert(rv.Type().Key())
			value := rv.MapIndex(mapKey)
			if !value.IsValid() {
				return nil, fmt.Errorf("key %q not found", segment)
			}
			return value.Interface(), nil
		case reflect.Slice, reflect.Array:
			idx, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("expected numeric index into array but got %q", segment)
			}
			if idx < 0 || idx >= rv.Len() {
				return nil, fmt.Errorf("index %d out of range", idx)
			}
			return rv.Index(idx).Interface(), nil
		case reflect.Struct:
			if field, ok := structFieldValue(rv, segment); ok {
				return field, nil
			}
			return nil, fmt.Errorf("key %q not found", segment)
		default:
			return nil, fmt.Errorf("cannot descend into %T at %q", cur, segment)
		}
	}
}

func structFieldValue(rv reflect.Value, key string) (any, bool) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("json")
		tagName := strings.Split(tag, ",")[0]
		if tagName == "-" {
			continue
		}
		if tagName == key || field.Name == key {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
