package scene

import "fmt"

// DefaultClassName is assigned to decoded nodes that carry no class tag.
const DefaultClassName = "Instance"

// Decode builds an instance tree from a loaded document (the map/slice
// structures produced by pkg/loader). Each node is a mapping with a "name"
// key and optional "class", "properties", and "children" keys:
//
//	name: Workspace
//	class: Model
//	children:
//	  - name: Part1
//	    class: Part
//
// Decoded instances are bound to the default class registry; use
// DecodeWithRegistry to bind another.
func Decode(doc any) (*Instance, error) {
	return DecodeWithRegistry(doc, defaultRegistry)
}

// DecodeWithRegistry is Decode with an explicit class registry.
func DecodeWithRegistry(doc any, reg *ClassRegistry) (*Instance, error) {
	return decodeNode(doc, reg, "")
}

func decodeNode(doc any, reg *ClassRegistry, at string) (*Instance, error) {
	node, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("scene node at %q: expected mapping, got %T", orRoot(at), doc)
	}

	name, ok := node["name"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("scene node at %q: missing or non-string 'name'", orRoot(at))
	}

	className := DefaultClassName
	if c, present := node["class"]; present {
		s, ok := c.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("scene node %q: non-string 'class' (%T)", name, c)
		}
		className = s
	}

	in := NewWithRegistry(className, name, reg)

	if props, present := node["properties"]; present {
		m, ok := props.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("scene node %q: 'properties' must be a mapping, got %T", name, props)
		}
		for k, v := range m {
			in.SetProperty(k, v)
		}
	}

	if children, present := node["children"]; present {
		list, ok := children.([]any)
		if !ok {
			return nil, fmt.Errorf("scene node %q: 'children' must be a sequence, got %T", name, children)
		}
		for i, c := range list {
			child, err := decodeNode(c, reg, fmt.Sprintf("%s.children[%d]", name, i))
			if err != nil {
				return nil, err
			}
			if err := in.AddChild(child); err != nil {
				return nil, err
			}
		}
	}

	return in, nil
}

// Encode converts an instance tree back into its document form, the inverse
// of Decode. Properties and children keys are omitted when empty.
func Encode(in *Instance) map[string]any {
	node := map[string]any{
		"name":  in.Name(),
		"class": in.ClassName(),
	}
	if props := in.Properties(); len(props) > 0 {
		node["properties"] = props
	}
	children := in.Children()
	if len(children) > 0 {
		list := make([]any, len(children))
		for i, c := range children {
			list[i] = Encode(c)
		}
		node["children"] = list
	}
	return node
}

// IsSceneDocument reports whether a loaded document looks like a scene node
// (a mapping with a string "name"). Used by the CLI to decide whether a file
// can be decoded as a hierarchy.
func IsSceneDocument(doc any) bool {
	node, ok := doc.(map[string]any)
	if !ok {
		return false
	}
	name, ok := node["name"].(string)
	return ok && name != ""
}

func orRoot(at string) string {
	if at == "" {
		return "(root)"
	}
	return at
}
