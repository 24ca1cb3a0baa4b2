package formatter

import (
	"fmt"
	"sort"

	"github.com/xlab/treeprint"

	"github.com/oakwood-commons/scenepath/pkg/scene"
)

const (
	// defaultMaxArrayInline is the max number of array elements to show inline.
	defaultMaxArrayInline = 3
)

// TreeOptions controls tree output formatting.
type TreeOptions struct {
	// NoValues hides values at leaf nodes (structure only).
	NoValues bool
	// MaxDepth limits tree depth (0 = unlimited).
	MaxDepth int
	// MaxArrayInline is max items to show inline for scalar arrays (default 3).
	MaxArrayInline int
	// NoColor disables styled labels in scene trees.
	NoColor bool
}

// FormatAsTree renders a document node as an ASCII tree. Maps become
// branches with keys as labels, arrays show indexed children, and scalar
// values are displayed inline at leaves.
func FormatAsTree(node any, opts TreeOptions) string {
	if opts.MaxArrayInline == 0 {
		opts.MaxArrayInline = defaultMaxArrayInline
	}
	tree := treeprint.New()
	buildTree(tree, node, opts, 0)
	return tree.String()
}

// FormatSceneTree renders an instance hierarchy as an ASCII tree with
// "Name (ClassName)" labels.
func FormatSceneTree(root *scene.Instance, opts TreeOptions) string {
	tree := treeprint.NewWithRoot(InstanceLabel(root.Name(), root.ClassName(), opts.NoColor))
	buildSceneTree(tree, root, opts, 0)
	return tree.String()
}

func buildSceneTree(branch treeprint.Tree, in *scene.Instance, opts TreeOptions, depth int) {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		if len(in.Children()) > 0 {
			branch.AddNode("...")
		}
		return
	}
	for _, child := range in.Children() {
		label := InstanceLabel(child.Name(), child.ClassName(), opts.NoColor)
		if len(child.Children()) == 0 {
			branch.AddNode(label)
			continue
		}
		buildSceneTree(branch.AddBranch(label), child, opts, depth+1)
	}
}

func buildTree(branch treeprint.Tree, node any, opts TreeOptions, depth int) {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		branch.AddNode("...")
		return
	}

	switch v := node.(type) {
	case map[string]any:
		buildMapTree(branch, v, opts, depth)
	case []any:
		for i, elem := range v {
			addNodeForValue(branch, fmt.Sprintf("[%d]", i), elem, opts, depth)
		}
	default:
		branch.AddNode(formatScalarValue(v, opts))
	}
}

func buildMapTree(branch treeprint.Tree, m map[string]any, opts TreeOptions, depth int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		addNodeForValue(branch, key, m[key], opts, depth)
	}
}

func addNodeForValue(branch treeprint.Tree, key string, val any, opts TreeOptions, depth int) {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		branch.AddNode(key + ": ...")
		return
	}

	switch v := val.(type) {
	case map[string]any:
		if len(v) == 0 {
			branch.AddNode(keyValue(key, "{}", opts))
			return
		}
		buildMapTree(branch.AddBranch(key), v, opts, depth+1)

	case []any:
		switch {
		case len(v) == 0:
			branch.AddNode(keyValue(key, "[]", opts))
		case isScalarArray(v) && len(v) <= opts.MaxArrayInline:
			branch.AddNode(keyValue(key, formatInlineArray(v), opts))
		case isScalarArray(v):
			branch.AddNode(keyValue(key, fmt.Sprintf("[%d items]", len(v)), opts))
		default:
			child := branch.AddBranch(key)
			for i, elem := range v {
				addNodeForValue(child, fmt.Sprintf("[%d]", i), elem, opts, depth+1)
			}
		}

	default:
		branch.AddNode(keyValue(key, formatScalarValue(v, opts), opts))
	}
}

func keyValue(key, value string, opts TreeOptions) string {
	if opts.NoValues {
		return key
	}
	return key + ": " + value
}

func formatScalarValue(v any, _ TreeOptions) string {
	if v == nil {
		return "null"
	}
	return Stringify(v)
}

func formatInlineArray(arr []any) string {
	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = Stringify(v)
	}
	return "[" + joinComma(parts) + "]"
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

func isScalarArray(arr []any) bool {
	for _, v := range arr {
		switch v.(type) {
		case map[string]any, []any:
			return false
		}
	}
	return true
}
