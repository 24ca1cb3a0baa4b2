// Package path provides the dotted path representation used to address
// nodes in a scene hierarchy or a nested key-value document.
//
// A path is an ordered list of segment names. The string form joins the
// segments with '.', so "Workspace.Model.Part" names the node reached by
// resolving "Workspace", then "Model", then "Part" from some root. There is
// no escaping: segment names must not contain the delimiter.
package path

import "strings"

// Delimiter separates segments in the string form of a path.
const Delimiter = "."

// Path is an ordered sequence of segment names. A nil or empty Path is the
// empty path, which navigates to the root itself. Paths are values; none of
// the methods mutate the receiver.
type Path []string

// Parse splits a dotted path string into its segments. Runs of delimiters,
// as well as leading and trailing delimiters, produce no segments, so
// "A..B" and ".A.B." both parse to ["A" "B"]. Segments are not trimmed of
// whitespace. The empty string parses to the empty path.
func Parse(s string) Path {
	if s == "" {
		return nil
	}
	var p Path
	for _, seg := range strings.Split(s, Delimiter) {
		if seg == "" {
			continue
		}
		p = append(p, seg)
	}
	return p
}

// String joins all segments with the delimiter in order. The empty path
// renders as "". No leading or trailing delimiter is produced.
func (p Path) String() string {
	return strings.Join(p, Delimiter)
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Append returns a new path with seg added at the end. The receiver is not
// modified and does not share backing storage with the result.
func (p Path) Append(seg string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Parent returns the path without its final segment. The empty path is its
// own parent.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}
