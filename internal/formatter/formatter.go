// Package formatter renders navigation results: compact scalar stringify,
// tree output for documents and scene hierarchies, and yaml/json/toml
// encodings of arbitrary nodes.
package formatter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	classStyle = lipgloss.NewStyle().Faint(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Stringify returns a compact single-line string representation for an
// arbitrary node. Maps and slices are rendered as compact JSON so nested
// values stay readable in one line.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return escapeScalarString(t)
	case bool, int, int64, float64:
		return fmt.Sprint(t)
	case map[string]any, []any:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	default:
		// Reflection covers typed maps, slices, and structs handed in by
		// embedding users, which would otherwise print as "map[key:value]".
		rv := reflect.ValueOf(v)
		switch rv.Kind() { //nolint:exhaustive // only complex types need JSON marshaling
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		case reflect.Ptr:
			if !rv.IsNil() {
				elem := rv.Elem()
				if elem.Kind() == reflect.Struct || elem.Kind() == reflect.Map || elem.Kind() == reflect.Slice {
					if b, err := json.Marshal(v); err == nil {
						return string(b)
					}
				}
			}
		}
		return fmt.Sprintf("%v", v)
	}
}

// escapeScalarString flattens control characters so rendered rows stay
// single-line.
func escapeScalarString(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "\\n")
}

// InstanceLabel renders "Name (ClassName)" for tree and explorer rows,
// styled unless noColor is set.
func InstanceLabel(name, className string, noColor bool) string {
	if noColor {
		return fmt.Sprintf("%s (%s)", name, className)
	}
	return keyStyle.Render(name) + " " + classStyle.Render("("+className+")")
}
