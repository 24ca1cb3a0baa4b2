package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode renders a node in the named output format: yaml, json, toml, or
// raw (Stringify). Unknown formats are an error.
func Encode(node any, format string) (string, error) {
	switch format {
	case "yaml":
		return encodeYAML(node)
	case "json":
		b, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(b) + "\n", nil
	case "toml":
		b, err := toml.Marshal(node)
		if err != nil {
			return "", fmt.Errorf("encode toml: %w", err)
		}
		return string(b), nil
	case "raw":
		return Stringify(node) + "\n", nil
	default:
		return "", fmt.Errorf("unknown output format %q: valid values are tree, yaml, json, toml, raw", format)
	}
}

func encodeYAML(node any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return buf.String(), nil
}
