package navbar

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// OutputFormat selects how the menu is serialized.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat accepts "json" (default when empty) and "yaml".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "json":
		return OutputJSON, nil
	case "yaml", "yml":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected json or yaml)", s)
	}
}

// DropdownItem is the navbar item hosting the versions menu.
type DropdownItem struct {
	Type     string  `json:"type" yaml:"type"`
	Label    string  `json:"label" yaml:"label"`
	Position string  `json:"position" yaml:"position"`
	Items    []Entry `json:"items" yaml:"items"`
}

// Dropdown wraps entries in a right-aligned dropdown labeled after the first entry.
func Dropdown(entries []Entry) DropdownItem {
	label := LatestLabel
	if len(entries) > 0 {
		label = entries[0].Label
	}
	return DropdownItem{Type: "dropdown", Label: label, Position: "right", Items: entries}
}

// Render serializes v (entries or a dropdown) in the requested format.
func Render(v any, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode menu: %w", err)
		}
		return buf.Bytes(), nil
	case OutputYAML:
		out, err := yaml.MarshalWithOptions(v, yaml.IndentSequence(true))
		if err != nil {
			return nil, fmt.Errorf("failed to encode menu: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
