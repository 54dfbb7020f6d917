package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents the supported manifest formats.
type Format string

const (
	// FormatTOML is for TOML manifests (pyproject.toml, Cargo.toml).
	FormatTOML Format = "toml"

	// FormatJSON is for JSON manifests (package.json, composer.json).
	FormatJSON Format = "json"

	// FormatYAML is for YAML manifests (Chart.yaml, pubspec.yaml).
	FormatYAML Format = "yaml"

	// FormatRaw is for plain text files whose whole content is the version.
	FormatRaw Format = "raw"
)

// DefaultField is the version field of a Poetry managed pyproject.toml.
const DefaultField = "tool.poetry.version"

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTOML, FormatJSON, FormatYAML, FormatRaw:
		return true
	default:
		return false
	}
}

// Structured reports whether the format needs a field path.
func (f Format) Structured() bool {
	return f != FormatRaw
}

// ParseFormat converts a string to a Format. An empty string yields "" so the
// caller can fall back to detection; unknown names are an error.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return "", nil
	}
	f := Format(strings.ToLower(s))
	if !f.IsValid() {
		return "", fmt.Errorf("unknown manifest format %q (expected toml, json, yaml or raw)", s)
	}
	return f, nil
}

// DetectFormat infers the format from the manifest file name.
func DetectFormat(path string) Format {
	base := strings.ToLower(filepath.Base(path))
	switch filepath.Ext(base) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatRaw
	}
}

// DefaultFieldFor returns the conventional version field for a manifest.
// TOML files other than Cargo.toml are assumed to be Poetry pyproject files.
func DefaultFieldFor(path string) string {
	base := filepath.Base(path)
	switch {
	case base == "Cargo.toml":
		return "package.version"
	case DetectFormat(base) == FormatTOML:
		return DefaultField
	default:
		return "version"
	}
}

// Source describes where and how to read a version.
type Source struct {
	// Path is the manifest path (absolute or relative to the working directory).
	Path string

	// Format is the manifest format. Detected from Path when empty.
	Format Format

	// Field is the dot-notation path to the version. Defaults per file name when empty.
	Field string
}

// Resolved fills Format and Field defaults.
func (s Source) Resolved() Source {
	if s.Format == "" {
		s.Format = DetectFormat(s.Path)
	}
	if s.Field == "" && s.Format.Structured() {
		s.Field = DefaultFieldFor(s.Path)
	}
	return s
}

// Result is a version read from a manifest.
type Result struct {
	Version string
	Source  Source
}
