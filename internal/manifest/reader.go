package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/docvars/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// Reader reads versions from manifests on a FileSystem.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read loads the manifest described by src and extracts its version.
// Format and Field defaults are applied before reading.
func (r *Reader) Read(ctx context.Context, src Source) (*Result, error) {
	if src.Path == "" {
		return nil, fmt.Errorf("manifest path is required")
	}
	src = src.Resolved()
	if !src.Format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", src.Format)
	}

	data, err := r.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", src.Path, err)
	}

	version, err := Lookup(data, src.Format, src.Field)
	if err != nil {
		return nil, withPath(err, src.Path)
	}

	return &Result{Version: version, Source: src}, nil
}

// ReadVersion is a convenience method that returns just the version string.
func (r *Reader) ReadVersion(ctx context.Context, src Source) (string, error) {
	res, err := r.Read(ctx, src)
	if err != nil {
		return "", err
	}
	return res.Version, nil
}

// Lookup extracts the string at field from manifest data without touching the disk.
func Lookup(data []byte, format Format, field string) (string, error) {
	if format == FormatRaw {
		v := strings.TrimSpace(string(data))
		if v == "" {
			return "", fmt.Errorf("version file is empty")
		}
		return v, nil
	}
	if field == "" {
		return "", fmt.Errorf("field is required for %s format", strings.ToUpper(string(format)))
	}

	doc, err := decode(data, format)
	if err != nil {
		return "", err
	}

	value, err := nestedValue(doc, field)
	if err != nil {
		return "", err
	}

	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string (got %T)", field, value)
	}
	if strings.TrimSpace(version) == "" {
		return "", fmt.Errorf("field %q is empty", field)
	}
	return version, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return doc, nil
}

// nestedValue walks a dot-notation path such as "tool.poetry.version".
func nestedValue(doc map[string]any, field string) (any, error) {
	parts := strings.Split(field, ".")
	var current any = doc

	for i, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not a table at %q", strings.Join(parts[:i], "."), part)
		}
		value, exists := m[part]
		if !exists {
			return nil, &FieldNotFoundError{Field: field, Missing: strings.Join(parts[:i+1], ".")}
		}
		current = value
	}

	return current, nil
}

// withPath attaches the manifest path to errors produced by Lookup.
func withPath(err error, path string) error {
	switch e := err.(type) {
	case *FieldNotFoundError:
		e.Path = path
		return e
	case *ParseError:
		e.Path = path
		return e
	default:
		return fmt.Errorf("in manifest %q: %w", path, err)
	}
}
