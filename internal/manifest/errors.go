package manifest

import (
	"fmt"
	"strings"
)

// FieldNotFoundError is returned when the version field is absent from a manifest.
type FieldNotFoundError struct {
	Path  string
	Field string
	// Missing is the first path segment that did not resolve.
	Missing string
}

func (e *FieldNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("field %q not found", e.Field)
	}
	return fmt.Sprintf("field %q not found in %s", e.Field, e.Path)
}

// Suggestion returns a hint showing where the field is expected.
func (e *FieldNotFoundError) Suggestion() string {
	parts := strings.Split(e.Field, ".")
	if len(parts) < 2 {
		return fmt.Sprintf("Add a top-level %q key to %s, or pass --field.", e.Field, e.Path)
	}
	table := strings.Join(parts[:len(parts)-1], ".")
	return fmt.Sprintf("Expected a [%s] table with a %q key in %s, or pass --field.", table, parts[len(parts)-1], e.Path)
}

// ParseError wraps a syntax error in a manifest.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s manifest %s: %v", strings.ToUpper(string(e.Format)), e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
