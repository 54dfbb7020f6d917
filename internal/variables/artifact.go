// Package variables compiles the documentation variables file: a small JSON
// document whose "release" field carries the project version read from the
// build manifest.
package variables

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ReleaseKey is the artifact field holding the project version.
const ReleaseKey = "release"

// Indent matches the four-space indentation the docs site has always used.
const Indent = "    "

// DefaultOutput is where the site build expects the variables file.
const DefaultOutput = "./docs/variables.json"

// Artifact is the content of the variables file.
type Artifact struct {
	Release string
	// Extra holds additional string variables. Keys are emitted sorted, after release.
	Extra map[string]string
}

// Render serializes the artifact as pretty JSON with a trailing newline.
// The output depends only on the artifact, so repeated renders are byte-identical.
func Render(a Artifact) ([]byte, error) {
	if a.Release == "" {
		return nil, fmt.Errorf("release is required")
	}

	doc, err := sjson.SetBytes([]byte("{}"), ReleaseKey, a.Release)
	if err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", ReleaseKey, err)
	}

	keys := make([]string, 0, len(a.Extra))
	for k := range a.Extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("variable names cannot be empty")
		}
		if k == ReleaseKey {
			return nil, fmt.Errorf("variable %q is reserved for the manifest version", ReleaseKey)
		}
		doc, err = sjson.SetBytes(doc, escapeKey(k), a.Extra[k])
		if err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", k, err)
		}
	}

	return pretty.PrettyOptions(doc, &pretty.Options{Indent: Indent, Width: 80}), nil
}

// escapeKey makes k a literal sjson path component.
func escapeKey(k string) string {
	var sb strings.Builder
	for _, r := range k {
		if strings.ContainsRune(`\.*?|#@:!=<>%`, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
