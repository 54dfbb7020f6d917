// Package navbar builds the versioned navigation menu of the docs site from
// the list of published documentation versions.
package navbar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/indaco/docvars/internal/core"
)

// DefaultVersionsFile is the version list the docs framework maintains.
const DefaultVersionsFile = "versions.json"

// LatestLabel labels the only entry when no version has been published.
const LatestLabel = "Latest"

// ErrVersionListNotFound reports that the version list file does not exist.
var ErrVersionListNotFound = errors.New("version list not found")

// Entry is one item of the versions menu.
type Entry struct {
	Label string `json:"label" yaml:"label"`
	// To is the link target.
	To string `json:"to" yaml:"to"`
	// ActiveBaseRegex marks the entry active when the current path matches.
	ActiveBaseRegex string `json:"activeBaseRegex" yaml:"activeBaseRegex"`
}

// Build returns one entry per version followed by the legacy entries.
// The first version is the current one and links to the site root; older
// versions link to a sub-path named after the label. With no versions a
// single "Latest" entry stands in for the unversioned docs.
func Build(versions []string, legacy []Entry) []Entry {
	entries := make([]Entry, 0, max(len(versions), 1)+len(legacy))

	if len(versions) == 0 {
		entries = append(entries, Entry{Label: LatestLabel, To: "/", ActiveBaseRegex: "/"})
	}
	for i, v := range versions {
		to := v + "/"
		if i == 0 {
			to = "/"
		}
		entries = append(entries, Entry{Label: v, To: to, ActiveBaseRegex: v})
	}

	return append(entries, legacy...)
}

// ParseVersionList decodes a JSON array of version labels.
func ParseVersionList(data []byte) ([]string, error) {
	var versions []string
	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, fmt.Errorf("version list must be a JSON array of strings: %w", err)
	}
	for i, v := range versions {
		if v == "" {
			return nil, fmt.Errorf("version list entry %d is empty", i)
		}
	}
	return versions, nil
}

// LoadVersionList reads and parses the version list at path.
// A missing file yields an error matching ErrVersionListNotFound.
func LoadVersionList(ctx context.Context, fsys core.FileSystem, path string) ([]string, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVersionListNotFound, path)
		}
		return nil, fmt.Errorf("failed to read version list %q: %w", path, err)
	}

	versions, err := ParseVersionList(data)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return versions, nil
}

// ReadVersionList is LoadVersionList with a missing file mapped to an empty
// list. found is false in that case; every other failure is returned.
func ReadVersionList(ctx context.Context, fsys core.FileSystem, path string) (versions []string, found bool, err error) {
	versions, err = LoadVersionList(ctx, fsys, path)
	if errors.Is(err, ErrVersionListNotFound) {
		return []string{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return versions, true, nil
}
