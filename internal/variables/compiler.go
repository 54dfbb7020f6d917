package variables

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/manifest"
	"github.com/indaco/docvars/internal/semver"
	"github.com/tidwall/gjson"
)

// ErrStale is returned by Check when the file on disk differs from a fresh render.
var ErrStale = errors.New("variables file is out of date")

// Options configures a compile run.
type Options struct {
	Manifest manifest.Source
	Output   string
	Extra    map[string]string
	// Strict rejects releases that are not semantic versions.
	Strict bool
}

// Outcome reports what Compile did.
type Outcome struct {
	Release string
	Output  string
	// Changed is false when the output already had identical content.
	Changed bool
}

// Compiler reads the manifest and writes the variables file.
type Compiler struct {
	fs     core.FileSystem
	reader *manifest.Reader
}

// NewCompiler returns a Compiler backed by fs.
func NewCompiler(fs core.FileSystem) *Compiler {
	return &Compiler{fs: fs, reader: manifest.NewReader(fs)}
}

// Compile renders the artifact and overwrites the output with a single write.
// Nothing is written unless the manifest was read and the release validated.
func (c *Compiler) Compile(ctx context.Context, opts Options) (*Outcome, error) {
	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	release, rendered, err := c.render(ctx, opts)
	if err != nil {
		return nil, err
	}

	previous, err := c.fs.ReadFile(ctx, output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read existing %q: %w", output, err)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := c.fs.MkdirAll(ctx, dir, core.PermDir); err != nil {
			return nil, fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}

	if err := c.fs.WriteFile(ctx, output, rendered, core.PermPublicRead); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", output, err)
	}

	return &Outcome{
		Release: release,
		Output:  output,
		Changed: !bytes.Equal(previous, rendered),
	}, nil
}

// Check renders the artifact and compares it with the output on disk without writing.
// A missing or different file yields an error wrapping ErrStale.
func (c *Compiler) Check(ctx context.Context, opts Options) (*Outcome, error) {
	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	release, rendered, err := c.render(ctx, opts)
	if err != nil {
		return nil, err
	}

	current, err := c.fs.ReadFile(ctx, output)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrStale, output)
		}
		return nil, fmt.Errorf("failed to read %q: %w", output, err)
	}

	if !bytes.Equal(current, rendered) {
		onDisk := gjson.GetBytes(current, ReleaseKey)
		if onDisk.Exists() && onDisk.String() != release {
			return nil, fmt.Errorf("%w: %s has release %s, manifest has %s", ErrStale, output, onDisk.String(), release)
		}
		return nil, fmt.Errorf("%w: %s content differs", ErrStale, output)
	}

	return &Outcome{Release: release, Output: output}, nil
}

func (c *Compiler) render(ctx context.Context, opts Options) (string, []byte, error) {
	release, err := c.reader.ReadVersion(ctx, opts.Manifest)
	if err != nil {
		return "", nil, err
	}

	if opts.Strict {
		if _, err := semver.ParseVersion(release); err != nil {
			return "", nil, fmt.Errorf("release %q from %s: %w", release, opts.Manifest.Path, err)
		}
	}

	rendered, err := Render(Artifact{Release: release, Extra: opts.Extra})
	if err != nil {
		return "", nil, err
	}
	return release, rendered, nil
}
