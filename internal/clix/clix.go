// Package clix holds helpers shared by the docvars subcommands.
package clix

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/indaco/docvars/internal/core"
	"github.com/urfave/cli/v3"
)

// StdoutPath selects standard output as the destination.
const StdoutPath = "-"

// NewFileSystemFn is swapped in tests to run commands against a mock.
var NewFileSystemFn = func() core.FileSystem { return core.NewOSFileSystem() }

// StringOr returns the flag value when the user set it, otherwise fallback.
func StringOr(cmd *cli.Command, name, fallback string) string {
	if cmd.IsSet(name) {
		return cmd.String(name)
	}
	return fallback
}

// BoolOr returns the flag value when the user set it, otherwise fallback.
func BoolOr(cmd *cli.Command, name string, fallback bool) bool {
	if cmd.IsSet(name) {
		return cmd.Bool(name)
	}
	return fallback
}

// Writer returns the writer data output goes to when no file is given.
func Writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// IsStdout reports whether path means standard output.
func IsStdout(path string) bool {
	return path == "" || path == StdoutPath
}

// WriteOutput writes data to path, creating parent directories, or to w when
// path is empty or "-".
func WriteOutput(ctx context.Context, fsys core.FileSystem, w io.Writer, path string, data []byte) error {
	if IsStdout(path) {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fsys.MkdirAll(ctx, dir, core.PermDir); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := fsys.WriteFile(ctx, path, data, core.PermPublicRead); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
