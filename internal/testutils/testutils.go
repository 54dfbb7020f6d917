// Package testutils holds helpers shared by command and config tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/core"
	"github.com/urfave/cli/v3"
)

// ConfigFileName mirrors config.DefaultConfigFile without importing it.
const ConfigFileName = ".docvars.yaml"

// WriteTempConfig writes content to .docvars.yaml in a fresh temp dir and returns its path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Chdir switches to dir for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		orig = os.TempDir()
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// CaptureStdout runs fn and returns what it printed to stdout.
func CaptureStdout(fn func()) (string, error) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = io.Copy(&buf, r)
		close(done)
	}()

	fn()

	w.Close()
	os.Stdout = old
	<-done
	return buf.String(), nil
}

// BuildCLIForTests wraps commands in a bare root command.
func BuildCLIForTests(commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "docvars",
		Commands: commands,
	}
}

// RunCLITest runs the app with args from within workdir and fails on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, workdir string) {
	t.Helper()
	if workdir != "" {
		Chdir(t, workdir)
	}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("CLI run failed: %v", err)
	}
}

// UseMockFS routes command file access to a fresh mock for the rest of the test.
func UseMockFS(t *testing.T) *core.MockFileSystem {
	t.Helper()
	mock := core.NewMockFileSystem()
	orig := clix.NewFileSystemFn
	clix.NewFileSystemFn = func() core.FileSystem { return mock }
	t.Cleanup(func() { clix.NewFileSystemFn = orig })
	return mock
}

// RunWithOutput runs the app with its data writer captured and returns what
// was written there.
func RunWithOutput(t *testing.T, app *cli.Command, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app.Writer = &buf
	err := app.Run(context.Background(), args)
	return buf.String(), err
}
