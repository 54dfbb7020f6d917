package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Paths are used verbatim as keys; directories are tracked separately.
type MockFileSystem struct {
	mu        sync.RWMutex
	files     map[string][]byte
	perms     map[string]os.FileMode
	dirs      map[string]bool
	readErrs  map[string]error
	writeErrs map[string]error
	writes    int
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:     make(map[string][]byte),
		perms:     make(map[string]os.FileMode),
		dirs:      make(map[string]bool),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
	}
}

// SetFile stores content at path.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = append([]byte(nil), data...)
	m.perms[p] = PermPublicRead
}

// GetFile returns the content stored at path.
func (m *MockFileSystem) GetFile(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p]
	return data, ok
}

// SetReadError makes ReadFile on path fail with err.
func (m *MockFileSystem) SetReadError(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrs[p] = err
}

// SetWriteError makes WriteFile on path fail with err.
func (m *MockFileSystem) SetWriteError(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErrs[p] = err
}

// WriteCount returns how many successful writes happened.
func (m *MockFileSystem) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err, ok := m.readErrs[p]; ok {
		return nil, err
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, p string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.writeErrs[p]; ok {
		return err
	}
	m.files[p] = append([]byte(nil), data...)
	m.perms[p] = perm
	m.writes++
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, p string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[p]; ok {
		return &mockFileInfo{name: path.Base(p), size: int64(len(data)), mode: m.perms[p]}, nil
	}
	if m.dirs[p] {
		return &mockFileInfo{name: path.Base(p), mode: fs.ModeDir | PermDir}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(ctx context.Context, p string, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for dir := p; dir != "." && dir != "/" && dir != ""; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
	return nil
}

func (m *MockFileSystem) Remove(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[p]; !ok {
		return &fs.PathError{Op: "remove", Path: p, Err: fs.ErrNotExist}
	}
	delete(m.files, p)
	delete(m.perms, p)
	return nil
}

var _ FileSystem = (*MockFileSystem)(nil)

type mockFileInfo struct {
	name string
	size int64
	mode os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *mockFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *mockFileInfo) Sys() any           { return nil }
