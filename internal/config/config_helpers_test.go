package config

import (
	"path/filepath"
	"testing"

	"github.com/indaco/docvars/internal/testutils"
)

func checkError(t *testing.T, err error, wantErr bool) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("unexpected error state: got err=%v, wantErr=%v", err, wantErr)
	}
}

// runInTempDir runs fn from the directory holding configPath, with the env
// override cleared.
func runInTempDir(t *testing.T, configPath string, fn func()) {
	t.Helper()
	t.Setenv(EnvConfigPath, "")
	testutils.Chdir(t, filepath.Dir(configPath))
	fn()
}
