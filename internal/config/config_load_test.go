package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/manifest"
	"github.com/indaco/docvars/internal/navbar"
	"github.com/indaco/docvars/internal/testutils"
	"github.com/indaco/docvars/internal/variables"
)

/* ------------------------------------------------------------------------- */
/* LOAD CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestLoadConfig(t *testing.T) {
	t.Run("missing default file falls back to defaults", func(t *testing.T) {
		runInTempDir(t, filepath.Join(t.TempDir(), DefaultConfigFile), func() {
			cfg, err := LoadConfigFn("")
			checkError(t, err, false)
			if cfg.Manifest.Path != DefaultManifestPath {
				t.Errorf("manifest path = %q, want %q", cfg.Manifest.Path, DefaultManifestPath)
			}
			if cfg.Source() != "" {
				t.Errorf("Source() = %q, want empty for defaults", cfg.Source())
			}
		})
	})

	t.Run("default file in working directory", func(t *testing.T) {
		path := testutils.WriteTempConfig(t, "manifest:\n  path: package.json\nversions:\n  dropdown: true\n")
		runInTempDir(t, path, func() {
			cfg, err := LoadConfigFn("")
			checkError(t, err, false)
			if cfg.Manifest.Path != "package.json" || !cfg.Versions.Dropdown {
				t.Errorf("config not decoded: %+v", cfg)
			}
			if cfg.Variables.Output != variables.DefaultOutput {
				t.Errorf("unset output should default, got %q", cfg.Variables.Output)
			}
			if cfg.Source() != DefaultConfigFile {
				t.Errorf("Source() = %q", cfg.Source())
			}
		})
	})

	t.Run("explicit path", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		path := testutils.WriteFile(t, t.TempDir(), "ci.yaml", "theme: dracula\n")
		cfg, err := LoadConfigFn(path)
		checkError(t, err, false)
		if cfg.GetTheme() != "dracula" {
			t.Errorf("theme = %q", cfg.GetTheme())
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		_, err := LoadConfigFn(filepath.Join(t.TempDir(), "nope.yaml"))
		checkError(t, err, true)
	})

	t.Run("from env", func(t *testing.T) {
		path := testutils.WriteFile(t, t.TempDir(), "env.yaml", "variables:\n  output: static/vars.json\n")
		t.Setenv(EnvConfigPath, path)
		cfg, err := LoadConfigFn("")
		checkError(t, err, false)
		if cfg.Variables.Output != "static/vars.json" {
			t.Errorf("output = %q", cfg.Variables.Output)
		}
	})

	t.Run("from env with path traversal rejected", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "../../../etc/docvars.yaml")
		cfg, err := LoadConfigFn("")
		checkError(t, err, true)
		if cfg != nil {
			t.Error("expected nil config")
		}
		if !strings.Contains(err.Error(), "path traversal not allowed") {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("from env missing file", func(t *testing.T) {
		t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "gone.yaml"))
		_, err := LoadConfigFn("")
		checkError(t, err, true)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := testutils.WriteTempConfig(t, "manifest:\n  path: a.toml\n  version-key: x\n")
		runInTempDir(t, path, func() {
			_, err := LoadConfigFn("")
			checkError(t, err, true)
		})
	})

	t.Run("unreadable file", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("root can read any file")
		}
		path := testutils.WriteTempConfig(t, "theme: charm\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatal(err)
		}
		runInTempDir(t, path, func() {
			_, err := LoadConfigFn("")
			checkError(t, err, true)
		})
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name:    "empty document",
			content: "  \n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Versions.Path != navbar.DefaultVersionsFile {
					t.Errorf("versions path = %q", cfg.Versions.Path)
				}
			},
		},
		{
			name: "full document",
			content: `manifest:
  path: ../Cargo.toml
  format: toml
  field: package.version
variables:
  output: docs/variables.json
  strict: true
  extra:
    product: Rasa SDK
versions:
  path: versions.json
  output: docs/navbar.json
  format: yaml
  legacy:
    - label: Legacy 1.x
      to: https://legacy-docs.example.com
site:
  url: https://rasa.com
  base-url: /docs/action-server/
sidebar:
  input: sidebars.yaml
  output: sidebars.json
theme: catppuccin
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Manifest.Field != "package.version" || !cfg.Variables.Strict {
					t.Errorf("manifest/variables not decoded: %+v %+v", cfg.Manifest, cfg.Variables)
				}
				if cfg.Variables.Extra["product"] != "Rasa SDK" {
					t.Errorf("extra = %v", cfg.Variables.Extra)
				}
				if len(cfg.Versions.Legacy) != 1 || cfg.Versions.Legacy[0].To != "https://legacy-docs.example.com" {
					t.Errorf("legacy = %+v", cfg.Versions.Legacy)
				}
				if cfg.Site == nil || cfg.Site.BaseURL != "/docs/action-server/" {
					t.Errorf("site = %+v", cfg.Site)
				}
				if cfg.Sidebar == nil || cfg.Sidebar.Input != "sidebars.yaml" {
					t.Errorf("sidebar = %+v", cfg.Sidebar)
				}
			},
		},
		{name: "wrong type", content: "variables:\n  strict: [yes]\n", wantErr: true},
		{name: "unknown top-level key", content: "plugins: {}\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content))
			checkError(t, err, tt.wantErr)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestManifestSource(t *testing.T) {
	cfg := Default()
	cfg.Manifest.Format = "json"
	src, err := cfg.ManifestSource()
	checkError(t, err, false)
	if src.Format != manifest.FormatJSON || src.Path != DefaultManifestPath {
		t.Errorf("ManifestSource() = %+v", src)
	}

	cfg.Manifest.Format = "ini"
	_, err = cfg.ManifestSource()
	checkError(t, err, true)
}

/* ------------------------------------------------------------------------- */
/* SAVE CONFIG                                                               */
/* ------------------------------------------------------------------------- */

type failingMarshaler struct{}

func (failingMarshaler) Marshal(any) ([]byte, error) { return nil, errors.New("boom") }

func TestConfigSaver(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		fsys := core.NewMockFileSystem()
		cfg := Default()
		cfg.Versions.Legacy = []navbar.Entry{{Label: "Legacy", To: "https://old.example.com"}}
		cfg.Site = &SiteConfig{URL: "https://example.com"}

		if err := NewConfigSaver(fsys, nil).SaveTo(ctx, cfg, DefaultConfigFile); err != nil {
			t.Fatalf("SaveTo() error = %v", err)
		}
		data, ok := fsys.GetFile(DefaultConfigFile)
		if !ok {
			t.Fatal("config not written")
		}
		back, err := Parse(data)
		if err != nil {
			t.Fatalf("saved config does not parse: %v\n%s", err, data)
		}
		if back.Site == nil || back.Site.URL != "https://example.com" || len(back.Versions.Legacy) != 1 {
			t.Errorf("round trip lost data:\n%s", data)
		}
		if info, _ := fsys.Stat(ctx, DefaultConfigFile); info.Mode() != ConfigFilePerm {
			t.Errorf("perm = %v, want %v", info.Mode(), ConfigFilePerm)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		err := NewConfigSaver(core.NewMockFileSystem(), failingMarshaler{}).SaveTo(ctx, Default(), "x.yaml")
		checkError(t, err, true)
	})

	t.Run("write error", func(t *testing.T) {
		fsys := core.NewMockFileSystem()
		fsys.SetWriteError("x.yaml", errors.New("read-only"))
		err := NewConfigSaver(fsys, nil).SaveTo(ctx, Default(), "x.yaml")
		checkError(t, err, true)
	})
}
