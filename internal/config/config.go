package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/manifest"
	"github.com/indaco/docvars/internal/navbar"
	"github.com/indaco/docvars/internal/variables"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = ".docvars.yaml"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "DOCVARS_CONFIG"

// DefaultManifestPath is the pyproject.toml one level above the docs directory.
const DefaultManifestPath = "../pyproject.toml"

// DefaultTheme is the prompt theme used when none is configured.
const DefaultTheme = "docvars"

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW

// ManifestConfig locates the project version.
type ManifestConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"`
	Field  string `yaml:"field,omitempty"`
}

// VariablesConfig controls the variables file.
type VariablesConfig struct {
	Output string            `yaml:"output"`
	Extra  map[string]string `yaml:"extra,omitempty"`
	Strict bool              `yaml:"strict,omitempty"`
}

// VersionsConfig controls the versions menu.
type VersionsConfig struct {
	Path     string         `yaml:"path"`
	Legacy   []navbar.Entry `yaml:"legacy,omitempty"`
	Output   string         `yaml:"output,omitempty"`
	Format   string         `yaml:"format,omitempty"`
	Dropdown bool           `yaml:"dropdown,omitempty"`
}

// SiteConfig describes where the site is served, for absolute head tag URLs.
type SiteConfig struct {
	URL            string `yaml:"url,omitempty"`
	BaseURL        string `yaml:"base-url,omitempty"`
	OGImage        string `yaml:"og-image,omitempty"`
	HeadTagsOutput string `yaml:"head-tags-output,omitempty"`
}

// SidebarConfig points at the YAML sidebar definition and its JSON output.
type SidebarConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Config is the main configuration structure for docvars.
type Config struct {
	Manifest  ManifestConfig  `yaml:"manifest"`
	Variables VariablesConfig `yaml:"variables"`
	Versions  VersionsConfig  `yaml:"versions"`
	Site      *SiteConfig     `yaml:"site,omitempty"`
	Sidebar   *SidebarConfig  `yaml:"sidebar,omitempty"`
	Theme     string          `yaml:"theme,omitempty"`

	// source is the file the config was loaded from, empty for defaults.
	source string
}

// Default returns the configuration matching the historical docs build layout.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	if c.Variables.Output == "" {
		c.Variables.Output = variables.DefaultOutput
	}
	if c.Versions.Path == "" {
		c.Versions.Path = navbar.DefaultVersionsFile
	}
}

// Source returns the file the config was loaded from, or "" for built-in defaults.
func (c *Config) Source() string {
	return c.source
}

// GetTheme returns the configured theme or the default.
func (c *Config) GetTheme() string {
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// ManifestSource converts the manifest section for the manifest reader.
func (c *Config) ManifestSource() (manifest.Source, error) {
	format, err := manifest.ParseFormat(c.Manifest.Format)
	if err != nil {
		return manifest.Source{}, err
	}
	return manifest.Source{Path: c.Manifest.Path, Format: format, Field: c.Manifest.Field}, nil
}

// LoadConfigFn is swapped in tests.
var LoadConfigFn = loadConfig

// loadConfig resolves the config path (explicit, then env, then default) and
// decodes it. A missing default file yields Default(); a missing explicit or
// env-provided file is an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if envPath := os.Getenv(EnvConfigPath); envPath != "" {
			cleanPath := filepath.Clean(envPath)
			if strings.Contains(cleanPath, "..") {
				return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvConfigPath)
			}
			path = cleanPath
			explicit = true
		} else {
			path = DefaultConfigFile
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	cfg.source = path
	return cfg, nil
}

// Parse strictly decodes YAML config data and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// yamlMarshaler is the production core.Marshaler.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.IndentSequence(true))
}

// ConfigSaver writes configuration files.
type ConfigSaver struct {
	fs        core.FileSystem
	marshaler core.Marshaler
}

// NewConfigSaver creates a ConfigSaver. A nil marshaler uses YAML.
func NewConfigSaver(fs core.FileSystem, marshaler core.Marshaler) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	return &ConfigSaver{fs: fs, marshaler: marshaler}
}

// SaveTo writes cfg to path with owner-only permissions.
func (s *ConfigSaver) SaveTo(ctx context.Context, cfg *Config, path string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", path, err)
	}
	if err := s.fs.WriteFile(ctx, path, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", path, err)
	}
	return nil
}
