// Package config resolves the optional material.yaml project file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/material/pkg/theme"
)

// FileName is the project configuration file looked up in the module root.
const FileName = "material.yaml"

// Config represents the optional material.yaml configuration.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
	Log   LogConfig   `yaml:"log"`
}

// ThemeConfig names the project's theme file.
type ThemeConfig struct {
	// File is relative to the project root unless absolute.
	File   string `yaml:"file,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	// ThemeFile is absolute, or empty when the project has no theme.
	ThemeFile  string
	DumpFormat theme.Format
	LogLevel   slog.Level
}

// LoadOptional reads material.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads material.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	res := &Resolved{Root: dir, ModulePath: modulePath, LogLevel: slog.LevelInfo}

	if f := strings.TrimSpace(cfg.Theme.File); f != "" {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		res.ThemeFile = f
	}

	if res.DumpFormat, err = ParseFormat(cfg.Theme.Format); err != nil {
		return nil, err
	}

	if lvl := strings.TrimSpace(cfg.Log.Level); lvl != "" {
		if err := res.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid log level %q", lvl)
		}
	}
	return res, nil
}

// ParseFormat maps a format name to a theme format. Empty means YAML.
func ParseFormat(name string) (theme.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return theme.FormatYAML, nil
	case "toml":
		return theme.FormatTOML, nil
	default:
		return 0, fmt.Errorf("unknown theme format %q (want yaml or toml)", name)
	}
}

// FindProjectRoot walks up from dir to find go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
