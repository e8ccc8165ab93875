// Package config loads musicfarm settings from defaults, an optional
// TOML or YAML file, and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the directory settings of a
// config file.
const (
	// EnvMusicDir overrides Config.MusicDir.
	EnvMusicDir = "MUSICFARM_MUSIC_DIR"
	// EnvFarmDir overrides Config.FarmDir.
	EnvFarmDir = "MUSICFARM_FARM_DIR"
)

// Config holds the settings of one musicfarm run.
type Config struct {
	MusicDir   string   // Tree that is scanned for tagged files
	FarmDir    string   // Root of the link farm
	Hardlink   bool     // Create hard links instead of symbolic links
	Verbose    bool     // Log per-file diagnostics
	DryRun     bool     // Log placements without touching the file system
	Workers    int      // Files processed concurrently; 0 means NumCPU
	Extensions []string // Lower-case extensions to scan; empty scans every file
}

// fileConfig is the on-disk key mapping shared by TOML and YAML files.
type fileConfig struct {
	MusicDir   string   `toml:"music_dir" yaml:"music_dir"`
	FarmDir    string   `toml:"farm_dir" yaml:"farm_dir"`
	Hardlink   bool     `toml:"hardlink" yaml:"hardlink"`
	Verbose    bool     `toml:"verbose" yaml:"verbose"`
	DryRun     bool     `toml:"dry_run" yaml:"dry_run"`
	Workers    int      `toml:"workers" yaml:"workers"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MusicDir: "~/Music",
		FarmDir:  "~/farm",
		Workers:  runtime.NumCPU(),
	}
}

// Load builds a Config from defaults, the file at path (if non-empty) and
// the environment, in that order. The result is expanded but not
// validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var err error
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".toml":
			err = loadTOML(path, &cfg)
		case ".yaml", ".yml":
			err = loadYAML(path, &cfg)
		default:
			err = fmt.Errorf("unsupported config format %q", ext)
		}
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvMusicDir)); v != "" {
		cfg.MusicDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFarmDir)); v != "" {
		cfg.FarmDir = v
	}

	return cfg.Expand()
}

func loadTOML(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return err
	}

	if meta.IsDefined("music_dir") {
		cfg.MusicDir = strings.TrimSpace(raw.MusicDir)
	}
	if meta.IsDefined("farm_dir") {
		cfg.FarmDir = strings.TrimSpace(raw.FarmDir)
	}
	if meta.IsDefined("hardlink") {
		cfg.Hardlink = raw.Hardlink
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	if meta.IsDefined("dry_run") {
		cfg.DryRun = raw.DryRun
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("extensions") {
		cfg.Extensions = normalizeExtensions(raw.Extensions)
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Decode twice: once for values, once for the set of keys present,
	// so absent keys keep their defaults.
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return err
	}

	if _, ok := keys["music_dir"]; ok {
		cfg.MusicDir = strings.TrimSpace(raw.MusicDir)
	}
	if _, ok := keys["farm_dir"]; ok {
		cfg.FarmDir = strings.TrimSpace(raw.FarmDir)
	}
	if _, ok := keys["hardlink"]; ok {
		cfg.Hardlink = raw.Hardlink
	}
	if _, ok := keys["verbose"]; ok {
		cfg.Verbose = raw.Verbose
	}
	if _, ok := keys["dry_run"]; ok {
		cfg.DryRun = raw.DryRun
	}
	if _, ok := keys["workers"]; ok {
		cfg.Workers = raw.Workers
	}
	if _, ok := keys["extensions"]; ok {
		cfg.Extensions = normalizeExtensions(raw.Extensions)
	}
	return nil
}

// Expand resolves a leading "~" and environment variables in the
// directory settings.
func (c Config) Expand() (Config, error) {
	var err error
	if c.MusicDir, err = expandPath(c.MusicDir); err != nil {
		return Config{}, err
	}
	if c.FarmDir, err = expandPath(c.FarmDir); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings that cannot produce a working run.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.MusicDir) == "" {
		errs = append(errs, errors.New("music directory is empty"))
	}
	if strings.TrimSpace(c.FarmDir) == "" {
		errs = append(errs, errors.New("farm directory is empty"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func expandPath(p string) (string, error) {
	p = os.ExpandEnv(p)
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
