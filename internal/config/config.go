// Package config loads the vaultfind configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source pairs an indexed root directory with the short alias shown in
// place of the full path. Aliases are display labels, not keys: two
// sources may share an alias, and nested roots are disambiguated by
// longest-prefix resolution, never by alias.
type Source struct {
	Root  string `yaml:"root"`
	Alias string `yaml:"alias"`
}

// Fd controls the external scanner.
type Fd struct {
	Enabled bool     `yaml:"enabled"`
	Args    []string `yaml:"args"`
}

// Config is the full user configuration.
type Config struct {
	Sources      []Source `yaml:"sources"`
	Extensions   []string `yaml:"extensions"`
	Fd           Fd       `yaml:"fd"`
	SearchInPath bool     `yaml:"search_in_path"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Fd:           Fd{Enabled: true},
		SearchInPath: true,
	}
}

// Path returns the config file location.
// Priority order:
//  1. VAULTFIND_CONFIG environment variable (if set)
//  2. $XDG_CONFIG_HOME/vaultfind/config.yaml via os.UserConfigDir
func Path() (string, error) {
	if p := os.Getenv("VAULTFIND_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "vaultfind", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error; it
// yields the defaults (empty source list, so an empty index).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize expands ~ in roots and canonicalizes extensions so the rest
// of the program never deals with raw user input.
func (c *Config) normalize() {
	home, _ := os.UserHomeDir()
	for i, s := range c.Sources {
		c.Sources[i].Root = ExpandHome(s.Root, home)
		if c.Sources[i].Alias == "" {
			c.Sources[i].Alias = filepath.Base(c.Sources[i].Root)
		}
	}

	exts := c.Extensions[:0]
	for _, e := range c.Extensions {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			exts = append(exts, e)
		}
	}
	c.Extensions = exts
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Aliases returns the alias of every configured source, in order.
func (c Config) Aliases() []string {
	out := make([]string, len(c.Sources))
	for i, s := range c.Sources {
		out[i] = s.Alias
	}
	return out
}
