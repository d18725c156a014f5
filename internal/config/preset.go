// Package config loads named domain/seed presets for the CLI from an
// optional YAML file, mirroring internal/preset's Config/Options YAML
// structs and FindPresetFile search-path convention in the teacher.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preset names a domain/seed pair a user can select with --preset instead
// of spelling out --domain/--seed on every invocation.
type Preset struct {
	Domain uint64 `yaml:"domain"`
	Seed   uint64 `yaml:"seed"`
}

// Config is the on-disk shape of the preset file.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Load reads the preset file from the first of the usual search
// locations, or returns an empty Config if none is found. Errors reading
// or parsing an existing file are swallowed into an empty Config: presets
// are a convenience, not load-bearing, so a malformed file should not
// block hashing via explicit --domain/--seed flags.
func Load() *Config {
	path := findPresetFile()
	if path == "" {
		return &Config{Presets: map[string]Preset{}}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{Presets: map[string]Preset{}}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &Config{Presets: map[string]Preset{}}
	}
	if cfg.Presets == nil {
		cfg.Presets = map[string]Preset{}
	}
	return &cfg
}

// Preset looks up a named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("no such preset: %s", name)
	}
	return p, nil
}

func findPresetFile() string {
	candidates := []string{
		filepath.Join(".", "tachyon.yaml"),
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "tachyon", "config.yaml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
