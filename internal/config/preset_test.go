package config

import "testing"

func TestEmptyConfigPresetLookupFails(t *testing.T) {
	cfg := &Config{Presets: map[string]Preset{}}
	if _, err := cfg.Preset("missing"); err == nil {
		t.Fatalf("expected an error for a missing preset")
	}
}

func TestConfigPresetLookup(t *testing.T) {
	cfg := &Config{Presets: map[string]Preset{
		"files": {Domain: 1, Seed: 0},
	}}
	p, err := cfg.Preset("files")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	if p.Domain != 1 {
		t.Fatalf("unexpected domain: %d", p.Domain)
	}
}

func TestLoadWithNoFileReturnsEmptyConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := Load()
	if cfg == nil || cfg.Presets == nil {
		t.Fatalf("Load returned a nil config/presets map")
	}
}
