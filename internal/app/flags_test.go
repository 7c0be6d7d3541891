package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"fireworks/internal/sims/fireworks"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Scale != 1 || cfg.TPS != 60 || cfg.Fixed || cfg.NoSave {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ConfigPath != "data/fireworks.yaml" {
		t.Fatalf("expected default config path, got %q", cfg.ConfigPath)
	}
}

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-config", "alt.yaml", "-w", "640", "-h", "360", "-scale", "2", "-tps", "30", "-seed", "99", "-fixed", "-nosave"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.ConfigPath != "alt.yaml" || cfg.Scale != 2 || cfg.TPS != 30 || !cfg.Fixed || !cfg.NoSave {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestSimConfigAppliesOverrides(t *testing.T) {
	cfg := NewConfig()
	cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	cfg.Width, cfg.Height, cfg.Seed = 640, 360, 99

	sc, err := cfg.SimConfig()
	if err != nil {
		t.Fatalf("expected missing file to fall back to defaults, got %v", err)
	}
	if sc.Width != 640 || sc.Height != 360 || sc.Seed != 99 {
		t.Fatalf("expected overrides 640x360 seed 99, got %dx%d seed %d", sc.Width, sc.Height, sc.Seed)
	}
	if sc.Params != fireworks.DefaultConfig().Params {
		t.Fatalf("expected default params, got %+v", sc.Params)
	}
}

func TestSimConfigRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("params:\n  max_step: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.ConfigPath = path
	if _, err := cfg.SimConfig(); err == nil {
		t.Fatal("expected an error for a non-positive max_step")
	}
}
