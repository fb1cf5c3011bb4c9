package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FrameDuration != DefaultFrameDuration {
		t.Errorf("expected frame duration %d, got %d", DefaultFrameDuration, cfg.FrameDuration)
	}
	if cfg.FastN != DefaultFastN || cfg.SlowN != DefaultSlowN {
		t.Errorf("unexpected element counts: %d/%d", cfg.FastN, cfg.SlowN)
	}
	if !cfg.Sound {
		t.Error("sound should default to on")
	}
	if cfg.Wave != DefaultWave {
		t.Errorf("expected wave %q, got %q", DefaultWave, cfg.Wave)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortlab.yaml")

	cfg := DefaultConfig()
	cfg.FastN = 256
	cfg.Seed = 99
	cfg.Algorithms = []string{"heap", "shell"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.FastN != 256 || loaded.Seed != 99 {
		t.Errorf("expected fast_n=256 seed=99, got %d/%d", loaded.FastN, loaded.Seed)
	}
	if len(loaded.Algorithms) != 2 || loaded.Algorithms[0] != "heap" {
		t.Errorf("unexpected algorithms: %v", loaded.Algorithms)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("fast_n: 64\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.FastN != 64 {
		t.Errorf("expected explicit fast_n kept, got %d", loaded.FastN)
	}
	if loaded.FrameDuration != DefaultFrameDuration {
		t.Errorf("expected unset fields defaulted, got frame duration %d", loaded.FrameDuration)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresets(t *testing.T) {
	if GetPreset("demo") == nil {
		t.Error("expected demo preset")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}

	names := ListPresets()
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names should be sorted: %v", names)
		}
	}

	quick := GetPreset("quick")
	if len(quick.Algorithms) != 3 {
		t.Errorf("quick preset should pin its algorithm list, got %v", quick.Algorithms)
	}
}
