package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	parsed, err := Parse(defaultGamesYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, Default()) {
		t.Errorf("embedded games.yaml differs from Default():\n got: %+v\nwant: %+v", parsed, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("runner:\n  goal: 500\n  fast:\n    speed_mul: 1.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Runner.Goal != 500 {
		t.Errorf("Runner.Goal = %d, expected 500", cfg.Runner.Goal)
	}
	if cfg.Runner.Fast.SpeedMul != 1.5 {
		t.Errorf("Runner.Fast.SpeedMul = %v, expected 1.5", cfg.Runner.Fast.SpeedMul)
	}
	// Untouched keys keep their defaults
	if cfg.Tower.PerfectTolerance != 6 {
		t.Errorf("Tower.PerfectTolerance = %v, expected default 6", cfg.Tower.PerfectTolerance)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("runner: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Error("Load() of invalid YAML should fail")
	}
	if cfg.Runner.Goal != Default().Runner.Goal {
		t.Error("failed Load() should still return defaults")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // no user config
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", FileName), []byte("orbit:\n  goal: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd) //nolint:errcheck

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Orbit.Goal != 7 {
		t.Errorf("Orbit.Goal = %d, expected 7 from ./configs", cfg.Orbit.Goal)
	}
}

func TestSanitize(t *testing.T) {
	cfg, err := Parse([]byte("runner:\n  lanes: 0\nmines:\n  hazards: 99\nmemory:\n  symbols: [a, b]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Runner.Lanes != 3 {
		t.Errorf("Runner.Lanes = %d, expected 3", cfg.Runner.Lanes)
	}
	if cfg.Mines.Hazards != 3 {
		t.Errorf("Mines.Hazards = %d, expected 3", cfg.Mines.Hazards)
	}
	if len(cfg.Memory.Symbols) < 10 {
		t.Errorf("too few memory symbols kept: %d", len(cfg.Memory.Symbols))
	}
}

func TestSanitizeRunnerLanes(t *testing.T) {
	tests := []struct {
		yaml     string
		expected int
	}{
		{"runner:\n  lanes: 1\n", 3},
		{"runner:\n  lanes: -4\n", 3},
		{"runner:\n  lanes: 2\n", 2},
		{"runner:\n  lanes: 5\n", 5},
	}

	for _, tc := range tests {
		cfg, err := Parse([]byte(tc.yaml))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.yaml, err)
		}
		if cfg.Runner.Lanes != tc.expected {
			t.Errorf("Parse(%q) lanes = %d, expected %d", tc.yaml, cfg.Runner.Lanes, tc.expected)
		}
	}
}

func TestSanitizeMemoryPairs(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected []int
		small    int
		large    int
	}{
		{"too many pairs", "memory:\n  pairs: [12]\n", []int{10}, 16, 20},
		{"non-positive pairs", "memory:\n  pairs: [0, -3, 4]\n", []int{1, 1, 4}, 16, 20},
		{"board order", "memory:\n  small_board: 24\n  large_board: 12\n  pairs: [4]\n", []int{4}, 16, 20},
		{"smaller boards", "memory:\n  small_board: 8\n  large_board: 12\n  pairs: [3, 6, 9]\n", []int{3, 6, 6}, 8, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if !reflect.DeepEqual(cfg.Memory.Pairs, tc.expected) {
				t.Errorf("Memory.Pairs = %v, expected %v", cfg.Memory.Pairs, tc.expected)
			}
			if cfg.Memory.SmallBoard != tc.small || cfg.Memory.LargeBoard != tc.large {
				t.Errorf("boards = %d/%d, expected %d/%d",
					cfg.Memory.SmallBoard, cfg.Memory.LargeBoard, tc.small, tc.large)
			}
		})
	}
}

func TestUseActive(t *testing.T) {
	orig := Active()
	defer Use(orig)

	cfg := Default()
	cfg.Mines.Goal = 3
	Use(cfg)
	if Active().Mines.Goal != 3 {
		t.Errorf("Active().Mines.Goal = %d, expected 3", Active().Mines.Goal)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault() should refuse to overwrite")
	}
}

func TestRamp(t *testing.T) {
	tests := []struct {
		name     string
		ramp     Ramp
		x        float64
		expected float64
	}{
		{"unbounded speed", Ramp{Base: 220, Rate: 34}, 10, 560},
		{"interval above floor", Ramp{Base: 0.82, Rate: -0.018, Min: 0.33}, 10, 0.64},
		{"interval at floor", Ramp{Base: 0.82, Rate: -0.018, Min: 0.33}, 100, 0.33},
		{"chance capped", Ramp{Base: 0.10, Rate: 0.015, Max: 0.35}, 30, 0.35},
		{"tower speed start", Ramp{Base: 175, Rate: 8, Min: 175, Max: 330}, 0, 175},
		{"tower speed capped", Ramp{Base: 175, Rate: 8, Min: 175, Max: 330}, 40, 330},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.ramp.At(tc.x)
			if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("At(%v) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestRampLevel(t *testing.T) {
	r := Ramp{Base: 0.10, Rate: 0.015, Max: 0.35}
	if got := r.Level(0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := r.Level(1000); got != 1 {
		t.Errorf("Level(1000) = %v, expected 1", got)
	}
	if got := (Ramp{Base: 220, Rate: 34}).Level(50); got != 0 {
		t.Errorf("unbounded Level() = %v, expected 0", got)
	}
}
