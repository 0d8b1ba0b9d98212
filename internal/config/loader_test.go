package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig() differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsMatchReferenceConstants(t *testing.T) {
	cfg := DefaultRunnerConfig()

	checks := []struct {
		name      string
		got, want float64
	}{
		{"max delta", cfg.Clock.MaxDelta, 0.032},
		{"gravity", cfg.Physics.Gravity, 2200},
		{"fall multiplier", cfg.Physics.FallMultiplier, 2.6},
		{"jump velocity", cfg.Physics.JumpVelocity, 820},
		{"base height", cfg.Obstacles.BaseHeight, 48},
		{"initial speed", cfg.Difficulty.InitialSpeed, 240},
		{"speed ramp", cfg.Difficulty.SpeedRamp, 50},
		{"initial interval", cfg.Difficulty.InitialInterval, 1200},
		{"spacing multiplier", cfg.Difficulty.SpacingMultiplier, 1.7},
		{"points per second", cfg.Scoring.PointsPerSecond, 100},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("physics:\n  jump_velocity: 900\ndifficulty:\n  speed_ramp: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.JumpVelocity != 900 {
		t.Errorf("JumpVelocity = %v, expected 900", cfg.Physics.JumpVelocity)
	}
	if cfg.Difficulty.SpeedRamp != 0 {
		t.Errorf("SpeedRamp = %v, expected 0", cfg.Difficulty.SpeedRamp)
	}
	// Keys not in the file keep their defaults
	if cfg.Physics.Gravity != 2200 {
		t.Errorf("Gravity = %v, expected default 2200", cfg.Physics.Gravity)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadRunner(broken); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadRunner(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultRunnerConfig() {
		t.Error("fallback config should equal the defaults")
	}
}

func TestLoadRunnerLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "runner.yaml"), []byte("field:\n  width: 1000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != filepath.Join("configs", "runner.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Field.Width != 1000 {
		t.Errorf("Field.Width = %v, expected 1000", cfg.Field.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantErr string
	}{
		{"defaults are valid", func(*RunnerConfig) {}, ""},
		{"zero dt cap", func(c *RunnerConfig) { c.Clock.MaxDelta = 0 }, "clock.max_delta"},
		{"inverted scale", func(c *RunnerConfig) { c.Obstacles.MinScale = 2 }, "scale range"},
		{"inverted interval", func(c *RunnerConfig) { c.Difficulty.MaxInterval = 100 }, "interval range"},
		{"player outside field", func(c *RunnerConfig) { c.Player.X = 790 }, "player.x"},
		{"no digits", func(c *RunnerConfig) { c.Scoring.Digits = 0 }, "scoring.digits"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Error("validation errors should wrap ErrInvalid")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "jump_velocity: 820") {
		t.Errorf("marshaled YAML missing jump_velocity:\n%s", data)
	}
}
