package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid runner config")

// Config sources reported by LoadRunner.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadRunner loads the runner configuration and reports where it came from.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// A custom path that cannot be read, parsed or validated is an error; other
// locations are skipped silently.
func LoadRunner(customPath string) (RunnerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultRunnerYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultRunnerConfig(), SourceBuiltin, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that every value describes a playable simulation.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Clock.MaxDelta > 0, "clock.max_delta must be positive, got %v", c.Clock.MaxDelta)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FallMultiplier > 0, "physics.fall_multiplier must be positive, got %v", c.Physics.FallMultiplier)
	check(c.Physics.JumpVelocity > 0, "physics.jump_velocity must be positive, got %v", c.Physics.JumpVelocity)

	check(c.Obstacles.BaseHeight > 0, "obstacles.base_height must be positive, got %v", c.Obstacles.BaseHeight)
	check(c.Obstacles.MinScale > 0 && c.Obstacles.MinScale <= c.Obstacles.MaxScale,
		"obstacles scale range [%v, %v] is invalid", c.Obstacles.MinScale, c.Obstacles.MaxScale)
	check(c.Obstacles.AspectRatio > 0, "obstacles.aspect_ratio must be positive, got %v", c.Obstacles.AspectRatio)
	check(c.Obstacles.ReapMargin >= 0, "obstacles.reap_margin must not be negative, got %v", c.Obstacles.ReapMargin)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size %vx%v is invalid", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= c.Field.Width,
		"player.x %v does not fit the field width %v", c.Player.X, c.Field.Width)

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size %vx%v is invalid", c.Field.Width, c.Field.Height)

	d := c.Difficulty
	check(d.InitialSpeed > 0, "difficulty.initial_speed must be positive, got %v", d.InitialSpeed)
	check(d.SpeedRamp >= 0, "difficulty.speed_ramp must not be negative, got %v", d.SpeedRamp)
	check(d.InitialInterval > 0, "difficulty.initial_interval must be positive, got %v", d.InitialInterval)
	check(d.SpacingMultiplier > 0, "difficulty.spacing_multiplier must be positive, got %v", d.SpacingMultiplier)
	check(d.MinSpeed > 0, "difficulty.min_speed must be positive, got %v", d.MinSpeed)
	check(d.MinInterval > 0 && d.MinInterval <= d.MaxInterval,
		"difficulty interval range [%v, %v] is invalid", d.MinInterval, d.MaxInterval)

	check(c.Scoring.PointsPerSecond > 0, "scoring.points_per_second must be positive, got %v", c.Scoring.PointsPerSecond)
	check(c.Scoring.Digits > 0, "scoring.digits must be positive, got %v", c.Scoring.Digits)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
