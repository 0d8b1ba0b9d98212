package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Clock: ClockConfig{
			MaxDelta: 0.032,
		},
		Physics: PhysicsConfig{
			Gravity:        2200,
			FallMultiplier: 2.6,
			JumpVelocity:   820,
		},
		Obstacles: ObstacleConfig{
			BaseHeight:  48,
			MinScale:    0.6,
			MaxScale:    1.2,
			AspectRatio: 0.75,
			SpawnOffset: -100,
			ReapMargin:  10,
		},
		Player: PlayerConfig{
			X:      48,
			Width:  40,
			Height: 48,
		},
		Field: FieldConfig{
			Width:  800,
			Height: 240,
		},
		Difficulty: DifficultyConfig{
			InitialSpeed:      240,
			SpeedRamp:         50, // 5 * dt * 10 in the original scaling
			InitialInterval:   1200,
			BaseInterval:      1200,
			ScoreFactor:       2.2,
			SpacingMultiplier: 1.7,
			DesiredGap:        320,
			MinSpeed:          140,
			MinInterval:       380,
			MaxInterval:       1300,
		},
		Scoring: ScoringConfig{
			PointsPerSecond: 100,
			Digits:          5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
