// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains all tunables of the endless runner simulation.
type RunnerConfig struct {
	Clock      ClockConfig      `yaml:"clock"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Player     PlayerConfig     `yaml:"player"`
	Field      FieldConfig      `yaml:"field"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// ClockConfig bounds the delta time fed into a tick.
type ClockConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Seconds; larger frame gaps are truncated
}

// PhysicsConfig defines the vertical motion of the player (px, px/s, px/s²).
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Applied while rising
	FallMultiplier float64 `yaml:"fall_multiplier"` // Gravity scale while falling
	JumpVelocity   float64 `yaml:"jump_velocity"`
}

// ObstacleConfig defines obstacle sizing and lifetime.
type ObstacleConfig struct {
	BaseHeight  float64 `yaml:"base_height"`
	MinScale    float64 `yaml:"min_scale"`
	MaxScale    float64 `yaml:"max_scale"`
	AspectRatio float64 `yaml:"aspect_ratio"` // Width = height * aspect_ratio
	SpawnOffset float64 `yaml:"spawn_offset"` // Offset from the right edge at spawn (negative = off-screen)
	ReapMargin  float64 `yaml:"reap_margin"`  // Distance past the left edge before removal
}

// PlayerConfig defines the player hitbox in field pixels.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FieldConfig defines the visible play area in pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DifficultyConfig defines the speed ramp and spawn-interval curve.
type DifficultyConfig struct {
	InitialSpeed      float64 `yaml:"initial_speed"`      // px/s
	SpeedRamp         float64 `yaml:"speed_ramp"`         // px/s gained per simulated second
	InitialInterval   float64 `yaml:"initial_interval"`   // ms
	BaseInterval      float64 `yaml:"base_interval"`      // ms at score 0, before spacing
	ScoreFactor       float64 `yaml:"score_factor"`       // ms removed per score point
	SpacingMultiplier float64 `yaml:"spacing_multiplier"` // Widens every target uniformly
	DesiredGap        float64 `yaml:"desired_gap"`        // px between spawns, before spacing
	MinSpeed          float64 `yaml:"min_speed"`          // Speed floor used by the distance rule
	MinInterval       float64 `yaml:"min_interval"`       // ms, before spacing
	MaxInterval       float64 `yaml:"max_interval"`       // ms, before spacing
}

// ScoringConfig defines how survival time turns into points.
type ScoringConfig struct {
	PointsPerSecond float64 `yaml:"points_per_second"`
	Digits          int     `yaml:"digits"` // Zero-padded width of the displayed score
}
