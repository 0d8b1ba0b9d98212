package sim

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Difficulty derives the scroll speed and the spawn interval from elapsed
// time and score.
type Difficulty struct {
	cfg           config.DifficultyConfig
	speed         float64 // px/s
	spawnInterval float64 // ms
}

// NewDifficulty creates a controller at its initial values.
func NewDifficulty(cfg config.DifficultyConfig) *Difficulty {
	d := &Difficulty{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the initial speed and spawn interval.
func (d *Difficulty) Reset() {
	d.speed = d.cfg.InitialSpeed
	d.spawnInterval = d.cfg.InitialInterval
}

// Update ramps the speed linearly with time and recomputes the spawn
// interval for the current score.
func (d *Difficulty) Update(dt, score float64) {
	d.speed += d.cfg.SpeedRamp * dt
	d.spawnInterval = d.TargetInterval(score, d.speed)
}

// TargetInterval returns the spawn interval in ms for a score and speed.
// The score-driven target shrinks as the run goes on, but never below the
// time the field needs to scroll the desired gap at the current speed.
// Both bounds of the clamp are widened by the spacing multiplier.
func (d *Difficulty) TargetInterval(score, speed float64) float64 {
	m := d.cfg.SpacingMultiplier

	spaced := (d.cfg.BaseInterval - score*d.cfg.ScoreFactor) * m
	byDistance := d.cfg.DesiredGap * m / math.Max(d.cfg.MinSpeed, speed) * 1000

	return core.ClampF(math.Max(spaced, byDistance), d.cfg.MinInterval*m, d.cfg.MaxInterval*m)
}

// Speed returns the current scroll speed in px/s.
func (d *Difficulty) Speed() float64 { return d.speed }

// SpawnInterval returns the current spawn interval in ms.
func (d *Difficulty) SpawnInterval() float64 { return d.spawnInterval }
