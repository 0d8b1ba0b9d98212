// Package sim is the endless runner simulation: a dt-bounded clock, vertical
// player physics, a scrolling obstacle field, the difficulty ramp, collision
// detection and the state machine that runs them in a fixed order each tick.
//
// The package never touches a display surface or an input device. Frontends
// feed it intents and frame timestamps and read back a Snapshot to draw.
package sim

import "math"

// Stepper converts host frame timestamps into bounded tick durations.
// Timestamps are in milliseconds and must not decrease.
type Stepper struct {
	maxDelta float64 // seconds
	last     float64
	started  bool
}

// NewStepper creates a stepper that never yields more than maxDelta seconds.
func NewStepper(maxDelta float64) *Stepper {
	return &Stepper{maxDelta: maxDelta}
}

// Reset makes now the reference timestamp for the next Step.
func (s *Stepper) Reset(now float64) {
	s.last = now
	s.started = true
}

// Step returns the seconds elapsed since the previous timestamp, capped at
// maxDelta, and remembers now. The first call after construction only
// records the timestamp and returns 0.
func (s *Stepper) Step(now float64) float64 {
	if !s.started {
		s.Reset(now)
		return 0
	}
	dt := (now - s.last) / 1000
	s.last = now
	// A long pause (suspended tab, dropped frames) collapses to one capped step.
	return math.Max(0, math.Min(s.maxDelta, dt))
}
